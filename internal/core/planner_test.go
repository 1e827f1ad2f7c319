package core

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transition-planner/internal/types"
)

func TestPlanReplacedThenRemoved(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionReplaced, rel(8, 0), pkgs("a", "r1"), pkgs("b", "r1")),
		event(2, types.ActionRemoved, rel(8, 1), pkgs("b", "r1"), types.PackageSet{}),
	}, "a")

	result := runPlan(t, planner, rel(8, 0), rel(8, 1))
	require.Len(t, result.Releases, 2)

	first := result.Releases[0].Total
	assert.Equal(t, map[string]string{"b": "r1"}, first.Install())
	assert.Equal(t, map[string]string{"a": "r1"}, first.Remove())

	second := result.Releases[1]
	assert.Equal(t, 1, second.Applied)
	assert.Equal(t, map[string]string{}, second.Total.Install())
	assert.Equal(t, map[string]string{"a": "r1"}, second.Total.Remove())
	assert.True(t, second.Total.Equal(result.Total))

	want := []types.ConflictRecord{{Release: rel(8, 1), Package: "b", Kind: types.ConflictAnnihilate, Origin: "r1"}}
	if diff := cmp.Diff(want, result.Conflicts); diff != "" {
		t.Fatalf("unexpected conflicts (-want +got):\n%s", diff)
	}
}

func TestPlanUnkeepAcrossReleases(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionPresent, rel(7, 6), pkgs("p", "base"), types.PackageSet{}),
		event(2, types.ActionRemoved, rel(8, 0), pkgs("p", "base"), types.PackageSet{}),
	}, "p")

	result := runPlan(t, planner, rel(7, 6), rel(8, 0))
	assert.Equal(t, map[string]string{"p": "base"}, result.Releases[0].Total.Keep())
	assert.Empty(t, result.Total.Keep())
	assert.Equal(t, map[string]string{"p": "base"}, result.Total.Remove())
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, types.ConflictUnkeep, result.Conflicts[0].Kind)
}

func TestPlanInstalledPackageEnablesLaterEvents(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionSplit, rel(7, 6), pkgs("a", "r"), pkgs("b", "r", "c", "r")),
		event(2, types.ActionRenamed, rel(8, 0), pkgs("b", "r"), pkgs("d", "r")),
		event(3, types.ActionPresent, rel(8, 1), pkgs("c", "r"), types.PackageSet{}),
	}, "a")

	result := runPlan(t, planner, rel(7, 6), rel(8, 0), rel(8, 1))
	assert.Equal(t, 1, result.Releases[1].Applied, "b is pending install, rename must apply")
	assert.Equal(t, 1, result.Releases[2].Applied, "c is pending install, present must apply")

	assert.Equal(t, map[string]string{"c": "r", "d": "r"}, result.Total.Install())
	assert.Equal(t, map[string]string{"a": "r"}, result.Total.Remove())
}

func TestPlanRemovedPackageBlocksLaterEvents(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionRemoved, rel(7, 6), pkgs("a", "r"), types.PackageSet{}),
		event(2, types.ActionReplaced, rel(8, 0), pkgs("a", "r"), pkgs("b", "r")),
	}, "a")

	result := runPlan(t, planner, rel(7, 6), rel(8, 0))
	assert.True(t, result.Releases[1].Skipped)
	assert.Equal(t, 1, result.Releases[1].Eligible)
	assert.Empty(t, result.Total.Install())
}

func TestPlanRemovalStaysFinal(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionRenamed, rel(8, 0), pkgs("a", "r"), pkgs("b", "r")),
		event(2, types.ActionMoved, rel(8, 1), types.PackageSet{}, pkgs("a", "r2")),
		event(3, types.ActionReplaced, rel(8, 2), pkgs("a", "r"), pkgs("c", "r")),
	}, "a")

	result := runPlan(t, planner, rel(8, 0), rel(8, 1), rel(8, 2))
	require.Len(t, result.Releases, 3)

	moved := result.Releases[1]
	assert.Equal(t, 1, moved.Applied)
	assert.Equal(t, map[string]string{"a": "r"}, moved.Total.Remove())
	assert.Empty(t, moved.Total.Keep())

	replaced := result.Releases[2]
	assert.Equal(t, 1, replaced.Eligible)
	assert.Equal(t, 0, replaced.Applied)
	assert.True(t, replaced.Skipped)

	assert.Equal(t, map[string]string{"b": "r"}, result.Total.Install())
	assert.Equal(t, map[string]string{"a": "r"}, result.Total.Remove())
	want := []types.ConflictRecord{{Release: rel(8, 1), Package: "a", Kind: types.ConflictOverruled, Origin: "r2"}}
	if diff := cmp.Diff(want, result.Conflicts); diff != "" {
		t.Fatalf("unexpected conflicts (-want +got):\n%s", diff)
	}
}

func TestPlanSameReleaseInstallAndRemoveOfPendingInstall(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionReplaced, rel(7, 6), pkgs("x", "r"), pkgs("a", "r")),
		event(2, types.ActionReplaced, rel(8, 0), pkgs("z", "r"), pkgs("a", "r")),
		event(3, types.ActionRemoved, rel(8, 0), pkgs("a", "r"), types.PackageSet{}),
	}, "x", "z")

	result := runPlan(t, planner, rel(7, 6), rel(8, 0))
	assert.Equal(t, map[string]string{"a": "r"}, result.Releases[0].Total.Install())
	assert.Empty(t, result.Total.Install())
	assert.Equal(t, map[string]string{"x": "r", "z": "r"}, result.Total.Remove())
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, types.ConflictAnnihilate, result.Conflicts[0].Kind)
}

func TestPlanSkipsEmptyRelease(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionPresent, rel(7, 6), pkgs("a", "r"), types.PackageSet{}),
	}, "a")

	result := runPlan(t, planner, rel(7, 5), rel(7, 6), rel(7, 7))
	assert.True(t, result.Releases[0].Skipped)
	assert.False(t, result.Releases[1].Skipped)
	assert.True(t, result.Releases[2].Skipped)
	assert.True(t, result.Releases[2].Total.Equal(result.Releases[1].Total))
}

func TestPlanMutualExclusion(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionPresent, rel(7, 6), pkgs("a", "r", "b", "r"), types.PackageSet{}),
		event(2, types.ActionRemoved, rel(7, 6), pkgs("a", "r"), types.PackageSet{}),
		event(3, types.ActionSplit, rel(7, 7), pkgs("b", "r"), pkgs("b", "r", "x", "r")),
		event(4, types.ActionMoved, rel(8, 0), types.PackageSet{}, pkgs("a", "r2")),
		event(5, types.ActionRemoved, rel(8, 1), pkgs("x", "r"), types.PackageSet{}),
	}, "a", "b")

	result := runPlan(t, planner, rel(7, 6), rel(7, 7), rel(8, 0), rel(8, 1))
	for _, outcome := range result.Releases {
		keep := outcome.Total.Keep()
		install := outcome.Total.Install()
		remove := outcome.Total.Remove()
		for name := range keep {
			assert.NotContains(t, install, name)
			assert.NotContains(t, remove, name)
		}
		for name := range install {
			assert.NotContains(t, remove, name)
		}
	}
}

func TestPlanUnaccounted(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionPresent, rel(8, 0), pkgs("a", "r"), types.PackageSet{}),
		event(2, types.ActionRemoved, rel(8, 0), pkgs("b", "r"), types.PackageSet{}),
	}, "a", "b", "zeta", "c")

	result := runPlan(t, planner, rel(8, 0))
	assert.Equal(t, []string{"c", "zeta"}, result.Unaccounted)
}

func TestPlanRejectsUnorderedReleases(t *testing.T) {
	planner := newTestPlanner(nil)
	tests := [][]types.Release{
		{rel(8, 0), rel(7, 9)},
		{rel(8, 0), rel(8, 0)},
	}
	for _, releases := range tests {
		_, err := planner.Plan(context.Background(), releases)
		require.Error(t, err)
	}
}

func TestPlanNoReleases(t *testing.T) {
	result := runPlan(t, newTestPlanner(nil, "a"))
	assert.True(t, result.Total.Empty())
	assert.Equal(t, []string{"a"}, result.Unaccounted)
}

func TestStepLeavesInputTotalUntouched(t *testing.T) {
	planner := newTestPlanner([]types.Event{
		event(1, types.ActionRemoved, rel(8, 0), pkgs("a", "r"), types.PackageSet{}),
	}, "a")
	total := ledgerOf(t, map[string]types.LedgerEntry{"a": {Disposition: types.DispositionKeep, Origin: "r"}})
	before := total.Clone()

	outcome, err := planner.Step(context.Background(), rel(8, 0), total)
	require.NoError(t, err)
	assert.True(t, before.Equal(total))
	assert.Equal(t, map[string]string{"a": "r"}, outcome.Total.Remove())
}
