package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"transition-planner/internal/policies"
	"transition-planner/internal/types"
)

func rel(major, minor int) types.Release {
	return types.Release{Major: major, Minor: minor}
}

func pkgs(pairs ...string) types.PackageSet {
	set := types.PackageSet{}
	for i := 0; i+1 < len(pairs); i += 2 {
		set.Add(pairs[i], pairs[i+1])
	}
	return set
}

func event(id int, action types.Action, release types.Release, in types.PackageSet, out types.PackageSet) types.Event {
	return types.Event{
		ID:             id,
		Action:         action,
		InPkgs:         in,
		OutPkgs:        out,
		InitialRelease: types.UnboundedInitialRelease,
		Release:        release,
	}
}

func newTestPlanner(events []types.Event, installed ...string) Planner {
	resolver := NewTransitionResolver(NewEventStore(events), types.NewInstalledSet(installed...), policies.NewActionPolicy())
	return NewPlanner(resolver)
}

func ledgerOf(t *testing.T, entries map[string]types.LedgerEntry) types.Ledger {
	t.Helper()
	ledger := types.NewLedger()
	for name, entry := range entries {
		ledger.Set(name, entry.Disposition, entry.Origin)
	}
	return ledger
}

func runPlan(t *testing.T, planner Planner, releases ...types.Release) PlanResult {
	t.Helper()
	result, err := planner.Plan(context.Background(), releases)
	require.NoError(t, err)
	return result
}
