package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"transition-planner/internal/types"
)

// Planner walks releases in ascending order, threading the cumulative
// ledger from one release to the next.
type Planner struct {
	Resolver TransitionResolver
}

// ReleaseOutcome records what happened in one release. Skipped is set
// when no event produced a mark; Total is then the unchanged ledger.
type ReleaseOutcome struct {
	Release   types.Release
	Eligible  int
	Applied   int
	Skipped   bool
	Slated    types.Ledger
	Conflicts []types.ConflictRecord
	Total     types.Ledger
}

type PlanResult struct {
	Releases    []ReleaseOutcome
	Total       types.Ledger
	Conflicts   []types.ConflictRecord
	Unaccounted []string
}

func NewPlanner(resolver TransitionResolver) Planner {
	return Planner{Resolver: resolver}
}

// Plan resolves every release in order. Releases must be strictly
// ascending.
func (p Planner) Plan(ctx context.Context, releases []types.Release) (PlanResult, error) {
	if err := validateReleaseOrder(releases); err != nil {
		return PlanResult{}, err
	}
	result := PlanResult{Total: types.NewLedger()}
	for _, release := range releases {
		outcome, err := p.Step(ctx, release, result.Total)
		if err != nil {
			return PlanResult{}, err
		}
		result.Releases = append(result.Releases, outcome)
		result.Conflicts = append(result.Conflicts, outcome.Conflicts...)
		result.Total = outcome.Total
	}
	result.Unaccounted = p.unaccounted(result.Total)

	logger := log.Ctx(ctx)
	keep, install, remove := result.Total.Counts()
	logger.Info().
		Int("releases", len(releases)).
		Int("keep", keep).
		Int("install", install).
		Int("remove", remove).
		Int("conflicts", len(result.Conflicts)).
		Msg("transition plan completed")
	if len(result.Unaccounted) > 0 {
		logger.Warn().
			Int("count", len(result.Unaccounted)).
			Strs("packages", result.Unaccounted).
			Msg("installed packages have no applicable event")
	}
	return result, nil
}

// Step resolves a single release against total and returns the outcome
// carrying the new total. total itself is left untouched.
func (p Planner) Step(ctx context.Context, release types.Release, total types.Ledger) (ReleaseOutcome, error) {
	resolution, err := p.Resolver.ResolveRelease(ctx, release, total)
	if err != nil {
		return ReleaseOutcome{}, err
	}
	outcome := ReleaseOutcome{
		Release:  release,
		Eligible: resolution.Eligible,
		Applied:  len(resolution.Applied),
		Slated:   resolution.Slated,
	}
	logger := log.Ctx(ctx)
	if resolution.Slated.Empty() {
		outcome.Skipped = true
		outcome.Total = total
		logger.Debug().
			Str("release", release.String()).
			Int("eligible", resolution.Eligible).
			Msg("release has nothing to reconcile")
		return outcome, nil
	}

	next, conflicts := Reconcile(release, total, resolution.Slated)
	for _, conflict := range conflicts {
		logger.Info().
			Str("release", release.String()).
			Str("package", conflict.Package).
			Str("origin", conflict.Origin).
			Str("kind", string(conflict.Kind)).
			Msg("transition conflict resolved")
	}
	outcome.Conflicts = conflicts
	outcome.Total = next

	slatedKeep, slatedInstall, slatedRemove := resolution.Slated.Counts()
	keep, install, remove := next.Counts()
	logger.Info().
		Str("release", release.String()).
		Int("eligible", resolution.Eligible).
		Int("applied", outcome.Applied).
		Int("slated_keep", slatedKeep).
		Int("slated_install", slatedInstall).
		Int("slated_remove", slatedRemove).
		Int("keep", keep).
		Int("install", install).
		Int("remove", remove).
		Msg("release reconciled")
	return outcome, nil
}

// unaccounted lists installed packages that end neither kept nor removed.
func (p Planner) unaccounted(total types.Ledger) []string {
	var out []string
	for name := range p.Resolver.Installed {
		switch total.Disposition(name) {
		case types.DispositionKeep, types.DispositionRemove:
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func validateReleaseOrder(releases []types.Release) error {
	for idx := 1; idx < len(releases); idx++ {
		if !releases[idx-1].Less(releases[idx]) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("releases must be strictly ascending: %s before %s", releases[idx-1], releases[idx]))
		}
	}
	return nil
}
