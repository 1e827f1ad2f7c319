package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"transition-planner/internal/ports"
	"transition-planner/internal/types"
)

// TransitionResolver computes the slated ledger for a single release.
type TransitionResolver struct {
	Store     EventStore
	Installed types.InstalledSet
	Policy    ports.ActionPolicyPort
}

// ReleaseResolution is the outcome of resolving one release before it is
// folded into the running total.
type ReleaseResolution struct {
	Release  types.Release
	Eligible int
	Applied  []types.Event
	Slated   types.Ledger
}

func NewTransitionResolver(store EventStore, installed types.InstalledSet, policy ports.ActionPolicyPort) TransitionResolver {
	return TransitionResolver{
		Store:     store,
		Installed: installed,
		Policy:    policy,
	}
}

// ResolveRelease applies every applicable event of release against the
// read-only total and returns the slated ledger.
func (r TransitionResolver) ResolveRelease(ctx context.Context, release types.Release, total types.Ledger) (ReleaseResolution, error) {
	if r.Policy == nil {
		return ReleaseResolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("transition resolver requires an action policy")
	}
	events := r.Store.EventsForRelease(release)
	result := ReleaseResolution{
		Release:  release,
		Eligible: len(events),
		Slated:   types.NewLedger(),
	}
	logger := log.Ctx(ctx)
	for _, event := range events {
		if !r.applicable(event, total) {
			logger.Debug().
				Str("release", release.String()).
				Int("event", event.ID).
				Str("action", event.Action.String()).
				Msg("event skipped, input packages unavailable")
			continue
		}
		effects, err := r.Policy.EffectsFor(event.Action)
		if err != nil {
			return ReleaseResolution{}, err
		}
		logger.Debug().
			Str("release", release.String()).
			Str("initial_release", event.InitialRelease.String()).
			Int("event", event.ID).
			Str("action", event.Action.String()).
			Str("in", formatPackageNames(event.InPkgs)).
			Str("out", formatPackageNames(event.OutPkgs)).
			Msg("event applied")
		for _, effect := range effects {
			if err := r.applyEffect(ctx, effect, event, &result.Slated); err != nil {
				return ReleaseResolution{}, err
			}
		}
		result.Applied = append(result.Applied, event)
	}
	return result, nil
}

// applicable reports whether every input package is installed or slated
// for install, and none is slated for removal.
func (r TransitionResolver) applicable(event types.Event, total types.Ledger) bool {
	for _, name := range event.InPkgs.Names() {
		disposition := total.Disposition(name)
		if disposition == types.DispositionRemove {
			return false
		}
		if !r.Installed.Has(name) && disposition != types.DispositionInstall {
			return false
		}
	}
	return true
}

func (r TransitionResolver) applyEffect(ctx context.Context, effect types.Effect, event types.Event, slated *types.Ledger) error {
	switch effect {
	case types.EffectKeepInputs:
		for _, pkg := range event.InPkgs.Packages() {
			mark(ctx, slated, pkg, types.DispositionKeep)
		}
	case types.EffectKeepOutputs:
		for _, pkg := range event.OutPkgs.Packages() {
			mark(ctx, slated, pkg, types.DispositionKeep)
		}
	case types.EffectPartitionOutputs:
		for _, pkg := range event.OutPkgs.Packages() {
			if r.Installed.Has(pkg.Name) {
				mark(ctx, slated, pkg, types.DispositionKeep)
				continue
			}
			mark(ctx, slated, pkg, types.DispositionInstall)
		}
	case types.EffectRemoveUnmatchedInputs:
		for _, pkg := range event.InPkgs.Packages() {
			if event.OutPkgs.Has(pkg.Name) {
				continue
			}
			mark(ctx, slated, pkg, types.DispositionRemove)
		}
	case types.EffectRemoveInputs:
		for _, pkg := range event.InPkgs.Packages() {
			mark(ctx, slated, pkg, types.DispositionRemove)
		}
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown effect: %s", effect))
	}
	return nil
}

func mark(ctx context.Context, slated *types.Ledger, pkg types.Package, disposition types.Disposition) {
	assert.NotEmpty(ctx, pkg.Name, "package name must be set")
	slated.Mark(pkg.Name, disposition, pkg.Repository)
	log.Ctx(ctx).Debug().
		Str("package", pkg.Name).
		Str("origin", pkg.Repository).
		Str("disposition", disposition.String()).
		Msg("package slated")
}

func formatPackageNames(set types.PackageSet) string {
	if set.Len() == 0 {
		return "{}"
	}
	return strings.Join(set.Names(), ", ")
}
