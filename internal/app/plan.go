package app

import (
	"context"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"transition-planner/internal/core"
	"transition-planner/internal/types"
)

func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	eventsPath := strings.TrimSpace(req.EventsPath)
	if eventsPath == "" {
		return PlanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("event data file is required")
	}
	installedPath := strings.TrimSpace(req.InstalledPath)
	if installedPath == "" {
		return PlanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("installed package list is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return PlanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	events, err := s.EventSource.LoadEvents(eventsPath)
	if err != nil {
		return PlanResult{}, err
	}
	installed, err := s.InstalledSource.LoadInstalled(installedPath)
	if err != nil {
		return PlanResult{}, err
	}
	store := core.NewEventStore(events)
	releases, err := planReleases(store, req)
	if err != nil {
		return PlanResult{}, err
	}
	log.Ctx(ctx).Info().
		Int("events", store.Len()).
		Int("installed", len(installed)).
		Str("releases", types.FormatReleases(releases)).
		Msg("planning package transitions")

	resolver := core.NewTransitionResolver(store, types.NewInstalledSet(installed...), s.Policy)
	planned, err := core.NewPlanner(resolver).Plan(ctx, releases)
	if err != nil {
		return PlanResult{}, err
	}

	planID := s.planID()
	output := types.PlanOutput{
		Intent: types.PlanIntent{
			PlanID:    planID,
			CreatedAt: s.now().Format(time.RFC3339),
			Releases:  types.FormatReleases(releases),
			Events:    eventsPath,
			Installed: installedPath,
		},
		Keep:        planned.Total.Entries(types.DispositionKeep),
		Install:     planned.Total.Entries(types.DispositionInstall),
		Remove:      planned.Total.Entries(types.DispositionRemove),
		Report:      types.TransitionReport{Records: planned.Conflicts},
		Unaccounted: planned.Unaccounted,
	}
	if err := s.PlanWriter(outputDir).WritePlan(output); err != nil {
		return PlanResult{}, err
	}

	keep, install, remove := planned.Total.Counts()
	return PlanResult{
		PlanID:      planID,
		OutputDir:   outputDir,
		Releases:    releases,
		Keep:        keep,
		Install:     install,
		Remove:      remove,
		Conflicts:   len(planned.Conflicts),
		Unaccounted: len(planned.Unaccounted),
	}, nil
}

// planReleases returns the requested releases, or every release found in
// the event data when AllReleases is set. The unbounded sentinel release
// is never planned implicitly.
func planReleases(store core.EventStore, req PlanRequest) ([]types.Release, error) {
	if req.AllReleases {
		var releases []types.Release
		for _, release := range store.Releases() {
			if release == types.UnboundedRelease {
				continue
			}
			releases = append(releases, release)
		}
		return releases, nil
	}
	releases, err := types.ParseReleases(req.Releases)
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one release is required")
	}
	return releases, nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

func (s Service) planID() string {
	if s.NewPlanID != nil {
		return s.NewPlanID()
	}
	return uuid.NewString()
}
