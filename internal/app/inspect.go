package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"transition-planner/internal/adapters"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	intent, err := s.PlanReader.ReadPlanIntent(filepath.Join(outputDir, adapters.PlanIntentFile))
	if err != nil {
		return InspectResult{}, err
	}
	keep, err := s.PlanReader.ReadPackageList(filepath.Join(outputDir, adapters.KeepListFile))
	if err != nil {
		return InspectResult{}, err
	}
	install, err := s.PlanReader.ReadPackageList(filepath.Join(outputDir, adapters.InstallListFile))
	if err != nil {
		return InspectResult{}, err
	}
	remove, err := s.PlanReader.ReadPackageList(filepath.Join(outputDir, adapters.RemoveListFile))
	if err != nil {
		return InspectResult{}, err
	}
	report, err := s.PlanReader.ReadTransitionReport(filepath.Join(outputDir, adapters.TransitionReportFile))
	if err != nil {
		return InspectResult{}, err
	}
	unaccounted, err := s.PlanReader.ReadUnaccounted(filepath.Join(outputDir, adapters.UnaccountedListFile))
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{
		Intent:       intent,
		KeepCount:    len(keep),
		InstallCount: len(install),
		RemoveCount:  len(remove),
		Conflicts:    report.Records,
		Unaccounted:  unaccounted,
	}, nil
}
