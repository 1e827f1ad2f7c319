package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"transition-planner/internal/ports"
	"transition-planner/internal/types"
)

type PlanReaderAdapter struct{}

func NewPlanReaderAdapter() PlanReaderAdapter {
	return PlanReaderAdapter{}
}

func (a PlanReaderAdapter) ReadPlanIntent(path string) (types.PlanIntent, error) {
	content, err := readPlanFile(path)
	if err != nil {
		return types.PlanIntent{}, err
	}
	intent := types.PlanIntent{}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return types.PlanIntent{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid plan.intent format")
		}
		value := strings.TrimSpace(parts[1])
		switch strings.TrimSpace(parts[0]) {
		case "plan_id":
			intent.PlanID = value
		case "created_at":
			intent.CreatedAt = value
		case "releases":
			intent.Releases = value
		case "events":
			intent.Events = value
		case "installed":
			intent.Installed = value
		}
	}
	if intent.PlanID == "" {
		return types.PlanIntent{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan.intent missing plan_id")
	}
	return intent, nil
}

func (a PlanReaderAdapter) ReadPackageList(path string) ([]types.Package, error) {
	content, err := readPlanFile(path)
	if err != nil {
		return nil, err
	}
	var pkgs []types.Package
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid package list line: %q", line))
		}
		pkgs = append(pkgs, types.Package{
			Name:       strings.TrimSpace(parts[0]),
			Repository: strings.TrimSpace(parts[1]),
		})
	}
	return pkgs, nil
}

func (a PlanReaderAdapter) ReadTransitionReport(path string) (types.TransitionReport, error) {
	content, err := readPlanFile(path)
	if err != nil {
		return types.TransitionReport{}, err
	}
	report := types.TransitionReport{}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 4 {
			return types.TransitionReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid transition.report format")
		}
		release, err := types.ParseRelease(parts[0])
		if err != nil {
			return types.TransitionReport{}, err
		}
		report.Records = append(report.Records, types.ConflictRecord{
			Release: release,
			Package: strings.TrimSpace(parts[1]),
			Kind:    types.ConflictKind(strings.TrimSpace(parts[2])),
			Origin:  strings.TrimSpace(parts[3]),
		})
	}
	return report, nil
}

func (a PlanReaderAdapter) ReadUnaccounted(path string) ([]string, error) {
	content, err := readPlanFile(path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(content, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func readPlanFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("%s not found", filepath.Base(path))).
			WithCause(err)
	}
	return string(content), nil
}

var _ ports.PlanReaderPort = PlanReaderAdapter{}
