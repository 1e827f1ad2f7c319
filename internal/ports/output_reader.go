package ports

import "transition-planner/internal/types"

type PlanReaderPort interface {
	ReadPlanIntent(path string) (types.PlanIntent, error)
	ReadPackageList(path string) ([]types.Package, error)
	ReadTransitionReport(path string) (types.TransitionReport, error)
	ReadUnaccounted(path string) ([]string, error)
}
