package ports

import "transition-planner/internal/types"

type PlanWriterPort interface {
	WritePlan(plan types.PlanOutput) error
}
