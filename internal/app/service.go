package app

import (
	"time"

	"github.com/google/uuid"

	"transition-planner/internal/adapters"
	"transition-planner/internal/policies"
	"transition-planner/internal/ports"
)

type Service struct {
	EventSource     ports.EventSourcePort
	InstalledSource ports.InstalledSourcePort
	Policy          ports.ActionPolicyPort
	PlanReader      ports.PlanReaderPort
	PlanWriter      func(dir string) ports.PlanWriterPort
	Clock           func() time.Time
	NewPlanID       func() string
}

func NewService() Service {
	return Service{
		EventSource:     adapters.NewEventFileAdapter(),
		InstalledSource: adapters.NewInstalledFileAdapter(),
		Policy:          policies.NewActionPolicy(),
		PlanReader:      adapters.NewPlanReaderAdapter(),
		PlanWriter: func(dir string) ports.PlanWriterPort {
			return adapters.NewPlanFileAdapter(dir)
		},
		Clock:     time.Now,
		NewPlanID: uuid.NewString,
	}
}
