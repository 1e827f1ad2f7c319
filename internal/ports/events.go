package ports

import "transition-planner/internal/types"

type EventSourcePort interface {
	LoadEvents(path string) ([]types.Event, error)
}

type InstalledSourcePort interface {
	LoadInstalled(path string) ([]string, error)
}
