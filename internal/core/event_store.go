package core

import (
	"transition-planner/internal/types"
)

// EventStore holds every loaded event in load order and indexes them by
// target release.
type EventStore struct {
	events    []types.Event
	byRelease map[types.Release][]int
}

func NewEventStore(events []types.Event) EventStore {
	store := EventStore{
		events:    append([]types.Event(nil), events...),
		byRelease: map[types.Release][]int{},
	}
	for idx, event := range store.events {
		store.byRelease[event.Release] = append(store.byRelease[event.Release], idx)
	}
	return store
}

// EventsForRelease returns the events whose release equals release, in
// load order. Duplicates are kept.
func (s EventStore) EventsForRelease(release types.Release) []types.Event {
	indexes := s.byRelease[release]
	out := make([]types.Event, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, s.events[idx])
	}
	return out
}

// Releases returns the distinct event releases in ascending order.
func (s EventStore) Releases() []types.Release {
	out := make([]types.Release, 0, len(s.byRelease))
	for release := range s.byRelease {
		out = append(out, release)
	}
	types.SortReleases(out)
	return out
}

func (s EventStore) Events() []types.Event {
	return append([]types.Event(nil), s.events...)
}

func (s EventStore) Len() int {
	return len(s.events)
}
