package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"transition-planner/internal/types"
)

func TestEventStoreKeepsLoadOrderAndDuplicates(t *testing.T) {
	first := event(1, types.ActionRemoved, rel(8, 0), pkgs("a", "r1"), types.PackageSet{})
	second := event(2, types.ActionPresent, rel(7, 9), pkgs("b", "r1"), types.PackageSet{})
	third := event(3, types.ActionPresent, rel(8, 0), pkgs("c", "r1"), types.PackageSet{})
	store := NewEventStore([]types.Event{first, second, third, first})

	var ids []int
	for _, e := range store.EventsForRelease(rel(8, 0)) {
		ids = append(ids, e.ID)
	}
	if diff := cmp.Diff([]int{1, 3, 1}, ids); diff != "" {
		t.Fatalf("unexpected event order (-want +got):\n%s", diff)
	}
	assert.Empty(t, store.EventsForRelease(rel(8, 1)))
	assert.Equal(t, 4, store.Len())
}

func TestEventStoreReleasesSorted(t *testing.T) {
	store := NewEventStore([]types.Event{
		event(1, types.ActionPresent, rel(8, 1), pkgs("a", "r"), types.PackageSet{}),
		event(2, types.ActionPresent, rel(7, 6), pkgs("a", "r"), types.PackageSet{}),
		event(3, types.ActionPresent, types.UnboundedRelease, pkgs("a", "r"), types.PackageSet{}),
		event(4, types.ActionPresent, rel(8, 1), pkgs("a", "r"), types.PackageSet{}),
	})
	want := []types.Release{rel(7, 6), rel(8, 1), rel(9, 9)}
	if diff := cmp.Diff(want, store.Releases()); diff != "" {
		t.Fatalf("unexpected releases (-want +got):\n%s", diff)
	}
}

func TestEventStoreCopiesInput(t *testing.T) {
	events := []types.Event{event(1, types.ActionPresent, rel(8, 0), pkgs("a", "r"), types.PackageSet{})}
	store := NewEventStore(events)
	events[0].ID = 99
	assert.Equal(t, 1, store.EventsForRelease(rel(8, 0))[0].ID)
}
