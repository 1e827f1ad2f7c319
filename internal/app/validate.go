package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"transition-planner/internal/core"
	"transition-planner/internal/types"
)

// Validate parses the event data and summarises it per release and action.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	eventsPath := strings.TrimSpace(req.EventsPath)
	if eventsPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("event data file is required")
	}
	events, err := s.EventSource.LoadEvents(eventsPath)
	if err != nil {
		return ValidateResult{}, err
	}
	store := core.NewEventStore(events)

	result := ValidateResult{EventCount: store.Len()}
	for _, release := range store.Releases() {
		result.Releases = append(result.Releases, ReleaseSummary{
			Release: release,
			Count:   len(store.EventsForRelease(release)),
		})
	}
	counts := map[types.Action]int{}
	for _, event := range store.Events() {
		counts[event.Action]++
	}
	for _, action := range types.Actions() {
		if counts[action] == 0 {
			continue
		}
		result.Actions = append(result.Actions, ActionSummary{Action: action, Count: counts[action]})
	}
	log.Ctx(ctx).Debug().Int("events", result.EventCount).Msg("event data validated")
	return result, nil
}
