package adapters

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"transition-planner/internal/ports"
	"transition-planner/internal/shared"
	"transition-planner/internal/types"
)

// EventFileAdapter loads package events from a data file with a top-level
// "packageinfo" list. The file may be JSON or YAML.
type EventFileAdapter struct{}

func NewEventFileAdapter() EventFileAdapter {
	return EventFileAdapter{}
}

func (a EventFileAdapter) LoadEvents(path string) ([]types.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("event data file not found").
			WithCause(err)
	}
	return ParseEventData(data)
}

// ParseEventData decodes an event data document and converts every record.
func ParseEventData(data []byte) ([]types.Event, error) {
	var file types.EventDataFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid event data format").
			WithCause(err)
	}
	events := make([]types.Event, 0, len(file.PackageInfo))
	for idx, record := range file.PackageInfo {
		event, err := ParseEventRecord(record)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid event record #%d (id=%d): %s", idx, record.ID, errorText(err))).
				WithCause(err)
		}
		events = append(events, event)
	}
	return events, nil
}

// ParseEventRecord converts one raw record. Missing release bounds fall
// back to the unbounded defaults; every other missing field is an error.
func ParseEventRecord(record types.EventRecord) (types.Event, error) {
	if record.Action == nil {
		return types.Event{}, invalidRecord("missing action")
	}
	action, err := types.ParseActionIndex(*record.Action)
	if err != nil {
		return types.Event{}, err
	}
	if record.InPackageSet == nil {
		return types.Event{}, invalidRecord("missing in_packageset")
	}
	inPkgs, err := parsePackageSet(record.InPackageSet, "in_packageset")
	if err != nil {
		return types.Event{}, err
	}
	outPkgs := types.PackageSet{}
	if record.OutPackageSet != nil {
		outPkgs, err = parsePackageSet(record.OutPackageSet, "out_packageset")
		if err != nil {
			return types.Event{}, err
		}
	}
	initial, err := parseRelease(record.InitialRelease, types.UnboundedInitialRelease, "initial_release")
	if err != nil {
		return types.Event{}, err
	}
	release, err := parseRelease(record.Release, types.UnboundedRelease, "release")
	if err != nil {
		return types.Event{}, err
	}
	return types.Event{
		ID:             record.ID,
		Action:         action,
		InPkgs:         inPkgs,
		OutPkgs:        outPkgs,
		InitialRelease: initial,
		Release:        release,
		Architectures:  append([]string(nil), record.Architectures...),
	}, nil
}

func parsePackageSet(record *types.PackageSetRecord, field string) (types.PackageSet, error) {
	if record.Package == nil {
		return types.PackageSet{}, invalidRecord(field + " missing package list")
	}
	set := types.PackageSet{}
	for _, pkg := range *record.Package {
		name := strings.TrimSpace(pkg.Name)
		if name == "" {
			return types.PackageSet{}, invalidRecord(field + " package missing name")
		}
		if pkg.Repository == nil {
			return types.PackageSet{}, invalidRecord(field + " package missing repository")
		}
		set.Add(name, shared.NormalizeRepository(*pkg.Repository))
	}
	return set, nil
}

func parseRelease(record *types.ReleaseRecord, fallback types.Release, field string) (types.Release, error) {
	if record == nil {
		return fallback, nil
	}
	if record.MajorVersion == nil || record.MinorVersion == nil {
		return types.Release{}, invalidRecord(field + " missing major_version or minor_version")
	}
	return types.Release{Major: *record.MajorVersion, Minor: *record.MinorVersion}, nil
}

func invalidRecord(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}

func errorText(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

var _ ports.EventSourcePort = EventFileAdapter{}
