package types

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Release is a major.minor distribution release.
type Release struct {
	Major int
	Minor int
}

var (
	// UnboundedInitialRelease is used when an event has no initial release.
	UnboundedInitialRelease = Release{Major: 0, Minor: 0}
	// UnboundedRelease is used when an event has no target release.
	UnboundedRelease = Release{Major: 9, Minor: 9}
)

func (r Release) Compare(other Release) int {
	switch {
	case r.Major < other.Major:
		return -1
	case r.Major > other.Major:
		return 1
	case r.Minor < other.Minor:
		return -1
	case r.Minor > other.Minor:
		return 1
	default:
		return 0
	}
}

func (r Release) Less(other Release) bool {
	return r.Compare(other) < 0
}

func (r Release) String() string {
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

// ParseRelease parses "major.minor", e.g. "8.1".
func ParseRelease(value string) (Release, error) {
	trimmed := strings.TrimSpace(value)
	parts := strings.Split(trimmed, ".")
	if len(parts) != 2 {
		return Release{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid release: %q", value))
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return Release{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid release major version: %q", value)).
			WithCause(err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return Release{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid release minor version: %q", value)).
			WithCause(err)
	}
	return Release{Major: major, Minor: minor}, nil
}

// ParseReleases parses every value and returns them sorted ascending
// without duplicates.
func ParseReleases(values []string) ([]Release, error) {
	seen := map[Release]struct{}{}
	var out []Release
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		release, err := ParseRelease(value)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[release]; ok {
			continue
		}
		seen[release] = struct{}{}
		out = append(out, release)
	}
	SortReleases(out)
	return out, nil
}

func SortReleases(releases []Release) {
	sort.Slice(releases, func(i, j int) bool {
		return releases[i].Less(releases[j])
	})
}

func FormatReleases(releases []Release) string {
	parts := make([]string, 0, len(releases))
	for _, release := range releases {
		parts = append(parts, release.String())
	}
	return strings.Join(parts, ",")
}
