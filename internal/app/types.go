package app

import "transition-planner/internal/types"

type PlanRequest struct {
	EventsPath    string
	InstalledPath string
	Releases      []string
	AllReleases   bool
	OutputDir     string
}

type PlanResult struct {
	PlanID      string
	OutputDir   string
	Releases    []types.Release
	Keep        int
	Install     int
	Remove      int
	Conflicts   int
	Unaccounted int
}

type ValidateRequest struct {
	EventsPath string
}

type ReleaseSummary struct {
	Release types.Release
	Count   int
}

type ActionSummary struct {
	Action types.Action
	Count  int
}

type ValidateResult struct {
	EventCount int
	Releases   []ReleaseSummary
	Actions    []ActionSummary
}

type InspectRequest struct {
	OutputDir string
}

type InspectResult struct {
	Intent       types.PlanIntent
	KeepCount    int
	InstallCount int
	RemoveCount  int
	Conflicts    []types.ConflictRecord
	Unaccounted  []string
}
