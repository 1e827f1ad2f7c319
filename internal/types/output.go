package types

// ConflictRecord is one contradiction the reconciler resolved.
type ConflictRecord struct {
	Release Release
	Package string
	Kind    ConflictKind
	Origin  string
}

type TransitionReport struct {
	Records []ConflictRecord
}

// PlanIntent describes a written plan.
type PlanIntent struct {
	PlanID    string
	CreatedAt string
	Releases  string
	Events    string
	Installed string
}

// PlanOutput is everything the plan writer persists.
type PlanOutput struct {
	Intent      PlanIntent
	Keep        []Package
	Install     []Package
	Remove      []Package
	Report      TransitionReport
	Unaccounted []string
}
