package core

import (
	"transition-planner/internal/types"
)

// Reconcile folds a release's slated ledger into total and returns the new
// total together with the contradictions it resolved. Neither input is
// modified.
//
// A slated removal of a kept package unkeeps it and the removal proceeds.
// A slated removal of a package still pending install annihilates both
// decisions. A removal in total is final: a later keep or install of the
// same package is dropped and reported as overruled. A keep never downgrades
// a pending install.
func Reconcile(release types.Release, total types.Ledger, slated types.Ledger) (types.Ledger, []types.ConflictRecord) {
	next := total.Clone()
	if slated.Empty() {
		return next, nil
	}
	pending := slated.Clone()
	var conflicts []types.ConflictRecord

	for _, name := range slated.Names() {
		entry, _ := slated.Get(name)
		if entry.Disposition != types.DispositionRemove {
			continue
		}
		switch next.Disposition(name) {
		case types.DispositionKeep:
			next.Delete(name)
			conflicts = append(conflicts, types.ConflictRecord{
				Release: release,
				Package: name,
				Kind:    types.ConflictUnkeep,
				Origin:  entry.Origin,
			})
		case types.DispositionInstall:
			next.Delete(name)
			pending.Delete(name)
			conflicts = append(conflicts, types.ConflictRecord{
				Release: release,
				Package: name,
				Kind:    types.ConflictAnnihilate,
				Origin:  entry.Origin,
			})
		}
	}

	for _, name := range pending.Names() {
		entry, _ := pending.Get(name)
		current := next.Disposition(name)
		switch {
		case entry.Disposition == types.DispositionKeep && current == types.DispositionInstall:
			continue
		case entry.Disposition != types.DispositionRemove && current == types.DispositionRemove:
			conflicts = append(conflicts, types.ConflictRecord{
				Release: release,
				Package: name,
				Kind:    types.ConflictOverruled,
				Origin:  entry.Origin,
			})
			continue
		}
		next.Set(name, entry.Disposition, entry.Origin)
	}
	return next, conflicts
}
