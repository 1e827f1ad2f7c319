package types

import "sort"

// LedgerEntry is the disposition of a single package and the repository
// it was attributed to by the last event that touched it.
type LedgerEntry struct {
	Disposition Disposition
	Origin      string
}

// Ledger assigns each package name exactly one disposition, so a package
// can never be kept, installed and removed at the same time.
type Ledger struct {
	entries map[string]LedgerEntry
}

func NewLedger() Ledger {
	return Ledger{entries: map[string]LedgerEntry{}}
}

func (l Ledger) Get(name string) (LedgerEntry, bool) {
	entry, ok := l.entries[name]
	return entry, ok
}

func (l Ledger) Disposition(name string) Disposition {
	return l.entries[name].Disposition
}

func (l Ledger) Len() int {
	return len(l.entries)
}

func (l Ledger) Empty() bool {
	return len(l.entries) == 0
}

// Set assigns the disposition unconditionally. Setting Unresolved removes
// the name.
func (l *Ledger) Set(name string, disposition Disposition, origin string) {
	if l.entries == nil {
		l.entries = map[string]LedgerEntry{}
	}
	if disposition == DispositionUnresolved {
		delete(l.entries, name)
		return
	}
	l.entries[name] = LedgerEntry{Disposition: disposition, Origin: origin}
}

func (l *Ledger) Delete(name string) {
	delete(l.entries, name)
}

// Mark records a decision made within a single release. Remove outranks
// Install, which outranks Keep; a weaker mark never replaces a stronger
// one, and an equal mark only refreshes the origin.
func (l *Ledger) Mark(name string, disposition Disposition, origin string) {
	current, ok := l.entries[name]
	if ok && current.Disposition > disposition {
		return
	}
	l.Set(name, disposition, origin)
}

func (l Ledger) Clone() Ledger {
	out := Ledger{entries: make(map[string]LedgerEntry, len(l.entries))}
	for name, entry := range l.entries {
		out.entries[name] = entry
	}
	return out
}

// Names returns every name sorted.
func (l Ledger) Names() []string {
	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns the names holding disposition, as name to origin.
func (l Ledger) With(disposition Disposition) map[string]string {
	out := map[string]string{}
	for name, entry := range l.entries {
		if entry.Disposition == disposition {
			out[name] = entry.Origin
		}
	}
	return out
}

func (l Ledger) Keep() map[string]string {
	return l.With(DispositionKeep)
}

func (l Ledger) Install() map[string]string {
	return l.With(DispositionInstall)
}

func (l Ledger) Remove() map[string]string {
	return l.With(DispositionRemove)
}

// Entries returns the sorted packages holding disposition.
func (l Ledger) Entries(disposition Disposition) []Package {
	var out []Package
	for _, name := range l.Names() {
		entry := l.entries[name]
		if entry.Disposition == disposition {
			out = append(out, Package{Name: name, Repository: entry.Origin})
		}
	}
	return out
}

// Counts returns the number of keep, install and remove entries.
func (l Ledger) Counts() (keep int, install int, remove int) {
	for _, entry := range l.entries {
		switch entry.Disposition {
		case DispositionKeep:
			keep++
		case DispositionInstall:
			install++
		case DispositionRemove:
			remove++
		}
	}
	return keep, install, remove
}

func (l Ledger) Equal(other Ledger) bool {
	if len(l.entries) != len(other.entries) {
		return false
	}
	for name, entry := range l.entries {
		if otherEntry, ok := other.entries[name]; !ok || otherEntry != entry {
			return false
		}
	}
	return true
}
