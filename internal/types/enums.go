package types

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Action is the kind of package transition an event records. The numeric
// value is the index used by the event data files.
type Action int

const (
	ActionPresent Action = iota
	ActionRemoved
	ActionDeprecated
	ActionReplaced
	ActionSplit
	ActionMerged
	ActionMoved
	ActionRenamed
)

var actionNames = [...]string{
	ActionPresent:    "Present",
	ActionRemoved:    "Removed",
	ActionDeprecated: "Deprecated",
	ActionReplaced:   "Replaced",
	ActionSplit:      "Split",
	ActionMerged:     "Merged",
	ActionMoved:      "Moved",
	ActionRenamed:    "Renamed",
}

// Actions returns every action in index order.
func Actions() []Action {
	out := make([]Action, 0, len(actionNames))
	for i := range actionNames {
		out = append(out, Action(i))
	}
	return out
}

func (a Action) Valid() bool {
	return a >= 0 && int(a) < len(actionNames)
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseActionIndex maps a data-file action index onto the closed enumeration.
func ParseActionIndex(index int) (Action, error) {
	action := Action(index)
	if !action.Valid() {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown action index: %d", index))
	}
	return action, nil
}

// Disposition is the single tag a package carries in a Ledger.
type Disposition int

const (
	DispositionUnresolved Disposition = iota
	DispositionKeep
	DispositionInstall
	DispositionRemove
)

func (d Disposition) String() string {
	switch d {
	case DispositionKeep:
		return "keep"
	case DispositionInstall:
		return "install"
	case DispositionRemove:
		return "remove"
	default:
		return "unresolved"
	}
}

type ConflictKind string

const (
	// ConflictUnkeep retracts an earlier keep because a later event removes the package.
	ConflictUnkeep ConflictKind = "unkeep"
	// ConflictAnnihilate cancels a pending install against a later removal.
	ConflictAnnihilate ConflictKind = "annihilate"
	// ConflictOverruled drops a later keep or install of a package an earlier
	// release already removed.
	ConflictOverruled ConflictKind = "overruled"
)

// Effect is one independent consequence of applying an event.
type Effect string

const (
	// EffectKeepInputs keeps every input package.
	EffectKeepInputs Effect = "keep-inputs"
	// EffectKeepOutputs keeps every output package.
	EffectKeepOutputs Effect = "keep-outputs"
	// EffectPartitionOutputs installs output packages that are not installed
	// and keeps the ones that are.
	EffectPartitionOutputs Effect = "partition-outputs"
	// EffectRemoveUnmatchedInputs removes input packages with no output of
	// the same name.
	EffectRemoveUnmatchedInputs Effect = "remove-unmatched-inputs"
	// EffectRemoveInputs removes every input package.
	EffectRemoveInputs Effect = "remove-inputs"
)
