package policies

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"transition-planner/internal/types"
)

// ActionPolicy maps each event action onto the effects it has on the
// slated ledger. An action may carry several effects; they are applied
// independently and in the listed order.
type ActionPolicy struct {
	effects map[types.Action][]types.Effect
}

func NewActionPolicy() ActionPolicy {
	return ActionPolicy{effects: map[types.Action][]types.Effect{
		types.ActionPresent:    {types.EffectKeepInputs},
		types.ActionDeprecated: {types.EffectKeepInputs},
		types.ActionMoved:      {types.EffectKeepOutputs},
		types.ActionSplit:      {types.EffectPartitionOutputs, types.EffectRemoveUnmatchedInputs},
		types.ActionMerged:     {types.EffectPartitionOutputs, types.EffectRemoveUnmatchedInputs},
		types.ActionRenamed:    {types.EffectPartitionOutputs, types.EffectRemoveInputs},
		types.ActionReplaced:   {types.EffectPartitionOutputs, types.EffectRemoveInputs},
		types.ActionRemoved:    {types.EffectRemoveInputs},
	}}
}

func (p ActionPolicy) EffectsFor(action types.Action) ([]types.Effect, error) {
	effects, ok := p.effects[action]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no effects defined for action %s", action))
	}
	return append([]types.Effect(nil), effects...), nil
}
