package ports

import "transition-planner/internal/types"

type ActionPolicyPort interface {
	EffectsFor(action types.Action) ([]types.Effect, error)
}
