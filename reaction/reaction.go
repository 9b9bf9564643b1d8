// Package reaction pairs a state transition with the declarative effects it
// requests. Effects are opaque to this package; they accumulate in append
// order and are interpreted into platform commands exactly once per cycle via
// one of the ToTuple functions.
package reaction

import "slices"

// Reaction is an immutable (state, effects) pair
// Zero value is a reaction with zero state and no effects
type Reaction[S, E any] struct {
	state   S
	effects []E
}

// To returns a reaction carrying s with no effects
func To[S, E any](s S) Reaction[S, E] {
	return Reaction[S, E]{state: s}
}

// With returns a reaction carrying s and the given effects in order
func With[S, E any](s S, effects ...E) Reaction[S, E] {
	return Reaction[S, E]{state: s, effects: slices.Clone(effects)}
}

// State returns the carried state
func (r Reaction[S, E]) State() S {
	return r.state
}

// Effects returns a copy of the carried effects in append order
func (r Reaction[S, E]) Effects() []E {
	return slices.Clone(r.effects)
}

// Add appends effects after the existing ones; state is unchanged
func (r Reaction[S, E]) Add(effects ...E) Reaction[S, E] {
	return EffectsAdd(effects, r)
}

// EffectsAdd appends effects to r's effect list, preserving prior order
// The returned reaction never shares a backing array with r
func EffectsAdd[S, E any](effects []E, r Reaction[S, E]) Reaction[S, E] {
	if len(effects) == 0 {
		return r
	}
	return Reaction[S, E]{
		state:   r.state,
		effects: slices.Concat(r.effects, effects),
	}
}

// Map rewrites the carried state; effects pass through unchanged
func Map[S, T, E any](f func(S) T, r Reaction[S, E]) Reaction[T, E] {
	return Reaction[T, E]{state: f(r.state), effects: r.effects}
}

// EffectMap rewrites every carried effect; state is unchanged
func EffectMap[S, E, F any](f func(E) F, r Reaction[S, E]) Reaction[S, F] {
	var mapped []F
	if len(r.effects) > 0 {
		mapped = make([]F, len(r.effects))
		for i, e := range r.effects {
			mapped[i] = f(e)
		}
	}
	return Reaction[S, F]{state: r.state, effects: mapped}
}
