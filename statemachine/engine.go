// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package statemachine implements a generic, re-entrant finite-state-machine
// engine with per-state Entry/Exit/Evaluate actions and run-to-completion,
// deferred transitions.
package statemachine

// Trigger names which of a state's three actions fires.
type Trigger int

const (
	Entry Trigger = iota
	Exit
	Evaluate
)

// Action is a state callback. It may itself call Engine.Transition to chain
// into another state once the current handler returns; it must not call
// Engine.EvaluateState on the same engine.
type Action func()

// Engine is a run-to-completion finite state machine: states are identified
// by small integers 0..numStates, and a Transition requested during an
// Entry, Exit, or Evaluate action is deferred until the triggering handler
// returns, then drained until no further transition is pending.
type Engine struct {
	numStates   int
	actions     map[int][3]Action
	curState    int
	nextState   int
	nextPending bool
}

// NewEngine returns an uninitialized engine; call InitStates before use.
func NewEngine() *Engine {
	return &Engine{}
}

// InitStates allocates room for n states and resets the engine to its
// sentinel "no state" position (n itself).
func (e *Engine) InitStates(n int) bool {
	if n < 0 {
		return false
	}
	e.numStates = n
	e.actions = make(map[int][3]Action, n)
	e.curState = n
	e.nextState = n
	e.nextPending = false
	return true
}

// AddAction registers action for (state, trigger). A later call for the same
// slot replaces the prior action.
func (e *Engine) AddAction(state int, trigger Trigger, action Action) bool {
	if state < 0 || state >= e.numStates {
		return false
	}
	slot := e.actions[state]
	slot[trigger] = action
	e.actions[state] = slot
	return true
}

// GetCurState returns the active state, or the sentinel numStates if no
// transition has taken effect yet.
func (e *Engine) GetCurState() int { return e.curState }

// Transition records new_state as pending; it takes effect on the next
// DoTransition (or the drain following EvaluateState), not immediately.
func (e *Engine) Transition(newState int) {
	e.nextState = newState
	e.nextPending = true
}

// DoTransition applies at most one pending transition: it fires Exit on the
// current state (if registered), moves to the new state, then fires Entry
// on it (if registered). If either handler requests another transition,
// DoTransition chains through it before returning, so a caller never
// observes a half-applied transition. It returns false if nothing was
// pending.
func (e *Engine) DoTransition() bool {
	if !e.nextPending {
		return false
	}
	for e.nextPending {
		e.nextPending = false
		target := e.nextState

		if a := e.actionFor(e.curState, Exit); a != nil {
			a()
		}
		e.curState = target
		if a := e.actionFor(e.curState, Entry); a != nil {
			a()
		}
	}
	return true
}

// EvaluateState fires the current state's Evaluate action (if any), then
// drains any transition it requested to completion.
func (e *Engine) EvaluateState() {
	if a := e.actionFor(e.curState, Evaluate); a != nil {
		a()
	}
	e.DoTransition()
}

func (e *Engine) actionFor(state int, trigger Trigger) Action {
	slot, ok := e.actions[state]
	if !ok {
		return nil
	}
	return slot[trigger]
}
