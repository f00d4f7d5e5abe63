package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Guard decides at runtime whether a transition may be taken.
type Guard[S, E comparable] func(ctx context.Context, from S, event E, data any) bool

// Action runs while a transition is taken, before the state changes.
// Returning an error aborts the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E, data any) error

// Listener observes completed transitions. It runs after the machine lock
// is released, so it may call back into the machine.
type Listener[S, E comparable] func(ctx context.Context, from, to S, event E)

// Transition is a state change triggered by an event.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // all must pass
	Actions []Action[S, E] // run in order
}

// Machine is a thread-safe finite state machine over comparable state and
// event types, typically string enums.
type Machine[S, E comparable] struct {
	initial     S
	current     S
	transitions map[S]map[E][]Transition[S, E]
	listeners   []Listener[S, E]
	mu          sync.RWMutex
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.Current() == s
}

func (m *Machine[S, E]) addTransition(t Transition[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.transitions[t.From] == nil {
		m.transitions[t.From] = make(map[E][]Transition[S, E])
	}
	// Several transitions per from/event pair allow guard-based branching.
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
}

// match returns the first transition whose guards all pass. Callers hold the lock.
func (m *Machine[S, E]) match(ctx context.Context, event E, data any) (*Transition[S, E], error) {
	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return nil, &ErrNoTransitionAvailable{State: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
	}

	for i := range candidates {
		t := &candidates[i]
		passed := true
		for _, guard := range t.Guards {
			if !guard(ctx, m.current, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, nil
		}
	}

	return nil, &ErrTransitionRejected{State: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
}

// Fire takes the first permitted transition for event from the current state.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()

	t, err := m.match(ctx, event, data)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	from := m.current
	for _, action := range t.Actions {
		if err := action(ctx, from, t.To, event, data); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	listeners := m.listeners
	m.mu.Unlock()

	for _, l := range listeners {
		l(ctx, from, t.To, event)
	}
	return nil
}

// CanFire reports whether Fire(ctx, event, data) would find a permitted transition.
// Actions are not run.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.match(ctx, event, data)
	return err == nil
}

// Reset returns the machine to its initial state without running actions or listeners.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
