package statemachine

// Option configures a Machine during construction.
type Option[S, E comparable] func(*Machine[S, E])

// TransitionOption configures a single transition.
type TransitionOption[S, E comparable] func(*Transition[S, E])

// New creates a machine starting in initial.
func New[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E][]Transition[S, E]),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithTransition registers from --event--> to.
func WithTransition[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		t := Transition[S, E]{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		m.addTransition(t)
	}
}

// WithTransitionFrom registers the same event and target for several source states.
func WithTransitionFrom[S, E comparable](from []S, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		for _, f := range from {
			WithTransition(f, to, event, opts...)(m)
		}
	}
}

// WithListener registers a callback for completed transitions.
func WithListener[S, E comparable](l Listener[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		if l != nil {
			m.listeners = append(m.listeners, l)
		}
	}
}

// WithGuard adds a guard to a transition. Nil is ignored.
func WithGuard[S, E comparable](guard Guard[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		if guard != nil {
			t.Guards = append(t.Guards, guard)
		}
	}
}

// WithAction adds an action to a transition. Nil is ignored.
func WithAction[S, E comparable](action Action[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}
