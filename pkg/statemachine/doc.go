// Package statemachine implements a small generic finite state machine.
//
// States and events are any comparable types, usually string enums:
//
//	type State string
//	type Event string
//
//	m := statemachine.New[State, Event]("idle",
//		statemachine.WithTransition[State, Event]("idle", "running", "start"),
//		statemachine.WithTransition[State, Event]("running", "idle", "stop"),
//	)
//	if err := m.Fire(ctx, "start", nil); err != nil {
//		// no transition, or rejected by a guard
//	}
//
// Guards veto a transition; actions run before the state changes and abort it
// on error; listeners observe completed transitions. All methods are safe for
// concurrent use. The first registered transition whose guards pass wins.
package statemachine
