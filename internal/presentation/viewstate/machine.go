// Package viewstate holds the transient state of a view that triggers a
// server action: nothing requested yet, waiting, done, or failed.
package viewstate

import (
	"context"
	"errors"
	"sync"
)

var ErrInvalidTransition = errors.New("viewstate: invalid transition")

// State is one of Idle, Pending, Succeeded[T] or Failed.
type State interface {
	Name() string
	isState()
}

type Idle struct{}

type Pending struct{}

type Succeeded[T any] struct {
	Result T
}

type Failed struct {
	Message string
}

func (Idle) Name() string         { return "idle" }
func (Pending) Name() string      { return "pending" }
func (Succeeded[T]) Name() string { return "succeeded" }
func (Failed) Name() string       { return "failed" }

func (Idle) isState()         {}
func (Pending) isState()      {}
func (Succeeded[T]) isState() {}
func (Failed) isState()       {}

// Machine tracks a single view's state. The zero value is Idle and ready
// to use. It is safe for concurrent use.
type Machine[T any] struct {
	mu    sync.Mutex
	state State
	gen   uint64
}

func New[T any]() *Machine[T] {
	return &Machine[T]{}
}

func (m *Machine[T]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current()
}

func (m *Machine[T]) current() State {
	if m.state == nil {
		return Idle{}
	}
	return m.state
}

// Submit moves to Pending from any state, dropping the previous outcome.
func (m *Machine[T]) Submit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submit()
}

func (m *Machine[T]) submit() uint64 {
	m.gen++
	m.state = Pending{}
	return m.gen
}

func (m *Machine[T]) Resolve(result T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settle(m.gen, Succeeded[T]{Result: result})
}

// Reject records err's message. A nil err still fails the view.
func (m *Machine[T]) Reject(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settle(m.gen, Failed{Message: messageOf(err)})
}

func (m *Machine[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.state = Idle{}
}

func (m *Machine[T]) settle(gen uint64, next State) error {
	if gen != m.gen {
		return ErrInvalidTransition
	}
	if _, ok := m.current().(Pending); !ok {
		return ErrInvalidTransition
	}
	m.state = next
	return nil
}

// Run submits, calls fn and settles with its outcome. If another Submit or
// Reset happened while fn was running, fn's outcome is discarded and the
// newer state is returned.
func (m *Machine[T]) Run(ctx context.Context, fn func(context.Context) (T, error)) State {
	m.mu.Lock()
	gen := m.submit()
	m.mu.Unlock()

	result, err := fn(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		_ = m.settle(gen, Failed{Message: messageOf(err)})
	} else {
		_ = m.settle(gen, Succeeded[T]{Result: result})
	}
	return m.current()
}

func (m *Machine[T]) IsPending() bool {
	_, ok := m.State().(Pending)
	return ok
}

// Result returns the value of a Succeeded state.
func (m *Machine[T]) Result() (T, bool) {
	s, ok := m.State().(Succeeded[T])
	return s.Result, ok
}

// Message returns the message of a Failed state.
func (m *Machine[T]) Message() (string, bool) {
	s, ok := m.State().(Failed)
	return s.Message, ok
}

func messageOf(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
