package dispatch

import (
	"context"
	"sync"
)

// State of a Pending dispatch.
type State int

const (
	StatePending State = iota
	StateResolved
	StateRejected
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	case StateRejected:
		return "rejected"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Pending is the handle of an in-flight dispatch. It settles exactly once:
// resolved with a value, rejected with an error, or cancelled.
type Pending[T any] struct {
	mu        sync.Mutex
	state     State
	value     T
	err       error
	done      chan struct{}
	abort     context.CancelFunc
	onResolve []func(T)
	onReject  []func(error)
	onCancel  []func()
}

func newPending[T any](abort context.CancelFunc) *Pending[T] {
	return &Pending[T]{
		done:  make(chan struct{}),
		abort: abort,
	}
}

// Cancel aborts the request. It returns false when the dispatch had
// already settled. Resolve and reject continuations never run after a
// successful Cancel.
func (p *Pending[T]) Cancel() bool {
	var zero T
	if !p.settle(StateCancelled, zero, ErrCancelled) {
		return false
	}
	p.abort()
	return true
}

// Wait blocks until the dispatch settles.
func (p *Pending[T]) Wait() (T, error) {
	<-p.done
	return p.result()
}

// Await is Wait bounded by ctx. An expired ctx cancels the dispatch.
func (p *Pending[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		p.Cancel()
		<-p.done
	}
	return p.result()
}

// Done is closed once the dispatch settles.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

func (p *Pending[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Then registers continuations. They run on the settling goroutine, or
// immediately when the dispatch already settled. Either may be nil.
func (p *Pending[T]) Then(onResolve func(T), onReject func(error)) *Pending[T] {
	p.mu.Lock()
	state, value, err := p.state, p.value, p.err
	if state == StatePending {
		if onResolve != nil {
			p.onResolve = append(p.onResolve, onResolve)
		}
		if onReject != nil {
			p.onReject = append(p.onReject, onReject)
		}
	}
	p.mu.Unlock()

	switch {
	case state == StateResolved && onResolve != nil:
		onResolve(value)
	case state == StateRejected && onReject != nil:
		onReject(err)
	}
	return p
}

// OnCancel registers a continuation run when Cancel wins the race.
func (p *Pending[T]) OnCancel(fn func()) *Pending[T] {
	p.mu.Lock()
	state := p.state
	if state == StatePending {
		p.onCancel = append(p.onCancel, fn)
	}
	p.mu.Unlock()

	if state == StateCancelled {
		fn()
	}
	return p
}

func (p *Pending[T]) result() (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.err
}

func (p *Pending[T]) resolve(value T) bool {
	return p.settle(StateResolved, value, nil)
}

func (p *Pending[T]) reject(err error) bool {
	var zero T
	return p.settle(StateRejected, zero, err)
}

func (p *Pending[T]) settle(state State, value T, err error) bool {
	p.mu.Lock()
	if p.state != StatePending {
		p.mu.Unlock()
		return false
	}
	p.state, p.value, p.err = state, value, err
	onResolve, onReject, onCancel := p.onResolve, p.onReject, p.onCancel
	p.onResolve, p.onReject, p.onCancel = nil, nil, nil
	close(p.done)
	p.mu.Unlock()

	switch state {
	case StateResolved:
		for _, fn := range onResolve {
			fn(value)
		}
	case StateRejected:
		for _, fn := range onReject {
			fn(err)
		}
	case StateCancelled:
		for _, fn := range onCancel {
			fn()
		}
	}
	return true
}
