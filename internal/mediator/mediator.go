// internal/mediator/mediator.go

// Package mediator dispatches command and query structs to the single
// handler registered for their type. Cross-module calls (item resolution,
// stock compensation) go through the same dispatch as external requests.
package mediator

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sooqhub/sooq-backend/internal/results"
)

// Handler pairs one request type with one use case.
type Handler[R any, T any] interface {
	Handle(ctx context.Context, req R) results.Result[T]
}

type Mediator struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]any
}

func New() *Mediator {
	return &Mediator{handlers: make(map[reflect.Type]any)}
}

// Register binds request type R to its handler. Registration happens once at
// wiring time; a duplicate registration is a programming error and panics.
func Register[R any, T any](m *Mediator, h Handler[R, T]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rt := reflect.TypeOf((*R)(nil)).Elem()
	if _, exists := m.handlers[rt]; exists {
		panic(fmt.Sprintf("mediator: handler already registered for %s", rt))
	}
	m.handlers[rt] = h
}

type handlerFunc[R any, T any] func(context.Context, R) results.Result[T]

func (f handlerFunc[R, T]) Handle(ctx context.Context, req R) results.Result[T] {
	return f(ctx, req)
}

// RegisterFunc binds a request type to a bare handler function (typically a
// method value), letting the compiler infer both type parameters.
func RegisterFunc[R any, T any](m *Mediator, fn func(context.Context, R) results.Result[T]) {
	Register[R, T](m, handlerFunc[R, T](fn))
}

// Send locates the handler for req and invokes it. A missing handler or a
// response-type mismatch is reported as an internal-error Result, never a
// panic: dispatch faults at request time must surface like any other
// handler failure.
func Send[T any, R any](ctx context.Context, m *Mediator, req R) results.Result[T] {
	rt := reflect.TypeOf(req)

	m.mu.RLock()
	raw, ok := m.handlers[rt]
	m.mu.RUnlock()

	if !ok {
		logrus.WithField("request", rt.String()).Error("No handler registered")
		return results.Internal[T](fmt.Sprintf("no handler registered for %s", rt), nil)
	}

	h, ok := raw.(Handler[R, T])
	if !ok {
		logrus.WithField("request", rt.String()).Error("Handler response type mismatch")
		return results.Internal[T](fmt.Sprintf("handler response type mismatch for %s", rt), nil)
	}

	return h.Handle(ctx, req)
}
