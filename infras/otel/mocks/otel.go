package mocks

import (
	"context"
	"dashboard/infras/otel"
	"sync"
)

// Otel is an in-memory otel.Otel. It keeps every scope it opens so tests can
// assert on what was traced.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{Name: scopeName, Span: spanName, Attributes: map[string]any{}}

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Find returns the last scope opened for span, or nil.
func (o *Otel) Find(span string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := len(o.scopes) - 1; i >= 0; i-- {
		if o.scopes[i].Span == span {
			return o.scopes[i]
		}
	}

	return nil
}

type Scope struct {
	mu         sync.Mutex
	Name       string
	Span       string
	Attributes map[string]any
	Events     []string
	Errors     []error
	Ended      bool
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	s.TraceError(err)
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
