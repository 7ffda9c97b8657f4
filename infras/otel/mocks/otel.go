package mocks

import (
	"context"

	"bistro/infras/otel"
)

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (noopOtel) Shutdown(context.Context) error { return nil }

// NewOtel returns a tracer that records nothing, for unit tests.
func NewOtel() otel.Otel {
	return noopOtel{}
}

type noopScope struct{}

func (noopScope) AddEvent(string) {}
func (noopScope) End() {}
func (noopScope) SetAttribute(string, any) {}
func (noopScope) SetAttributes(map[string]any) {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}

// NewScope returns a span that drops everything recorded on it.
func NewScope() otel.Scope {
	return noopScope{}
}
