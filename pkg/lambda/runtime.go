package lambda

import (
	"context"
	"sync"

	"serverless-examples/pkg/server"
)

// ContainerBuilder creates the process container at cold start
type ContainerBuilder func(ctx context.Context) (*server.Container, error)

// Runtime holds process state shared by warm invocations. The container is built on the
// first successful call and read-only afterwards; a failed build is not remembered.
type Runtime struct {
	build     ContainerBuilder
	container *server.Container
	mu        sync.RWMutex
}

// NewRuntime creates a runtime that builds its container with build
func NewRuntime(build ContainerBuilder) *Runtime {
	return &Runtime{build: build}
}

// Container returns the process container, building it on cold start
func (rt *Runtime) Container(ctx context.Context) (*server.Container, error) {
	rt.mu.RLock()
	if rt.container != nil {
		container := rt.container
		rt.mu.RUnlock()
		return container, nil
	}
	rt.mu.RUnlock()

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.container != nil {
		return rt.container, nil
	}

	container, err := rt.build(ctx)
	if err != nil {
		return nil, err
	}

	rt.container = container
	return container, nil
}

// IsWarm reports whether cold start initialization has completed
func (rt *Runtime) IsWarm() bool {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.container != nil
}

// Cleanup releases the container
func (rt *Runtime) Cleanup() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.container == nil {
		return nil
	}
	if err := rt.container.Close(); err != nil {
		return err
	}
	rt.container = nil
	return nil
}
