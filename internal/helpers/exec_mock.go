package helpers

import (
	"context"
	"io"
	"sync"
)

// Call records a single invocation made through MockCommandRunner
type Call struct {
	Name string
	Args []string
}

// MockCommandRunner is a mock implementation of CommandRunner for testing
type MockCommandRunner struct {
	CommandExistsFunc       func(name string) bool
	CanSpawnFunc            func(ctx context.Context, name string) bool
	RunCommandFunc          func(ctx context.Context, name string, args ...string) (string, error)
	RunCommandStreamingFunc func(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error
	GetExitCodeFunc         func(err error) int

	mu    sync.Mutex
	calls []Call
}

func (m *MockCommandRunner) record(name string, args []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Name: name, Args: append([]string(nil), args...)})
}

// Calls returns every recorded invocation in order
func (m *MockCommandRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CommandExists implements CommandRunner.CommandExists
func (m *MockCommandRunner) CommandExists(name string) bool {
	if m.CommandExistsFunc != nil {
		return m.CommandExistsFunc(name)
	}
	return false
}

// CanSpawn implements CommandRunner.CanSpawn
func (m *MockCommandRunner) CanSpawn(ctx context.Context, name string) bool {
	m.record(name, nil)
	if m.CanSpawnFunc != nil {
		return m.CanSpawnFunc(ctx, name)
	}
	return true
}

// RunCommand implements CommandRunner.RunCommand
func (m *MockCommandRunner) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	m.record(name, args)
	if m.RunCommandFunc != nil {
		return m.RunCommandFunc(ctx, name, args...)
	}
	return "", nil
}

// RunCommandStreaming implements CommandRunner.RunCommandStreaming
func (m *MockCommandRunner) RunCommandStreaming(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	m.record(name, args)
	if m.RunCommandStreamingFunc != nil {
		return m.RunCommandStreamingFunc(ctx, stdout, stderr, name, args...)
	}
	return nil
}

// GetExitCode implements CommandRunner.GetExitCode
func (m *MockCommandRunner) GetExitCode(err error) int {
	if m.GetExitCodeFunc != nil {
		return m.GetExitCodeFunc(err)
	}
	if err != nil {
		return 1
	}
	return 0
}
