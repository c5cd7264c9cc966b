package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockWriter implements io.Writer for testing output failure paths across packages
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) Write(p []byte) (int, error) {
	args := m.Called(p)

	// Handle function return types (for tests that inspect the payload)
	if fn, ok := args.Get(0).(func([]byte) int); ok {
		return fn(p), args.Error(1)
	}

	if args.Get(0) == nil {
		return 0, args.Error(1)
	}
	return args.Get(0).(int), args.Error(1)
}

var _ io.Writer = (*MockWriter)(nil)
