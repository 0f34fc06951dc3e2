package shell

import (
	"github.com/stretchr/testify/mock"

	"github.com/kcaldas/microshell/pkg/commands"
)

type mockProgram struct {
	mock.Mock
}

func (m *mockProgram) Run(term commands.Terminal, args []string) commands.Status {
	ret := m.Called(term, args)
	return ret.Get(0).(commands.Status)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(eventType string, event interface{}) {
	m.Called(eventType, event)
}
