package commands

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/mock"
)

// mockProgram records invocations through testify's mock.
type mockProgram struct {
	mock.Mock
}

func (m *mockProgram) Run(term Terminal, args []string) Status {
	ret := m.Called(term, args)
	return ret.Get(0).(Status)
}

// recordingTerminal keeps everything printed to it.
type recordingTerminal struct {
	out strings.Builder
}

func (r *recordingTerminal) Print(s string)   { r.out.WriteString(s) }
func (r *recordingTerminal) Println(s string) { r.out.WriteString(s + "\r\n") }
func (r *recordingTerminal) Printf(format string, args ...any) {
	r.out.WriteString(fmt.Sprintf(format, args...))
}
func (r *recordingTerminal) PrintError(code ErrorCode, field string) {
	r.out.WriteString("error: " + code.String() + " - " + field + "\r\n")
}
func (r *recordingTerminal) String() string { return r.out.String() }
