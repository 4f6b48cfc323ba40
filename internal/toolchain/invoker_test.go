// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor records calls and returns a configured response.
type mockExecutor struct {
	calls []string
	code  int
	err   error
}

func (m *mockExecutor) Run(name string, args []string, _ stdio) (int, error) {
	m.calls = append(m.calls, name+" "+strings.Join(args, " "))
	return m.code, m.err
}

func newTestInvoker(e executor) *ProcessInvoker {
	return &ProcessInvoker{log: zerolog.Nop(), exec: e}
}

func TestProcessInvoker_Invoke(t *testing.T) {
	tests := []struct {
		name     string
		exec     *mockExecutor
		argv     []string
		wantCode int
		wantErr  string
		wantCall string
	}{
		{
			name:     "success",
			exec:     &mockExecutor{},
			argv:     []string{"pandoc", "r.md", "--output", "dist/pandoc/report.typ"},
			wantCall: "pandoc r.md --output dist/pandoc/report.typ",
		},
		{
			name:     "non-zero exit is a status, not an error",
			exec:     &mockExecutor{code: 101},
			argv:     []string{"cargo", "build"},
			wantCode: 101,
			wantCall: "cargo build",
		},
		{
			name:     "start failure is wrapped",
			exec:     &mockExecutor{err: errors.New("executable file not found in $PATH")},
			argv:     []string{"pandoc"},
			wantErr:  "running pandoc",
			wantCall: "pandoc ",
		},
		{
			name:    "empty command line",
			exec:    &mockExecutor{},
			argv:    nil,
			wantErr: "empty command line",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := newTestInvoker(tt.exec).Invoke(tt.argv)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCode, code)
			}
			if tt.wantCall == "" {
				assert.Empty(t, tt.exec.calls)
				return
			}
			assert.Equal(t, []string{tt.wantCall}, tt.exec.calls)
		})
	}
}

func TestOSExecutor_Run(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	var out, errOut bytes.Buffer
	s := stdio{out: &out, err: &errOut}

	code, err := defaultExec.Run("sh", []string{"-c", "echo converted; echo warn >&2"}, s)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "converted\n", out.String())
	assert.Equal(t, "warn\n", errOut.String())

	code, err = defaultExec.Run("sh", []string{"-c", "exit 3"}, s)
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	_, err = defaultExec.Run("typst-report-no-such-binary", nil, s)
	require.Error(t, err)
}
