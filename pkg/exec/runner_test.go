package exec

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
)

func newTestRunner() (*RealRunner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := NewRealRunner()
	r.Stdout = &stdout
	r.Stderr = &stderr
	return r, &stdout, &stderr
}

func TestRealRunner_ExitCode(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		expectCode int
	}{
		{"exit 0", []string{"-c", "exit 0"}, 0},
		{"exit 1", []string{"-c", "exit 1"}, 1},
		{"exit 42", []string{"-c", "exit 42"}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRunner()
			err := r.Run(context.Background(), Command{Name: "sh", Args: tt.args})

			assert.Equal(t, tt.expectCode, ExitCode(err))
			if tt.expectCode == 0 {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
			assert.Equal(t, "sh "+strings.Join(tt.args, " "), errors.GetErrorDetails(err)["command"])
		})
	}
}

func TestRealRunner_StreamsOutput(t *testing.T) {
	r, stdout, stderr := newTestRunner()

	err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo out; echo err >&2"}})
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRealRunner_DirAndEnv(t *testing.T) {
	dir := t.TempDir()
	r, stdout, _ := newTestRunner()

	err := r.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "pwd; echo $SAVI_TEST_VAR"},
		Dir:  dir,
		Env:  map[string]string{"SAVI_TEST_VAR": "hello_world"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], strings.TrimPrefix(dir, "/private")))
	assert.Equal(t, "hello_world", lines[1])
}

func TestRealRunner_StartFailure(t *testing.T) {
	r, _, _ := newTestRunner()

	err := r.Run(context.Background(), Command{Name: "no_such_command_abc123"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandStart))
	assert.Equal(t, -1, ExitCode(err))
}

func TestRealRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r, _, _ := newTestRunner()
	start := time.Now()
	err := r.Run(ctx, Command{Name: "sh", Args: []string{"-c", "sleep 10"}})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second, "cancellation must not wait for the command to finish")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRealRunner_CanceledKillsGrandchildren(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r, _, _ := newTestRunner()
	start := time.Now()
	// the background sleep inherits the output pipe, as node does under npm
	err := r.Run(ctx, Command{Name: "sh", Args: []string{"-c", "sleep 10 & wait"}})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDryRunner(t *testing.T) {
	d := NewDryRunner()

	require.NoError(t, d.Run(context.Background(), Command{Name: "npm", Args: []string{"init", "-y"}, Dir: "/p"}))
	require.NoError(t, d.Run(context.Background(), Command{Name: "no_such_command_abc123"}))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "npx", Command{Name: "npx"}.String())
	assert.Equal(t, "npx --no-install husky install", Command{Name: "npx", Args: []string{"--no-install", "husky", "install"}}.String())
}
