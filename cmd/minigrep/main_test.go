package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"

func TestRun(t *testing.T) {
	file := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(file, []byte(poem), 0o644))

	cases := []struct {
		name    string
		args    []string
		env     map[string]string
		wantOut string
		wantErr error
	}{
		{
			name:    "Positive - literal",
			args:    []string{"fast", file},
			wantOut: "safe, fast, productive.\n",
		},
		{
			name:    "Positive - IGNORE_CASE",
			args:    []string{"rUsT", file},
			env:     map[string]string{"IGNORE_CASE": ""},
			wantOut: "Rust:\nTrust me.\n",
		},
		{
			name:    "Positive - REGEX wins over IGNORE_CASE",
			args:    []string{`^rust`, file},
			env:     map[string]string{"IGNORE_CASE": "", "REGEX": ""},
			wantOut: "",
		},
		{
			name:    "Positive - zero matches is not an error",
			args:    []string{"zzz", file},
			wantOut: "",
		},
		{
			name:    "Negative - missing query",
			args:    nil,
			wantErr: model.ErrMissingQuery,
		},
		{
			name:    "Negative - missing file path",
			args:    []string{"fast"},
			wantErr: model.ErrMissingFilePath,
		},
		{
			name:    "Negative - invalid pattern",
			args:    []string{"(", file},
			env:     map[string]string{"REGEX": ""},
			wantErr: model.ErrInvalidPattern,
		},
		{
			name:    "Negative - file not found",
			args:    []string{"fast", filepath.Join(t.TempDir(), "missing.txt")},
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}
			var out bytes.Buffer

			err := run(&out, tt.args, lookup, zap.NewNop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, out.String(), "no partial output after an error")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestDiagnostic(t *testing.T) {
	require.Equal(t, "Problem parsing the arguments", diagnostic(model.ErrMissingQuery))
	require.Equal(t, "Problem parsing the arguments", diagnostic(model.ErrMissingFilePath))
	require.Equal(t, "Error: boom", diagnostic(errors.New("boom")))
}

func TestRootCmd(t *testing.T) {
	file := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(file, []byte(poem), 0o644))
	logFile := filepath.Join(t.TempDir(), "minigrep.log")

	cmd := newRootCmd(func(string) (string, bool) { return "", false })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--log-file", logFile, "three", file, "--ignored-extra"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "Pick three.\n", out.String())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "search finished")
}

func TestRootCmdMissingArgs(t *testing.T) {
	cmd := newRootCmd(func(string) (string, bool) { return "", false })
	cmd.SetArgs([]string{"three"})

	err := cmd.Execute()
	require.ErrorIs(t, err, model.ErrMissingFilePath)
}
