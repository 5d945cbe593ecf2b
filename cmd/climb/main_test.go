package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/climb/evolve"
	"github.com/katalvlaran/climb/phrase"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--log-level", "error"))

	err := root.Execute()

	return out.String(), err
}

func TestPhraseCmd_PrintsScore(t *testing.T) {
	out, err := execute(t, "phrase", "Hi there", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestPhraseCmd_CustomGenes(t *testing.T) {
	out, err := execute(t, "phrase", "abba", "--genes", "ab", "--seed", "4")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestPhraseCmd_UnreachableTarget(t *testing.T) {
	_, err := execute(t, "phrase", "abc", "--genes", "ab")
	assert.ErrorIs(t, err, phrase.ErrUnreachableTarget)
}

func TestOneMaxCmd_PrintsScore(t *testing.T) {
	out, err := execute(t, "onemax", "--size", "40", "--seed", "2")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

// TestOneMaxCmd_Verbose prints the trace lines before the final score.
func TestOneMaxCmd_Verbose(t *testing.T) {
	out, err := execute(t, "onemax", "--size", "16", "--seed", "5", "--verbose")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "1", lines[len(lines)-1])

	for _, line := range lines[:len(lines)-1] {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 3, "line %q", line)
		assert.Len(t, fields[0], 16)
		assert.Len(t, fields[1], len("0.0000"))
	}
	assert.True(t, strings.HasPrefix(lines[len(lines)-2], "1111111111111111\t1.0000\t"))
}

// TestOneMaxCmd_ConfigLimit stops on the configured iteration cap and still
// prints the best-so-far score.
func TestOneMaxCmd_ConfigLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\nsearch:\n  max_iterations: 1\nonemax:\n  size: 200\n"), 0o644))

	out, err := execute(t, "onemax", "--config", path)
	assert.ErrorIs(t, err, evolve.ErrIterationLimit)

	score, perr := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, perr)
	assert.Less(t, score, 1.0)
}

// TestFlagsOverrideConfig lifts the file's iteration cap from the command line.
func TestFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  max_iterations: 1\nonemax:\n  size: 200\n"), 0o644))

	out, err := execute(t, "onemax", "--config", path, "--max-iterations", "0", "--size", "20", "--seed", "6")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestInvalidFlags(t *testing.T) {
	_, err := execute(t, "onemax", "--size", "0")
	assert.Error(t, err)

	_, err = execute(t, "onemax", "--max-iterations", "-3")
	assert.Error(t, err)
}

func TestOneMaxCmd_HelpShowsConfigDefault(t *testing.T) {
	out, err := execute(t, "onemax", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "(default 10000)")
}

// TestLoggerConfig_VerboseKeepsEveryEntry checks that verbose runs neither
// sample nor filter debug entries.
func TestLoggerConfig_VerboseKeepsEveryEntry(t *testing.T) {
	quiet := loggerConfig(zapcore.InfoLevel, false)
	assert.NotNil(t, quiet.Sampling)
	assert.Equal(t, zapcore.InfoLevel, quiet.Level.Level())

	verbose := loggerConfig(zapcore.InfoLevel, true)
	assert.Nil(t, verbose.Sampling)
	assert.Equal(t, zapcore.DebugLevel, verbose.Level.Level())
}
