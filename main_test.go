package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/schedulers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorkload(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExecute_RunAll(t *testing.T) {
	path := writeWorkload(t, "processes.csv", "1,5,0,2\n2,3,1,1\n3,8,2,3\n")

	var out bytes.Buffer
	require.NoError(t, execute([]string{"run", "-quantum", "4", path}, nil, &out))

	for _, algorithm := range schedulers.Algorithms {
		assert.Contains(t, out.String(), algorithm.Title())
	}
	assert.Contains(t, out.String(), "Round-robin (quantum 4)")
}

func TestExecute_RunSingle(t *testing.T) {
	path := writeWorkload(t, "processes.yaml", "time_quantum: 2\njobs:\n  - arrival_time: 0\n    burst_time: 5\n  - arrival_time: 1\n    burst_time: 3\n")

	var out bytes.Buffer
	require.NoError(t, execute([]string{"run", "-algorithm", "3", path}, nil, &out))
	assert.Contains(t, out.String(), "Round-robin (quantum 2)")
	assert.NotContains(t, out.String(), "First-come")
	assert.Contains(t, out.String(), "0\t2\t4\t6\t7\t8")
}

func TestExecute_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, execute([]string{"bogus"}, nil, &out), ErrInvalidArgs)
	assert.ErrorIs(t, execute([]string{"run"}, nil, &out), ErrInvalidArgs)

	path := writeWorkload(t, "processes.csv", "1,5,0\n")
	assert.ErrorIs(t, execute([]string{"run", "-algorithm", "9", path}, nil, &out), schedulers.ErrInvalidChoice)
	assert.ErrorIs(t, execute([]string{"run", "-algorithm", "rr", "-quantum", "-2", path}, nil, &out), core.ErrInvalidQuantum)
}

func TestExecute_Interactive(t *testing.T) {
	input := "3\n0 5 2\n1 3 1\n2 8 3\n1\n"
	var out bytes.Buffer
	require.NoError(t, execute([]string{"interactive"}, strings.NewReader(input), &out))

	assert.Contains(t, out.String(), "Enter number of processes:")
	assert.Contains(t, out.String(), "First-come, first-serve")
	assert.Contains(t, out.String(), "0\t5\t8\t16")
	assert.NotContains(t, out.String(), "Enter Time Quantum")
}

func TestExecute_InteractiveRoundRobin(t *testing.T) {
	input := "2\n0 5 0\n1 3 0\n3\n2\n"
	var out bytes.Buffer
	require.NoError(t, execute([]string{"interactive"}, strings.NewReader(input), &out))
	assert.Contains(t, out.String(), "Enter Time Quantum")
	assert.Contains(t, out.String(), "Round-robin (quantum 2)")
}

func TestExecute_InteractiveInvalid(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, execute([]string{"interactive"}, strings.NewReader("0\n"), &out), ErrInvalidArgs)
	assert.ErrorIs(t, execute([]string{"interactive"}, strings.NewReader("1\n0 2 1\n7\n"), &out), schedulers.ErrInvalidChoice)
	assert.ErrorIs(t, execute([]string{"interactive"}, strings.NewReader("1\n0 0 1\n1\n"), &out), core.ErrInvalidBurst)
}

func TestExecute_RunUsesConfiguredQuantum(t *testing.T) {
	path := writeWorkload(t, "processes.csv", "1,5,0\n2,3,1\n")

	var out bytes.Buffer
	require.NoError(t, execute([]string{"run", "-config", t.TempDir(), path}, nil, &out))
	assert.Contains(t, out.String(), "First-come, first-serve")
	assert.Contains(t, out.String(), "Round-robin (quantum 2)")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("scheduler:\n  round_robin:\n    time_quantum: 3\n"), 0o644))
	out.Reset()
	require.NoError(t, execute([]string{"run", "-config", dir, "-algorithm", "rr", path}, nil, &out))
	assert.Contains(t, out.String(), "Round-robin (quantum 3)")
	assert.Contains(t, out.String(), "0\t3\t6\t8")
}

func TestExecute_RunPrintsNothingOnError(t *testing.T) {
	path := writeWorkload(t, "processes.csv", "1,5,0\n2,3,1\n")

	var out bytes.Buffer
	err := execute([]string{"run", "-quantum", "-1", path}, nil, &out)
	assert.ErrorIs(t, err, core.ErrInvalidQuantum)
	assert.Empty(t, out.String())
}
