package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProblem = `; Jack helps those who are happy.
Happy(jill)
Happy(jill) -> Helps(jack, jill)

|- Helps(jack, jill)
`

func TestReadProblem(t *testing.T) {
	pb, err := readProblem(strings.NewReader(testProblem))
	require.NoError(t, err)
	assert.Equal(t, "Helps(jack, jill)", pb.goal)
	assert.Equal(t, []string{"Happy(jill)", "Happy(jill) -> Helps(jack, jill)"}, pb.axioms)
	assert.Equal(t, []string{"Happy(jill)", "Happy(jill) -> Helps(jack, jill)", "Helps(jack, jill)"}, pb.formulas())

	assert.Error(t, pb.merge("Happy(jack)", nil))
	require.NoError(t, pb.merge("", []string{"Happy(jack)"}))
	assert.Len(t, pb.axioms, 3)

	_, err = readProblem(strings.NewReader("⊢ P\n⊢ Q\n"))
	assert.Error(t, err)
	_, err = readProblem(strings.NewReader("P\n|-\n"))
	assert.Error(t, err)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "help.dcec")
	require.NoError(t, os.WriteFile(path, []byte(testProblem), 0644))

	out, err := run(t, "prove", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "c proving "+path)
	assert.Contains(t, out, "PROVED")
	assert.Contains(t, out, "3. Helps(jack, jill) [ModusPonens 1, 2]")

	out, err = run(t, "prove", "--goal", "Q", "--axiom", "P", "--axiom", "P -> ~Q", "--max-steps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "DISPROVED")

	_, err = run(t, "prove", "--axiom", "P")
	assert.Error(t, err)

	_, err = run(t, "prove", "--goal", "Q(", "--axiom", "P")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "P", "P -> Q")
	require.NoError(t, err)
	assert.Equal(t, "SATISFIABLE\nP: true\nQ: true\n", out)

	out, err = run(t, "check", "P -> Q", "R", "P", "~Q")
	require.NoError(t, err)
	assert.Equal(t, "UNSATISFIABLE\n(P → Q)\nP\n¬Q\n", out)

	_, err = run(t, "check")
	assert.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "P & Q -> R", "x < 3")
	require.NoError(t, err)
	assert.Equal(t, "(implies (and P Q) R)\n(lessThan x 3)\n", out)

	out, err = run(t, "parse", "--f-expr", "P & Q -> R")
	require.NoError(t, err)
	assert.Equal(t, "implies(and(P,Q),R)\n", out)

	out, err = run(t, "parse", "--formula", "P & Q -> R")
	require.NoError(t, err)
	assert.Equal(t, "((P ∧ Q) → R)\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dcec version "+version+"\n", out)
}
