package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateInline(t *testing.T) {
	out := filepath.Join(t.TempDir(), "color_enum.go")

	_, logs, err := run(t, "generate", "--package", "colors", "--type", "Color", "-o", out, "Red", "Green", "Blue")
	require.NoError(t, err)
	assert.Contains(t, logs, "generated enums")

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package colors")
	assert.Contains(t, string(src), "const ColorCount = 3")
	assert.Contains(t, string(src), "func NewColorArray[V any](red, green, blue V)")
}

func TestGenerateInlineWithLabelsAndPrefix(t *testing.T) {
	out := filepath.Join(t.TempDir(), "phase_enum.go")

	_, _, err := run(t, "generate",
		"--package", "jobs", "--type", "Phase", "--prefix",
		"--labels", "pending,running", "--doc", "Phase of a job.",
		"-o", out, "Pending", "Running")
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "PhasePending Phase = iota")
	assert.Contains(t, string(src), `enums.MustDeclare[Phase]("Phase", "pending", "running")`)
	assert.Contains(t, string(src), "// Phase of a job.")
}

func TestGeneratePackageFromGoGenerate(t *testing.T) {
	t.Setenv("GOPACKAGE", "fromgogenerate")
	out := filepath.Join(t.TempDir(), "out.go")

	_, _, err := run(t, "generate", "--type", "Mode", "-o", out, "On", "Off")
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package fromgogenerate")
}

func TestGenerateSettingsFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENUMGEN_PACKAGE", "fromenv")
	t.Setenv("GOPACKAGE", "ignored")
	t.Setenv("ENUMGEN_OUTPUT", filepath.Join(dir, "env.go"))

	_, _, err := run(t, "generate", "--type", "Mode", "On", "Off")
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "env.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package fromenv")
}

func TestGenerateLabelsFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENUMGEN_LABELS", "on,off")

	_, _, err := run(t, "generate", "--package", "p", "--type", "Mode", "-o", filepath.Join(dir, "env.go"), "On", "Off")
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "env.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), `enums.MustDeclare[Mode]("Mode", "on", "off")`)

	// The flag still wins over the environment.
	_, _, err = run(t, "generate", "--package", "p", "--type", "Mode", "--labels", "up,down",
		"-o", filepath.Join(dir, "flag.go"), "On", "Off")
	require.NoError(t, err)

	src, err = os.ReadFile(filepath.Join(dir, "flag.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), `enums.MustDeclare[Mode]("Mode", "up", "down")`)
}

func TestGenerateManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "enums.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
package: demo
enums:
  - name: Pair
    prefix: true
    variants: [Foo, Bar]
  - name: Trio
    prefix: true
    variants: [Foo, Bar, Baz]
`), 0o644))

	_, _, err := run(t, "generate", "-m", manifest)
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, defaultManifestOutput))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package demo")
	assert.Contains(t, string(src), "const PairCount = 2")
	assert.Contains(t, string(src), "const TrioCount = 3")
	assert.Contains(t, string(src), "TrioBaz")
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no input", args: []string{"generate", "--package", "p"}},
		{name: "both modes", args: []string{"generate", "--package", "p", "--type", "E", "-m", "x.yaml"}},
		{name: "no package", args: []string{"generate", "--type", "E", "A"}},
		{name: "no variants", args: []string{"generate", "--package", "p", "--type", "E"}},
		{name: "duplicate variants", args: []string{"generate", "--package", "p", "--type", "E", "A", "A"}},
		{name: "missing manifest", args: []string{"generate", "-m", filepath.Join(dir, "nope.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GOPACKAGE", "")
			args := append(tt.args, "-o", filepath.Join(dir, tt.name+".go"))
			_, _, err := run(t, args...)
			assert.Error(t, err)
			assert.NoFileExists(t, filepath.Join(dir, tt.name+".go"))
		})
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "enumgen "+version+"\n", stdout)
}
