package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() (*options, *pflag.FlagSet) {
	opts := &options{}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.register(flags)
	return opts, flags
}

func TestListCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "triangle"))
	assert.True(t, strings.HasPrefix(lines[9], "framebuffer"))
}

func TestLessonSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"triangle", "model", "framebuffer"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "learngl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "warn"

[window]
width = 1024
height = 768
`), 0o644))

	opts, flags := testFlags()
	require.NoError(t, flags.Parse([]string{
		"--config", path, "--height", "480", "--assets", "/data",
	}))

	cfg, err := opts.load(flags)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/data", cfg.Assets.Dir)
}

func TestInvalidFlagRejected(t *testing.T) {
	chdir(t, t.TempDir())
	opts, flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--width=-5"}))

	_, err := opts.load(flags)
	assert.Error(t, err)
}

func TestUnchangedFlagsKeepConfig(t *testing.T) {
	chdir(t, t.TempDir())
	opts, flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := opts.load(flags)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, "assets", cfg.Assets.Dir)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
