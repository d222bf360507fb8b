package settings

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/gridcursor/targeting"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 80.0, s.Grid.CellSize)
	assert.Equal(t, float32(0.3), s.Grid.LineWidth)
	assert.Equal(t, 5.0, s.Movement.Step)
	assert.Equal(t, 2.0, s.Movement.FastMultiplier)
	assert.Equal(t, "Keyboard cursor", s.Window.Title)
	assert.True(t, s.Window.Fullscreen)
	assert.Equal(t, BackendAuto, s.Pointer.Backend)
	assert.Empty(t, s.Path)

	assert.Equal(t, color.NRGBA{R: 0x64, G: 0x64, B: 0x64, A: 0xff}, s.Grid.LineColor.Color)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, s.Grid.Label.Color.Color)

	assert.Equal(t, targeting.DefaultOptions(), s.TargetingOptions())
}

func TestLoadMissingOverride(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 80.0, s.Grid.CellSize)
	assert.Empty(t, s.Path)
}

func TestLoadOverrideMerges(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
grid:
  cell_size: 120
  line_color: crimson
movement:
  fast_multiplier: 3
pointer:
  backend: log
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120.0, s.Grid.CellSize)
	assert.Equal(t, 3.0, s.Movement.FastMultiplier)
	assert.Equal(t, BackendLog, s.Pointer.Backend)
	// untouched fields keep defaults
	assert.Equal(t, 5.0, s.Movement.Step)
	assert.Equal(t, float32(0.3), s.Grid.LineWidth)
	assert.Equal(t, 48.0, s.Grid.Label.MaxSize)

	assert.Equal(t, color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff}, s.Grid.LineColor.Color)
	assert.Equal(t, path, s.Path)
	assert.False(t, s.ModTime.IsZero())
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"tiny_cells", "grid:\n  cell_size: 2\n"},
		{"zero_step", "movement:\n  step: 0\n"},
		{"negative_multiplier", "movement:\n  fast_multiplier: -1\n"},
		{"bad_backend", "pointer:\n  backend: wayland\n"},
		{"label_range", "fine:\n  label:\n    min_size: 50\n    max_size: 10\n"},
		{"bad_color", "grid:\n  line_color: \"#12\"\n"},
		{"not_yaml", "grid: [\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), c.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
		err  bool
	}{
		{`"#ff0000"`, color.NRGBA{R: 0xff, A: 0xff}, false},
		{`"00ff0080"`, color.NRGBA{G: 0xff, A: 0x80}, false},
		{`Black`, color.RGBA{A: 0xff}, false},
		{`"#zzzzzz"`, nil, true},
		{`"#fff"`, nil, true},
		{`[1, 2]`, nil, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out struct {
				C *YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte("c: "+c.in), &out)
			if c.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, out.C.Color)
		})
	}
}

func TestYAMLColorOr(t *testing.T) {
	var unset *YAMLColor
	assert.Equal(t, color.White, unset.Or(color.White))

	set := &YAMLColor{Color: color.Black}
	assert.Equal(t, color.Black, set.Or(color.White))
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "grid:\n  cell_size: 80\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  cell_size: 100\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, path, filepath.Clean(name))
	case <-time.After(2 * time.Second):
		t.Fatal("no event for settings file")
	}
}
