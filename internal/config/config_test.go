package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/dragsheet/internal/sheet"
)

func useConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// Runs after Setenv restores the variable.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	return dir
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.NoError(t, cfg.Sheet.ToSheet().Validate())
}

func TestConfigPath(t *testing.T) {
	home := useConfigHome(t)
	assert.Equal(t, filepath.Join(home, "dragsheet", "config.toml"), ConfigPath())
}

func TestLoadMissingFile(t *testing.T) {
	useConfigHome(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	useConfigHome(t)
	writeFile(t, ConfigPath(), `
[sheet]
min_size = 0.1
initial_size = 0.3
snap_sizes = [0.4, 0.7]
snap_duration_ms = 250
expand_to_content = true

[ui]
rows = 12
animation_curve = "ease_in_out"
animation_ms = 150

[keybinds]
reset = "Home"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.1, cfg.Sheet.MinSize)
	assert.Equal(t, 1.0, cfg.Sheet.MaxSize, "unset keys keep their defaults")
	assert.True(t, cfg.Sheet.ExpandToContent)
	assert.Equal(t, 12, cfg.UI.Rows)
	_, d := cfg.UI.Animation()
	assert.Equal(t, 150*time.Millisecond, d)
	assert.Equal(t, "Home", cfg.Keybinds.Reset)
	assert.Equal(t, "F12", cfg.Keybinds.Debug)

	sc := cfg.Sheet.ToSheet()
	assert.Equal(t, []float64{0.4, 0.7}, sc.SnapSizes)
	assert.Equal(t, 250*time.Millisecond, sc.SnapAnimationDuration)
	assert.True(t, sc.Snap)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"bad toml", "[sheet\nmin_size = 1", nil},
		{"min above max", "[sheet]\nmin_size = 0.9\nmax_size = 0.5", sheet.ErrInvalidConfig},
		{"snap outside bounds", "[sheet]\nsnap_sizes = [0.1]", sheet.ErrInvalidConfig},
		{"NaN min size", "[sheet]\nmin_size = nan", sheet.ErrInvalidConfig},
		{"NaN snap size", "[sheet]\nsnap_sizes = [0.4, nan, 0.6]", sheet.ErrInvalidConfig},
		{"infinite max size", "[sheet]\nmax_size = inf", sheet.ErrInvalidConfig},
		{"zero pixel ratio", "[physics]\ndevice_pixel_ratio = 0", ErrInvalid},
		{"NaN pixel ratio", "[physics]\ndevice_pixel_ratio = nan", ErrInvalid},
		{"infinite pixel ratio", "[physics]\ndevice_pixel_ratio = inf", ErrInvalid},
		{"zero window", "[ui]\nwidth = 0", ErrInvalid},
		{"negative rows", "[ui]\nrows = -1", ErrInvalid},
		{"unknown curve", "[ui]\nanimation_curve = \"bounce\"", ErrInvalid},
		{"zero animation", "[ui]\nanimation_ms = 0", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, tt.data)
			_, err := LoadFile(path)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	useConfigHome(t)
	cfg := DefaultConfig()
	cfg.Sheet.Snap = false
	cfg.Sheet.SnapSizes = []float64{0.5}
	cfg.UI.Rows = 7

	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dragsheet", "config.toml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	writeFile(t, path, "[sheet]\nmin_size = 0.5\nmax_size = 0.6\ninitial_size = 0.5")
	waitFor(t, updates, func(r Reload) bool { return r.Err == nil && r.Config.Sheet.MinSize == 0.5 })

	writeFile(t, path, "[sheet]\nmin_size = 2")
	waitFor(t, updates, func(r Reload) bool {
		return r.Config == nil && errors.Is(r.Err, sheet.ErrInvalidConfig)
	})

	writeFile(t, path, "[ui]\nrows = 3")
	waitFor(t, updates, func(r Reload) bool { return r.Err == nil && r.Config.UI.Rows == 3 })

	cancel()
	assert.Eventually(t, func() bool {
		for {
			select {
			case _, ok := <-updates:
				if !ok {
					return true
				}
			default:
				return false
			}
		}
	}, 5*time.Second, 10*time.Millisecond)
}

// waitFor drains updates until one satisfies ok. Truncating writes may
// publish intermediate reloads first.
func waitFor(t *testing.T, updates <-chan Reload, ok func(Reload) bool) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r, open := <-updates:
			require.True(t, open, "watcher closed")
			if ok(r) {
				return
			}
		case <-timeout:
			t.Fatal("no matching config reload")
		}
	}
}
