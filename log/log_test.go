package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lvl)

	lvl, err = ParseLevel("TRACE")
	require.NoError(t, err)
	assert.Equal(t, LevelTrace, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestModuleFiltering(t *testing.T) {
	prev := Root()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})))

	DisableModule(ChartModule)
	Debug(ChartModule, "hidden")
	assert.Empty(t, buf.String())

	EnableModules(" chart_mod ,")
	defer DisableModule(ChartModule)
	Debug(ChartModule, "shown", "series", 2)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "module=chart_mod")
	assert.Contains(t, buf.String(), "series=2")

	buf.Reset()
	Info(BenchModule, "always")
	assert.Contains(t, buf.String(), "always")
}

func TestLevelStrings(t *testing.T) {
	assert.Equal(t, "crit", LevelString(LevelCrit))
	assert.Equal(t, "trace", LevelString(LevelTrace))
	assert.Equal(t, "unknown", LevelString(slog.Level(3)))
}
