package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/phanxgames/holddrag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay_Morning(t *testing.T) {
	var out bytes.Buffer
	err := replayFile(&out, holddrag.DefaultConfig(), nil, filepath.Join("testdata", "morning.json"))
	require.NoError(t, err)

	want := `pulse
drop  Oatmeal -> lunch
tap   Coffee
pulse
drop  Pasta bake -> dinner
Breakfast:
  Coffee
Lunch:
  Oatmeal
  Chicken salad
Dinner:
  Pasta bake
Snacks:
  Apple
`
	assert.Equal(t, want, out.String())
}

func TestReplay_DropOnOwnMealIsSilent(t *testing.T) {
	script, err := holddrag.LoadScript([]byte(`{"steps": [
		{"action": "press", "x": 44, "y": 40},
		{"action": "wait", "ms": 300},
		{"action": "move", "x": 44, "y": 24},
		{"action": "release", "x": 44, "y": 24}
	]}`))
	require.NoError(t, err)

	var out bytes.Buffer
	d, err := replay(&out, holddrag.DefaultConfig(), nil, script)
	require.NoError(t, err)
	assert.Len(t, d.Entries("breakfast"), 2)
	assert.NotContains(t, out.String(), "drop")
}

func TestReplayFile_Errors(t *testing.T) {
	var out bytes.Buffer
	err := replayFile(&out, holddrag.DefaultConfig(), nil, filepath.Join("testdata", "missing.json"))
	assert.ErrorContains(t, err, "read script")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, writeFile(path, `{"steps": [{"action": "jump"}]}`))
	err = replayFile(&out, holddrag.DefaultConfig(), nil, path)
	assert.ErrorContains(t, err, "parse gesture script")
}
