package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dragboard/config"
)

func TestSimulateScript(t *testing.T) {
	script, err := loadScript(filepath.Join("testdata", "reorder.yaml"))
	require.NoError(t, err)
	require.Len(t, script.Steps, 7)

	var out bytes.Buffer
	require.NoError(t, simulate(&out, config.Default(), script))

	text := out.String()
	assert.Contains(t, text, "LIFT todo-1 todo[0]")
	assert.Contains(t, text, "DROP todo-1 todo[0] -> todo[2]")
	assert.Contains(t, text, "CANCEL doing-1 doing[0] -> none")
	assert.Contains(t, text, "todo: Fix login, Review docs, Write parser, Plan sprint")
	assert.Contains(t, text, "doing: Refactor cache, Update deps")
	assert.Contains(t, text, "drag.drops=1")
	assert.Contains(t, text, "drag.cancels=1")
}

func TestSimulateRejectsUnknownEvent(t *testing.T) {
	script := Script{Steps: []Step{{Event: "teleport"}}}
	err := simulate(&bytes.Buffer{}, config.Default(), script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}

func TestLoadScriptMissingFile(t *testing.T) {
	_, err := loadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
