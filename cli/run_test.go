package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frontDoc = `
name: front
description: advancing 1-D front
token: cli-fixed
grid:
  size: [5]
seed:
  shape: plane
  axis: 0
  offset: 2
params:
  time_step: 0.5
  iterations: 2
stepper:
  name: offset
  speed: 1
`

func TestRunScenarioText(t *testing.T) {
	path := writeScenario(t, frontDoc)

	stdoutBuf := &bytes.Buffer{}
	stderrBuf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: "text"})
	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	output := stdoutBuf.String()
	assert.Contains(t, output, "name: front")
	assert.Contains(t, output, "token: cli-fixed")
	assert.Contains(t, output, "contour:")
	assert.Contains(t, output, "#0...")

	assert.Contains(t, stderrBuf.String(), "run finished",
		"lifecycle logs go to stderr")
}

func TestRunScenarioJSON(t *testing.T) {
	path := writeScenario(t, frontDoc)

	stdoutBuf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: "json"})
	cmd.SetOut(stdoutBuf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var resp Response
	require.NoError(t, json.Unmarshal(stdoutBuf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "front", data["name"])
	assert.Equal(t, "cli-fixed", data["run_token"])
	assert.Equal(t, float64(2), data["iterations"])
	assert.Equal(t, float64(0), data["band_size"])
	assert.Equal(t, float64(-1), data["min"])
	assert.Equal(t, float64(3), data["max"])
	assert.Equal(t, float64(1), data["mean"])
}

func TestRunExpectationFailure(t *testing.T) {
	doc := frontDoc + `expect:
  min: 7
`
	path := writeScenario(t, doc)

	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), CodeRunFailed)
	assert.Contains(t, buf.String(), "expectation")
}

func TestRunMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), CodeLoadFailed)
}

func TestRunInvalidDocument(t *testing.T) {
	doc := `
name: half
description: grid without size
grid:
  spacing: [1.0]
seed:
  shape: uniform
stepper:
  name: identity
`
	path := writeScenario(t, doc)

	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err),
		"an invalid document is a scenario failure, same as check")
	assert.Contains(t, buf.String(), CodeInvalidScenario)
	assert.Contains(t, buf.String(), "grid.size")
}
