// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/simulation"
)

const circuit = `
components:
  - id: pump
    type: pump
    ports: [{id: out}]
    pump_pressures: {out: 1000}
  - id: chip
    type: straight
    ports: [{id: a}, {id: b}]
    resistance: 2.0e9
  - id: drain
    type: outlet
    ports: [{id: in}]
connections:
  - {id: feed, from_component_id: pump, from_port_id: out, to_component_id: chip, to_port_id: a, resistance: 1.0e9}
  - {id: waste, from_component_id: chip, from_port_id: b, to_component_id: drain, to_port_id: in, resistance: 1.0e9}
`

func writeCircuit(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(circuit), 0o600))
	return path
}

func quietLogs(t *testing.T) {
	t.Setenv("HYDROSIM_LOG_LEVEL", "error")
}

func TestRun_Simulate(t *testing.T) {
	quietLogs(t)
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"run", "-f", writeCircuit(t)}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var rep simulation.Report
	require.NoError(t, sonic.Unmarshal(out.Bytes(), &rep))
	require.NotNil(t, rep.NodePressures["chip:b"])
	assert.InDelta(t, 250, *rep.NodePressures["chip:b"], 1e-9)
}

func TestRun_Reach(t *testing.T) {
	quietLogs(t)
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"reach", "-f", writeCircuit(t)}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "+ chip\n+ feed\n+ waste\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &out, &errOut))
	assert.Contains(t, errOut.String(), "Usage:")

	errOut.Reset()
	assert.Equal(t, 2, run(context.Background(), []string{"fly"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "unknown command: fly")

	assert.Equal(t, 0, run(context.Background(), []string{"help"}, &out, &errOut))
}

func TestRun_Failures(t *testing.T) {
	quietLogs(t)
	var out, errOut bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"run"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "-f is required")

	errOut.Reset()
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	assert.Equal(t, 1, run(context.Background(), []string{"run", "-f", missing}, &out, &errOut))

	errOut.Reset()
	assert.Equal(t, 1, run(context.Background(), []string{"reach", "-f", "circuit.txt"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "unknown snapshot format")
}
