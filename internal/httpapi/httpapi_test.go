// SPDX-License-Identifier: MIT

package httpapi_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/internal/config"
	"github.com/katalvlaran/hydronet/internal/httpapi"
	"github.com/katalvlaran/hydronet/metrics"
	"github.com/katalvlaran/hydronet/simulation"
)

const straightJSON = `{
	"components": [
		{"id": "pump", "type": "pump", "ports": [{"id": "out", "role": "outlet"}], "pump_pressures": {"out": 1000}},
		{"id": "chip", "type": "straight", "ports": [{"id": "a"}, {"id": "b"}], "resistance": 2e9},
		{"id": "drain", "type": "outlet", "ports": [{"id": "in", "role": "inlet"}]}
	],
	"connections": [
		{"id": "feed", "from_component_id": "pump", "from_port_id": "out", "to_component_id": "chip", "to_port_id": "a", "resistance": 1e9},
		{"id": "waste", "from_component_id": "chip", "from_port_id": "b", "to_component_id": "drain", "to_port_id": "in", "resistance": 1e9}
	]
}`

const straightYAML = `
components:
  - {id: pump, type: pump, ports: [{id: out}], pump_pressures: {out: 1000}}
  - {id: chip, type: straight, ports: [{id: a}, {id: b}], resistance: 2.0e9}
  - {id: drain, type: outlet, ports: [{id: in}]}
connections:
  - {id: feed, from_component_id: pump, from_port_id: out, to_component_id: chip, to_port_id: a, resistance: 1.0e9}
`

func newServer(t *testing.T, origins ...string) (*httptest.Server, *prometheus.Registry) {
	t.Helper()
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPrometheus(reg)
	require.NoError(t, err)

	sim := simulation.New(simulation.WithRecorder(rec))
	cfg := config.HTTPConfig{MaxBodyBytes: 1 << 16, AllowedOrigins: origins, Metrics: true}
	srv := httptest.NewServer(httpapi.New(sim, cfg, zerolog.Nop(), reg).Handler())
	t.Cleanup(srv.Close)
	return srv, reg
}

func post(t *testing.T, url, contentType, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

func TestHealth(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp2, body := post(t, srv.URL+"/health", "application/json", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
	assert.Contains(t, string(body), "method not allowed")
}

func TestSimulate_OK(t *testing.T) {
	srv, _ := newServer(t)
	resp, body := post(t, srv.URL+"/simulate", "application/json", straightJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var rep simulation.Report
	require.NoError(t, sonic.Unmarshal(body, &rep))
	require.NotNil(t, rep.NodePressures["chip:a"])
	assert.InDelta(t, 750, *rep.NodePressures["chip:a"], 1e-9)
	assert.Len(t, rep.SegmentFlows, 3)
	assert.Equal(t, 4, rep.Nodes)
	assert.NotEmpty(t, rep.RunID)
}

func TestSimulate_YAML(t *testing.T) {
	srv, _ := newServer(t)
	resp, body := post(t, srv.URL+"/simulate?pretty=true", "application/yaml", straightYAML)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "\n  \"node_pressures\"")
}

func TestSimulate_Errors(t *testing.T) {
	srv, _ := newServer(t)

	resp, _ := post(t, srv.URL+"/simulate", "application/json", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	dangling := `{"components":[{"id":"pump","type":"pump","ports":[{"id":"out"}]}],
		"connections":[{"id":"c","from_component_id":"pump","from_port_id":"out","to_component_id":"ghost","to_port_id":"in","resistance":1}]}`
	resp, body := post(t, srv.URL+"/simulate", "application/json", dangling)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), "unresolved reference")

	resp, _ = post(t, srv.URL+"/simulate", "application/json", strings.Repeat(" ", 1<<16+16))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	r, err := http.Get(srv.URL + "/simulate")
	require.NoError(t, err)
	r.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, r.StatusCode)
}

func TestReachability(t *testing.T) {
	srv, _ := newServer(t)
	resp, body := post(t, srv.URL+"/reachability", "application/json", straightJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Connections []string `json:"connections"`
		Internal    []string `json:"internal"`
	}
	require.NoError(t, sonic.Unmarshal(body, &res))
	assert.Equal(t, []string{"feed", "waste"}, res.Connections)
	assert.Equal(t, []string{"chip"}, res.Internal)
}

func TestMetricsAfterRuns(t *testing.T) {
	srv, _ := newServer(t)
	post(t, srv.URL+"/simulate", "application/json", straightJSON)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hydronet_operations_total{operation="simulate",status="success"} 1`)
	assert.Contains(t, string(body), "hydronet_network_nodes 4")
}

func TestCORS(t *testing.T) {
	srv, _ := newServer(t, "http://ui.test")

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/simulate", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://ui.test")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://ui.test", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Methods"))

	req.Header.Set("Origin", "http://evil.test")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
