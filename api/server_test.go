package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modcheck/api"
	"modcheck/core/engine"
	"modcheck/core/types"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()
	return api.NewServer(engine.Default(), "test")
}

func postJSON(t *testing.T, srv http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestCheckEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/check", api.CheckRequest{
		Selection: []types.UpgradeKey{"coilovers-track", "lowering-springs", "headers"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var report struct {
		Conflicts       []json.RawMessage `json:"conflicts"`
		Advisories      []json.RawMessage `json:"advisories"`
		AffectedSystems []string          `json:"affected_systems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.NotEmpty(t, report.Conflicts)
	assert.NotEmpty(t, report.Advisories)
	assert.NotEmpty(t, report.AffectedSystems)
}

func TestCheckEndpointBadJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/check", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "INVALID_JSON", errResp.Error.Code)
}

func TestConflictEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/conflict", api.ConflictRequest{
		Candidate: "piggyback-tuner",
		Selection: []types.UpgradeKey{"ecu-tune"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Conflict *struct {
			Type string `json:"type"`
			Hard bool   `json:"is_hard_conflict"`
		} `json:"conflict"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, "incompatible", resp.Conflict.Type)
	assert.True(t, resp.Conflict.Hard)
}

func TestConflictEndpointCleanAdd(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/conflict", api.ConflictRequest{
		Candidate: "intake",
		Selection: []types.UpgradeKey{"headers"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Conflict *json.RawMessage `json:"conflict"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Conflict)
}

func TestConflictEndpointRequiresCandidate(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/conflict", api.ConflictRequest{Selection: []types.UpgradeKey{"intake"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/resolve", api.ResolveRequest{
		Candidate:            "stage2-tune",
		Selection:            []types.UpgradeKey{"ecu-tune", "intake"},
		AutoRemoveLowerTunes: true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Selection []string `json:"selection"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"intake", "stage2-tune"}, resp.Selection)
}

func TestUpgradeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv, "/upgrades")
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Upgrades []string `json:"upgrades"`
		Count    int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, len(listing.Upgrades), listing.Count)
	assert.Contains(t, listing.Upgrades, "big-turbo")

	rec = get(t, srv, "/upgrades/big-turbo")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail struct {
		Key           string   `json:"key"`
		Name          string   `json:"name"`
		ConflictsWith []string `json:"conflicts_with"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "big-turbo", detail.Key)
	assert.Contains(t, detail.ConflictsWith, "supercharger-kit")

	rec = get(t, srv, "/upgrades/warp-drive")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSystemsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv, "/systems")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Greater(t, resp.Count, 0)
}

func TestHealthAndVersion(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")

	rec = get(t, srv, "/version")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "modcheck")
}
