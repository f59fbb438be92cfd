package analyze

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tsuesun/PoCForgeWeb/forge"
	"github.com/Tsuesun/PoCForgeWeb/model"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/analyze", PostAnalyze(forge.New(24)))
	return app
}

func postAnalyze(t *testing.T, app *fiber.App, body string) (int, model.AnalyzeResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded model.AnalyzeResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	return resp.StatusCode, decoded
}

func TestPostAnalyzeSuccess(t *testing.T) {
	app := newTestApp()
	status, resp := postAnalyze(t, app, `{"cve_id":"CVE-2023-1234"}`)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "CVE-2023-1234", resp.Data.SearchParams.TargetCve)
	require.Len(t, resp.Data.Cves, 1)
	assert.Equal(t, "CVE-2023-1234", resp.Data.Cves[0].CveID)
}

func TestPostAnalyzeNormalizesCase(t *testing.T) {
	app := newTestApp()
	status, resp := postAnalyze(t, app, `{"cve_id":"cve-2023-1234"}`)

	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "CVE-2023-1234", resp.Data.SearchParams.TargetCve)
}

func TestPostAnalyzeRejectsMalformedID(t *testing.T) {
	app := newTestApp()

	for _, id := range []string{"CVE-2023-123", "CVE-23-1234", "", "nope"} {
		body, err := json.Marshal(model.AnalyzeRequest{CveID: id})
		require.NoError(t, err)

		status, resp := postAnalyze(t, app, string(body))
		assert.Equal(t, http.StatusBadRequest, status, "id %q", id)
		assert.False(t, resp.Success, "id %q", id)
		assert.NotEmpty(t, resp.Error, "id %q", id)
		assert.Nil(t, resp.Data, "id %q", id)
	}
}

func TestPostAnalyzeRejectsBadBody(t *testing.T) {
	app := newTestApp()
	status, resp := postAnalyze(t, app, `{not json`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}
