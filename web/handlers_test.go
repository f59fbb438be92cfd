package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tsuesun/PoCForgeWeb/client"
	"github.com/Tsuesun/PoCForgeWeb/model"
	"github.com/Tsuesun/PoCForgeWeb/util"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, analyzeURL string) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{Views: NewEngine()})
	SetupRoutes(app, NewHandler(client.New(analyzeURL)))
	return app
}

func postForm(t *testing.T, app *fiber.App, cveID string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("cve_id="+cveID))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestSubmitRendersReport(t *testing.T) {
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(model.OkResponse(&model.Report{
			SearchParams: model.SearchParams{Hours: 24, TargetCve: "CVE-2023-1234"},
			Cves:         []model.CVE{{CveID: "CVE-2023-1234", Severity: "HIGH"}},
			Summary:      model.Summary{TotalCves: 1},
		}))
	}))
	defer ts.Close()

	app := newTestApp(t, ts.URL)
	status, body := postForm(t, app, "cve-2023-1234")

	assert.Equal(t, http.StatusOK, status)
	// lowercased input is normalized before transmission
	assert.JSONEq(t, `{"cve_id":"CVE-2023-1234"}`, string(gotBody))
	assert.Contains(t, body, "CVE-2023-1234")
	assert.NotContains(t, body, `class="error-panel"`)
}

func TestSubmitRendersErrorPanel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(model.FailResponse("boom"))
	}))
	defer ts.Close()

	app := newTestApp(t, ts.URL)
	status, body := postForm(t, app, "CVE-2023-1234")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, strings.Count(body, `class="error-panel"`))
	assert.Contains(t, body, "boom")
	assert.NotContains(t, body, `class="card"`)
}

func TestSubmitMalformedIDNeverReachesNetwork(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requests++
	}))
	defer ts.Close()

	app := newTestApp(t, ts.URL)
	status, body := postForm(t, app, "CVE-23-1234")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `id="format-hint">`+util.CVEFormatHint)
	assert.NotContains(t, body, `class="error-panel"`)
	assert.Equal(t, 0, requests)
}

func TestSubmitEmptyInputShowsNoHint(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:0")
	status, body := postForm(t, app, "")

	assert.Equal(t, http.StatusOK, status)
	// empty input is "not yet submitted": the hint element stays hidden
	assert.Contains(t, body, `id="format-hint" hidden`)
	assert.NotContains(t, body, `class="error-panel"`)
}

func TestIndex(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:0")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `id="analyze-form"`)
}
