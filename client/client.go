// Package client implements the analysis orchestrator: one outbound request
// to the analyze endpoint per submission, with all failures converted to the
// failure variant at this boundary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Tsuesun/PoCForgeWeb/model"
	"github.com/cenkalti/backoff"
)

const (
	// fallback message when a failure carries no text of its own
	genericFailure = "Analysis failed"
	// busyMessage is returned when a submission arrives while another is in flight
	busyMessage = "An analysis is already in progress"
)

// Client drives submissions against an analysis endpoint. At most one
// analysis may be outstanding at a time; concurrent submissions are
// rejected without issuing a request.
type Client struct {
	endpoint string
	httpc    *http.Client
	inFlight atomic.Bool
}

// New creates a Client for the analysis endpoint at base URL endpoint
func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpc: &http.Client{
			Timeout: 5 * time.Minute, // analysis runs are allowed to be slow
		},
	}
}

// Analyze submits a validated, uppercased CVE identifier and returns the
// decoded response. Transport errors, non-success statuses and undecodable
// bodies all come back as the failure variant; no error escapes the caller.
// A successful payload is passed through undecoded beyond the JSON mapping,
// with no further schema checks.
func (c *Client) Analyze(ctx context.Context, cveID string) model.AnalyzeResponse {
	if !c.inFlight.CompareAndSwap(false, true) {
		return model.FailResponse(busyMessage)
	}
	defer c.inFlight.Store(false)

	body, err := json.Marshal(model.AnalyzeRequest{CveID: cveID})
	if err != nil {
		return failFrom(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return failFrom(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return failFrom(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return failFrom(err)
	}

	var decoded model.AnalyzeResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		if resp.StatusCode != http.StatusOK {
			return failFrom(fmt.Errorf("analysis endpoint returned status %d", resp.StatusCode))
		}
		return failFrom(err)
	}

	if !decoded.Success && decoded.Error == "" {
		decoded.Error = genericFailure
	}
	return decoded
}

// WaitReady polls the analysis endpoint's health route with exponential
// backoff until it answers or the context is done. Used once at startup;
// submissions themselves are never retried.
func (c *Client) WaitReady(ctx context.Context, notify func(error, time.Duration)) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 250 * time.Millisecond
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 0 // retry until the context says stop

	return backoff.RetryNotify(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/api/v1/health", nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("health check returned status %d", resp.StatusCode)
		}
		return nil
	}, backoff.WithContext(bo, ctx), func(err error, d time.Duration) {
		if notify != nil {
			notify(err, d)
		}
	})
}

func failFrom(err error) model.AnalyzeResponse {
	msg := genericFailure
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return model.FailResponse(msg)
}
