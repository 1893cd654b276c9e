package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CSA2-Thesis/crossword-solver/models"
)

// BackendClient talks to the external solver/generator service over
// HTTP. The solving algorithms live entirely on that side; this client
// only builds requests and decodes the wire formats.
type BackendClient struct {
	baseURL string
	client  *http.Client
}

// NewBackendClient creates a client for the backend at baseURL.
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &BackendClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Solve asks the backend to solve a puzzle with the given algorithm.
func (c *BackendClient) Solve(ctx context.Context, grid models.Grid, clues models.ClueSet, algorithm models.Algorithm, enableMemoryProfiling bool) (*models.SolveResponse, error) {
	req := models.SolveRequest{
		Grid:                  grid,
		Clues:                 clues,
		Algorithm:             algorithm,
		EnableMemoryProfiling: enableMemoryProfiling,
	}

	var resp models.SolveResponse
	if err := c.post(ctx, "/solve", req, &resp); err != nil {
		return nil, fmt.Errorf("solve request failed: %w", err)
	}
	return &resp, nil
}

// Generate asks the backend for a fresh puzzle of the given size and
// difficulty.
func (c *BackendClient) Generate(ctx context.Context, size int, difficulty models.Difficulty) (*models.GeneratedPuzzle, error) {
	req := map[string]interface{}{
		"size":       size,
		"difficulty": difficulty,
	}

	var resp models.GeneratedPuzzle
	if err := c.post(ctx, "/generate", req, &resp); err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		return nil, fmt.Errorf("generator rejected request: %s", msg)
	}
	return &resp, nil
}

func (c *BackendClient) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errPayload struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&errPayload) == nil && errPayload.Error != "" {
			return fmt.Errorf("backend returned %s: %s", resp.Status, errPayload.Error)
		}
		return fmt.Errorf("backend returned %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
