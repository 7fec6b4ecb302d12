package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lk16/othello-arena/internal/config"
	"github.com/lk16/othello-arena/internal/models"
	"github.com/lk16/othello-arena/internal/othello"
)

const (
	clientTimeout = 5 * time.Second
)

// Error is returned when the server responds with a non-2xx status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// Client plays games against the computer on a remote server.
type Client struct {
	// config contains details on how to connect to the server
	config *config.ClientConfig

	http *http.Client
}

func NewClient(config *config.ClientConfig) *Client {
	return &Client{
		config: config,
		http: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

func (c *Client) logRequestAsCurl(req *http.Request) {
	// Do not build string if we're not logging it
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	var builder strings.Builder
	builder.WriteString("curl -X ")
	builder.WriteString(req.Method)
	builder.WriteString(" '")
	builder.WriteString(req.URL.String())
	builder.WriteString("'")

	for key, values := range req.Header {
		for _, value := range values {
			builder.WriteString(" -H '")
			builder.WriteString(strings.ToLower(key))
			builder.WriteString(": ")
			builder.WriteString(value)
			builder.WriteString("'")
		}
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			slog.Error("Failed to read request body", "error", err)
		}

		if len(body) > 0 {
			builder.WriteString(" -d '")
			builder.WriteString(strings.ReplaceAll(string(body), "'", "'\\''"))
			builder.WriteString("'")
		}

		// Restore the original body
		req.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	slog.Debug("Sending request", "command", builder.String())
}

// request sends a request and decodes the JSON response into result, unless result is nil.
func (c *Client) request(ctx context.Context, method string, path string, payload any, result any) error {
	var body io.Reader = http.NoBody

	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.ServerURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.config.Token != "" {
		req.Header.Set("X-Token", c.config.Token)
	}

	c.logRequestAsCurl(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	slog.Debug("Response", "status", resp.Status, "body", string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err = json.Unmarshal(respBody, &errResp); err != nil || errResp.Error == "" {
			errResp.Error = resp.Status
		}
		return &Error{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if result == nil {
		return nil
	}

	if err = json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// NewGame starts a game in which the human plays humanColor.
func (c *Client) NewGame(ctx context.Context, humanColor othello.Cell) (models.GameState, error) {
	var state models.GameState
	err := c.request(ctx, http.MethodPost, "/api/games", models.NewGameRequest{HumanColor: humanColor}, &state)
	return state, err
}

// GetGame returns the state of a game.
func (c *Client) GetGame(ctx context.Context, id string) (models.GameState, error) {
	var state models.GameState
	err := c.request(ctx, http.MethodGet, "/api/games/"+url.PathEscape(id), nil, &state)
	return state, err
}

// LegalMoves returns the legal moves of player.
func (c *Client) LegalMoves(ctx context.Context, id string, player othello.Cell) ([]othello.Move, error) {
	var resp models.LegalMovesResponse
	path := "/api/games/" + url.PathEscape(id) + "/legal-moves?player=" + player.String()
	if err := c.request(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Moves, nil
}

// PlayMove plays a move for the human.
func (c *Client) PlayMove(ctx context.Context, id string, move othello.Move) (models.GameState, error) {
	var state models.GameState
	err := c.request(ctx, http.MethodPost, "/api/games/"+url.PathEscape(id)+"/moves", models.MoveRequest{Move: move}, &state)
	return state, err
}

// ComputerMove lets the computer play a move.
func (c *Client) ComputerMove(ctx context.Context, id string) (models.ComputerMoveResponse, error) {
	var resp models.ComputerMoveResponse
	err := c.request(ctx, http.MethodPost, "/api/games/"+url.PathEscape(id)+"/computer-move", nil, &resp)
	return resp, err
}

// Undo takes back the last move of the human.
func (c *Client) Undo(ctx context.Context, id string) (models.GameState, error) {
	var state models.GameState
	err := c.request(ctx, http.MethodPost, "/api/games/"+url.PathEscape(id)+"/undo", nil, &state)
	return state, err
}

// DeleteGame abandons a game.
func (c *Client) DeleteGame(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/api/games/"+url.PathEscape(id), nil, nil)
}

// Results returns the most recently finished games.
func (c *Client) Results(ctx context.Context, limit int) ([]models.GameResult, error) {
	var results []models.GameResult
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/results?limit=%d", limit), nil, &results)
	return results, err
}

// Stats returns statistics over all finished games.
func (c *Client) Stats(ctx context.Context) (models.ResultStats, error) {
	var stats models.ResultStats
	err := c.request(ctx, http.MethodGet, "/api/results/stats", nil, &stats)
	return stats, err
}
