package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"boardgames/agent"
	"boardgames/game/checkers"
	"boardgames/game/tictactoe"
	"boardgames/searcher"
)

// client is an agent whose searches run on a remote worker
type client[S, M any] struct {
	endpoint   string
	depth      int
	httpClient *http.Client
	request    func(state S, depth int) any
}

func NewTicTacToeClient(baseURL string, depth int, httpClient *http.Client) agent.Agent[tictactoe.State, tictactoe.Move] {
	return newClient[tictactoe.State, tictactoe.Move](baseURL+"/tictactoe/bestmove", depth, httpClient,
		func(s tictactoe.State, depth int) any { return NewTicTacToeRequest(s, depth) })
}

func NewCheckersClient(baseURL string, depth int, httpClient *http.Client) agent.Agent[checkers.State, checkers.Move] {
	return newClient[checkers.State, checkers.Move](baseURL+"/checkers/bestmove", depth, httpClient,
		func(s checkers.State, depth int) any { return NewCheckersRequest(s, depth) })
}

func newClient[S, M any](endpoint string, depth int, httpClient *http.Client, request func(S, int) any) *client[S, M] {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client[S, M]{
		endpoint:   strings.TrimRight(endpoint, "/"),
		depth:      depth,
		httpClient: httpClient,
		request:    request,
	}
}

func (c *client[S, M]) FindMove(ctx context.Context, state S) (M, searcher.SearchMetric, error) {
	var zero M
	body, err := json.Marshal(c.request(state, c.depth))
	if err != nil {
		return zero, searcher.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return zero, searcher.SearchMetric{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, searcher.SearchMetric{}, fmt.Errorf("%w: %w", ErrWorker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return zero, searcher.SearchMetric{}, fmt.Errorf("%w: %s: %s", ErrWorker, resp.Status, failure.Error)
	}

	var response Response[M]
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return zero, searcher.SearchMetric{}, fmt.Errorf("%w: failed to decode response: %w", ErrWorker, err)
	}
	if response.Move == nil {
		return zero, response.Metrics, agent.ErrNoMove
	}
	return *response.Move, response.Metrics, nil
}
