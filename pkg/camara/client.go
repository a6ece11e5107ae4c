package camara

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const userAgent = "discursos-backend/1.0 (+https://github.com/discursos/backend)"

// UpstreamError wraps any failure talking to the open-data API: network
// errors, non-2xx statuses and malformed bodies all end up here so callers
// can treat the upstream as a single fallible boundary.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("camara: %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client talks to the Câmara dos Deputados open-data API. The upstream is a
// public service with no SLA, so both the per-attempt timeout and the retry
// count are kept small and configurable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryWait  time.Duration
}

func NewClient(baseURL string, timeout time.Duration, maxRetries int, retryWait time.Duration) *Client {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		retryWait:  retryWait,
	}
}

// Get issues a GET against path (relative to the base URL) and returns the
// "dados" member of the response envelope. The timeout applies per attempt,
// so maxRetries attempts can together take up to maxRetries*timeout.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			log.Printf("[Camara] retrying %s (attempt %d/%d): %v", path, attempt, c.maxRetries, lastErr)
			select {
			case <-time.After(c.retryWait):
			case <-ctx.Done():
				return nil, &UpstreamError{Op: "GET " + path, Err: ctx.Err()}
			}
		}

		payload, err := c.doOnce(ctx, reqURL)
		if err == nil {
			return payload, nil
		}
		lastErr = err

		// Context errors will not get better on retry.
		if ctx.Err() != nil {
			break
		}
	}

	return nil, &UpstreamError{Op: "GET " + path, Err: lastErr}
}

func (c *Client) doOnce(ctx context.Context, reqURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncateBody(body))
	}

	var envelope struct {
		Dados json.RawMessage `json:"dados"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if envelope.Dados == nil {
		return nil, fmt.Errorf("response has no dados member")
	}

	return envelope.Dados, nil
}

func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

// Deputies lists deputies ordered by name, optionally narrowed by party
// and/or state acronym.
func (c *Client) Deputies(ctx context.Context, party, state string) ([]Deputy, error) {
	query := url.Values{}
	query.Set("ordem", "ASC")
	query.Set("ordenarPor", "nome")
	if party != "" {
		query.Set("siglaPartido", party)
	}
	if state != "" {
		query.Set("siglaUf", state)
	}

	payload, err := c.Get(ctx, "/deputados", query)
	if err != nil {
		return nil, err
	}

	var deputies []Deputy
	if err := json.Unmarshal(payload, &deputies); err != nil {
		return nil, &UpstreamError{Op: "GET /deputados", Err: fmt.Errorf("failed to parse dados: %w", err)}
	}
	return deputies, nil
}

// DeputyByID fetches one deputy's profile.
func (c *Client) DeputyByID(ctx context.Context, id int) (*DeputyProfile, error) {
	path := "/deputados/" + strconv.Itoa(id)
	payload, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var profile DeputyProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, &UpstreamError{Op: "GET " + path, Err: fmt.Errorf("failed to parse dados: %w", err)}
	}
	return &profile, nil
}

// Speeches lists one deputy's speeches within [from, to], newest first,
// capped at limit items to bound the upstream payload size.
func (c *Client) Speeches(ctx context.Context, deputyID int, from, to time.Time, limit int) ([]Speech, error) {
	query := url.Values{}
	query.Set("dataInicio", from.Format("2006-01-02"))
	query.Set("dataFim", to.Format("2006-01-02"))
	query.Set("ordenarPor", "dataHoraInicio")
	query.Set("ordem", "DESC")
	query.Set("itens", strconv.Itoa(limit))

	path := "/deputados/" + strconv.Itoa(deputyID) + "/discursos"
	payload, err := c.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var speeches []Speech
	if err := json.Unmarshal(payload, &speeches); err != nil {
		return nil, &UpstreamError{Op: "GET " + path, Err: fmt.Errorf("failed to parse dados: %w", err)}
	}
	return speeches, nil
}

// Parties lists all parties ordered by acronym, active and inactive alike.
func (c *Client) Parties(ctx context.Context) ([]Party, error) {
	query := url.Values{}
	query.Set("ordem", "ASC")
	query.Set("ordenarPor", "sigla")

	payload, err := c.Get(ctx, "/partidos", query)
	if err != nil {
		return nil, err
	}

	var parties []Party
	if err := json.Unmarshal(payload, &parties); err != nil {
		return nil, &UpstreamError{Op: "GET /partidos", Err: fmt.Errorf("failed to parse dados: %w", err)}
	}
	return parties, nil
}
