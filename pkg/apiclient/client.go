package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client типизированный клиент API для интеграционных сценариев и скриптов.
// Держит cookie jar, поэтому refresh-кука переживает запросы.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

// Response обертка ответа API
type Response struct {
	StatusCode int
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Code       string          `json:"Code"`
	Data       json.RawMessage `json:"data"`
	Details    json.RawMessage `json:"details"`
}

// New создает клиента с cookie jar и таймаутом
func New(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}, nil
}

// SetAccessToken задает Bearer токен для последующих запросов
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// Get выполняет GET запрос к пути API
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post выполняет POST запрос с JSON телом
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put выполняет PUT запрос с JSON телом
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete выполняет DELETE запрос
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// DecodeData разбирает поле data ответа в переданную структуру
func (r *Response) DecodeData(out interface{}) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("response has no data")
	}
	return json.Unmarshal(r.Data, out)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	out := &Response{StatusCode: resp.StatusCode}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return out, nil
}
