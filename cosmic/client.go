package cosmic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.cosmicjs.com/v3"
	defaultTimeout = 20 * time.Second
	defaultProps   = "id,slug,title,metadata,created_at"
)

// ErrWriteKeyRequired is returned by mutation operations when the client was
// configured without a write key.
var ErrWriteKeyRequired = errors.New("cosmic: write key not configured")

// Config holds the store connection settings, read once at process start.
type Config struct {
	BucketSlug string
	ReadKey    string
	WriteKey   string // optional, required only for mutations
	BaseURL    string // optional, defaults to the hosted API
}

// Client is a REST client for the hosted content-object store. One instance
// is constructed at startup and is read-only thereafter.
type Client struct {
	baseURL    string
	httpClient *http.Client
	bucketSlug string
	readKey    string
	writeKey   string
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		bucketSlug: cfg.BucketSlug,
		readKey:    cfg.ReadKey,
		writeKey:   cfg.WriteKey,
	}
}

type findResponse[T any] struct {
	Objects []T `json:"objects"`
	Total   int `json:"total"`
}

type objectResponse struct {
	Object json.RawMessage `json:"object"`
}

// find queries the store for objects matching the given query document.
// A "not found" response from the store means zero matches and is normalized
// to an empty slice, never an error.
func find[T any](ctx context.Context, c *Client, query map[string]interface{}, sort string) ([]T, error) {
	q, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", string(q))
	params.Set("read_key", c.readKey)
	params.Set("props", defaultProps)
	params.Set("depth", "1")
	if sort != "" {
		params.Set("sort", sort)
	}

	endpoint := fmt.Sprintf("%s/buckets/%s/objects?%s", c.baseURL, c.bucketSlug, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []T{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("store returned status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var out findResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Objects == nil {
		out.Objects = []T{}
	}
	return out.Objects, nil
}

func (c *Client) insertObject(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	return c.write(ctx, http.MethodPost, fmt.Sprintf("%s/buckets/%s/objects", c.baseURL, c.bucketSlug), payload)
}

func (c *Client) patchObject(ctx context.Context, id string, payload map[string]interface{}) (json.RawMessage, error) {
	return c.write(ctx, http.MethodPatch, fmt.Sprintf("%s/buckets/%s/objects/%s", c.baseURL, c.bucketSlug, id), payload)
}

func (c *Client) deleteObject(ctx context.Context, id string) error {
	_, err := c.write(ctx, http.MethodDelete, fmt.Sprintf("%s/buckets/%s/objects/%s", c.baseURL, c.bucketSlug, id), nil)
	return err
}

func (c *Client) write(ctx context.Context, method, endpoint string, payload map[string]interface{}) (json.RawMessage, error) {
	if c.writeKey == "" {
		return nil, ErrWriteKeyRequired
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.writeKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("store returned status %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}

	var out objectResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return out.Object, nil
}
