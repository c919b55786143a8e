package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAPIVersion  = "2024-01-01"
	defaultHTTPTimeout = 5 * time.Second
	maxErrorBody       = 512
)

// HTTPOptions configures the remote query API client.
type HTTPOptions struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	Timeout    time.Duration

	// BaseURL overrides the host derived from ProjectID. Used for tests and proxies.
	BaseURL    string
	HTTPClient *http.Client
}

// HTTPClient queries the hosted content API over HTTPS.
type HTTPClient struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewHTTPClient constructs an HTTPClient.
func NewHTTPClient(opts HTTPOptions) (*HTTPClient, error) {
	dataset := strings.TrimSpace(opts.Dataset)
	if dataset == "" {
		return nil, fmt.Errorf("store: dataset is required")
	}
	version := strings.TrimPrefix(strings.TrimSpace(opts.APIVersion), "v")
	if version == "" {
		version = defaultAPIVersion
	}

	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		project := strings.TrimSpace(opts.ProjectID)
		if project == "" {
			return nil, fmt.Errorf("store: project id is required")
		}
		host := "api.sanity.io"
		if opts.UseCDN && opts.Token == "" {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", project, host)
	}

	endpoint, err := url.JoinPath(base, "v"+version, "data", "query", dataset)
	if err != nil {
		return nil, fmt.Errorf("store: build endpoint: %w", err)
	}

	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPClient{
		endpoint: endpoint,
		token:    strings.TrimSpace(opts.Token),
		http:     client,
	}, nil
}

// Endpoint returns the query endpoint without parameters.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Ms     int             `json:"ms"`
}

// Query implements Client.
func (c *HTTPClient) Query(ctx context.Context, q Query) ([]Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("store: build request %s: %w", q.Type, err)
	}
	params := req.URL.Query()
	params.Set("query", q.GROQ())
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store: query %s: %w", q.Type, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", q.Type, err)
	}
	return decodeResult(payload.Result)
}

func decodeResult(raw json.RawMessage) ([]Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Document{}, nil
	}
	switch trimmed[0] {
	case '[':
		var docs []Document
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, fmt.Errorf("store: decode result: %w", err)
		}
		out := docs[:0]
		for _, doc := range docs {
			if doc != nil {
				out = append(out, doc)
			}
		}
		return out, nil
	case '{':
		var doc Document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("store: decode result: %w", err)
		}
		return []Document{doc}, nil
	}
	return nil, fmt.Errorf("store: unexpected result shape %q", string(trimmed[:1]))
}
