package preview

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

// Draft is the payload sent to a backend preview endpoint: either a saved
// template key or an unsaved markdown source, plus the variable values to
// substitute.
type Draft struct {
	TemplateKey    string            `json:"template_key,omitempty"`
	MarkdownSource string            `json:"markdown_source,omitempty"`
	VariableValues map[string]string `json:"variable_values,omitempty"`
}

type remoteResponse struct {
	HTML string `json:"html"`
}

// Remote delegates preview rendering to a backend endpoint. Concurrent
// requests for an identical draft are deduplicated with singleflight, so
// two editor panes previewing the same draft cost one backend call.
// Staleness of results remains the Scheduler's job: Remote only renders.
type Remote struct {
	client *http.Client
	url    string
	sf     singleflight.Group
}

// RemoteOption configures a Remote.
type RemoteOption func(*Remote)

// WithHTTPClient overrides the HTTP client. Default: 10s timeout client.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *Remote) {
		if c != nil {
			r.client = c
		}
	}
}

// NewRemote creates a client for the backend preview endpoint at url.
func NewRemote(url string, opts ...RemoteOption) *Remote {
	r := &Remote{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render posts the draft and returns the rendered HTML. The context governs
// cancellation: a superseded render canceled by the caller aborts the
// request instead of waiting out the response.
func (r *Remote) Render(ctx context.Context, draft Draft) (string, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return "", errors.Join(ErrPreviewFailed, err)
	}

	v, err, _ := r.sf.Do(draftKey(payload), func() (any, error) {
		return r.post(ctx, payload)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (r *Remote) post(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Join(ErrPreviewFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", errors.Join(ErrPreviewFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Join(ErrPreviewFailed, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", errors.Join(ErrPreviewFailed, err)
	}

	var out remoteResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", errors.Join(ErrPreviewFailed, err)
	}
	return out.HTML, nil
}

// draftKey derives the singleflight key from the serialized draft.
func draftKey(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
