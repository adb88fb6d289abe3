package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/mensahub/backend/internal/recommend/schema"
)

// TextRPCTransport reaches the engine over HTTP with the JSON message
// shapes. The channel is the client's keep-alive connection pool, shared by
// all calls. HTTP gives us no per-call deadline primitive of its own, so the
// transport enforces the ctx deadline around the whole exchange.
type TextRPCTransport struct {
	baseURL string
	client  *http.Client

	inflight  sync.WaitGroup
	closeOnce sync.Once
}

// NewTextRPCTransport builds a transport for baseURL, e.g. "http://host:port".
func NewTextRPCTransport(baseURL string) *TextRPCTransport {
	return &TextRPCTransport{
		baseURL: baseURL,
		// No client-level timeout: the per-call ctx is the single deadline
		// authority, matching the binary transport's behavior.
		client: &http.Client{},
	}
}

func (t *TextRPCTransport) Invoke(ctx context.Context, req *schema.RecommendationRequest) (*schema.RecommendationResponse, error) {
	t.inflight.Add(1)
	defer t.inflight.Done()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &TransportError{Kind: FailureDecode, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Kind: FailureUnreachable, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TransportError{Kind: FailureDeadline, Err: err}
		}
		return nil, &TransportError{Kind: FailureUnreachable, Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Kind: FailureDecode,
			Err:  fmt.Errorf("unexpected status %d", httpResp.StatusCode),
		}
	}

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TransportError{Kind: FailureDeadline, Err: err}
		}
		return nil, &TransportError{Kind: FailureUnreachable, Err: err}
	}

	resp := new(schema.RecommendationResponse)
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, &TransportError{Kind: FailureDecode, Err: err}
	}
	return resp, nil
}

func (t *TextRPCTransport) Close(ctx context.Context) error {
	t.closeOnce.Do(func() {
		done := make(chan struct{})
		go func() {
			t.inflight.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(drainGrace):
		case <-ctx.Done():
		}
		t.client.CloseIdleConnections()
	})
	return nil
}
