package recommend

import (
	"context"
	"errors"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/mensahub/backend/internal/recommend/schema"
)

// drainGrace bounds how long Close waits for in-flight calls before the
// channel is force-closed.
const drainGrace = 5 * time.Second

// BinaryRPCTransport reaches the engine over gRPC. It owns one
// *grpc.ClientConn created at construction and reused for every call; the
// conn multiplexes concurrent calls natively.
type BinaryRPCTransport struct {
	conn *grpc.ClientConn

	inflight  sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewBinaryRPCTransport opens the channel to addr (host:port). The dial is
// lazy, so an unreachable endpoint surfaces on the first Invoke, not here.
func NewBinaryRPCTransport(addr string) (*BinaryRPCTransport, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(schema.CodecName)),
	)
	if err != nil {
		return nil, err
	}
	return &BinaryRPCTransport{conn: conn}, nil
}

func (t *BinaryRPCTransport) Invoke(ctx context.Context, req *schema.RecommendationRequest) (*schema.RecommendationResponse, error) {
	t.inflight.Add(1)
	defer t.inflight.Done()

	resp := new(schema.RecommendationResponse)
	if err := t.conn.Invoke(ctx, schema.RecommendMealMethod, req, resp); err != nil {
		return nil, classifyGRPC(err)
	}
	return resp, nil
}

func (t *BinaryRPCTransport) Close(ctx context.Context) error {
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
		t.closeErr = t.conn.Close()
	})
	return t.closeErr
}

func classifyGRPC(err error) *TransportError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: FailureDeadline, Err: err}
	}
	switch status.Code(err) {
	case codes.DeadlineExceeded:
		return &TransportError{Kind: FailureDeadline, Err: err}
	case codes.Internal, codes.ResourceExhausted, codes.Unimplemented:
		return &TransportError{Kind: FailureDecode, Err: err}
	default:
		return &TransportError{Kind: FailureUnreachable, Err: err}
	}
}
