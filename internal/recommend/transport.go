// Package recommend contains the recommendation transport subsystem: the
// dual-transport client that calls the remote recommendation engine, the
// matching engine itself, and the server glue that exposes the engine over
// gRPC and HTTP.
package recommend

import (
	"context"
	"fmt"

	"github.com/mensahub/backend/internal/recommend/schema"
)

// Protocol selects the wire mechanism used to reach the engine. It is a
// construction-time policy: a client is built with exactly one transport and
// never fails over between them at call time.
type Protocol string

const (
	// ProtocolBinary is gRPC with the schema codec.
	ProtocolBinary Protocol = "binary"
	// ProtocolText is a JSON request/response exchange over HTTP.
	ProtocolText Protocol = "text"
)

// FailureKind tags a transport failure so tests and callers inside the
// package can tell the causes apart. At the client boundary every kind
// collapses into the same sentinel response.
type FailureKind int

const (
	FailureUnreachable FailureKind = iota
	FailureDeadline
	FailureDecode
)

func (k FailureKind) String() string {
	switch k {
	case FailureUnreachable:
		return "unreachable"
	case FailureDeadline:
		return "deadline exceeded"
	case FailureDecode:
		return "malformed response"
	default:
		return "unknown"
	}
}

// TransportError wraps a transport failure with its kind.
type TransportError struct {
	Kind FailureKind
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Transport performs one blocking recommendation call. Implementations own a
// long-lived channel to the remote engine: it is opened once, reused across
// calls, safe for concurrent use, and released by Close.
type Transport interface {
	// Invoke performs one request/response exchange. The deadline on ctx is
	// a hard cutoff; errors are *TransportError.
	Invoke(ctx context.Context, req *schema.RecommendationRequest) (*schema.RecommendationResponse, error)

	// Close releases the channel, waiting up to a bounded grace period for
	// in-flight calls to drain. It is idempotent.
	Close(ctx context.Context) error
}

var _ Transport = (*BinaryRPCTransport)(nil)
var _ Transport = (*TextRPCTransport)(nil)
