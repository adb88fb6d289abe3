package schema

import (
	"encoding"
	"fmt"

	grpcencoding "google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype under which the schema codec is
// registered. Clients select it with grpc.CallContentSubtype(CodecName).
const CodecName = "mealrec"

// Codec bridges the schema messages onto gRPC calls. Both peers import this
// package, so registration happens on each side at init.
type Codec struct{}

func init() {
	grpcencoding.RegisterCodec(Codec{})
}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(encoding.BinaryMarshaler)
	if !ok {
		return nil, fmt.Errorf("mealrec codec: cannot marshal %T", v)
	}
	return m.MarshalBinary()
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(encoding.BinaryUnmarshaler)
	if !ok {
		return fmt.Errorf("mealrec codec: cannot unmarshal into %T", v)
	}
	return m.UnmarshalBinary(data)
}
