// Package codec registers the JSON wire codec used by every service in
// this module. Clients select it with grpc.CallContentSubtype(codec.Name).
package codec

import (
	json "github.com/goccy/go-json"
	"google.golang.org/grpc/encoding"
)

// Name is the gRPC content-subtype of the codec.
const Name = "json"

// JSON marshals messages as JSON objects. Byte slices travel as base64.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSON) Name() string {
	return Name
}

func init() {
	encoding.RegisterCodec(JSON{})
}
