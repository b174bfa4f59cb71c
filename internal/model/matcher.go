package model

import "context"

// Matcher is the external fingerprint algorithm. Templates are opaque bytes.
type Matcher interface {
	// CreateTemplate extracts a template from a raw capture.
	CreateTemplate(ctx context.Context, sample []byte) ([]byte, error)
	// Fuse combines at least two templates of the same finger into one
	// enrollment template.
	Fuse(ctx context.Context, templates [][]byte) ([]byte, error)
	// Compare returns the dissimilarity of a and b. It is symmetric and
	// deterministic; an error only reports that the matcher was unreachable.
	Compare(ctx context.Context, a, b []byte) (Score, error)
}
