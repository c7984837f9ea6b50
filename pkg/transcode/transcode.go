// Package transcode bridges documents to interchange formats for tooling:
// JSON, CBOR and protobuf Struct. Bridges are lossy with respect to the
// richer wire types (an objectID becomes its hex string and so on); exact
// round-trip guarantees live in pkg/codec only. JSON preserves key order on
// both sides; CBOR and protobuf are bounded by their map semantics.
package transcode

import "bdoc/pkg/doc"

// Transcoder converts documents to and from one interchange encoding.
// Implementations should be deterministic and safe for concurrent use.
type Transcoder interface {
	ContentType() string
	Marshal(d *doc.Document) ([]byte, error)
	Unmarshal(data []byte) (*doc.Document, error)
}

// Registry maps content type aliases to transcoders.
type Registry struct{ byType map[string]Transcoder }

// NewRegistry constructs a registry preloaded with the transcoders that
// don't require initialization: JSON and Proto. CBOR can be added
// explicitly via Register(CBOR()).
func NewRegistry() *Registry {
	r := &Registry{byType: make(map[string]Transcoder)}
	r.Register(JSON())
	r.Register(Proto())
	return r
}

// Register adds a transcoder.
func (r *Registry) Register(t Transcoder) { r.byType[t.ContentType()] = t }

// Get returns a transcoder by content type, or nil.
func (r *Registry) Get(contentType string) Transcoder { return r.byType[contentType] }
