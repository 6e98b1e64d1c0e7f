package deepgram

import (
	"bytes"
	"fmt"
	"io"

	"github.com/moxierobots/deepgram-go/internal/record"
)

// SourceKind identifies which payload a source descriptor carries.
type SourceKind string

const (
	SourceKindURL    SourceKind = "url"
	SourceKindBuffer SourceKind = "buffer"
	SourceKindStream SourceKind = "stream"
)

// Source describes where request payload bytes come from. It is implemented
// only by *URLSource, *BufferSource and *StreamSource.
type Source interface {
	Kind() SourceKind
	Get(key string) (any, error)
	Set(key string, value any)
	String() string
	source()
}

// PayloadSource is a Source whose bytes are supplied by the caller rather
// than fetched by the service from a URL.
type PayloadSource interface {
	Source
	Reader() io.Reader
}

// URLSource points at a hosted file the service fetches itself.
type URLSource struct {
	URL string `json:"url,omitempty"`

	extra record.Extra
}

func NewURLSource(url string) *URLSource {
	return &URLSource{URL: url}
}

func (s *URLSource) Kind() SourceKind { return SourceKindURL }

func (s *URLSource) source() {}

func (s URLSource) MarshalJSON() ([]byte, error) {
	type plain URLSource
	return record.Marshal(plain(s), s.extra)
}

func (s *URLSource) UnmarshalJSON(data []byte) error {
	type plain URLSource
	var p plain
	if err := record.Unmarshal(data, &p, &p.extra); err != nil {
		return err
	}
	*s = URLSource(p)
	return nil
}

func (s *URLSource) Get(key string) (any, error) { return lookup(s, key) }

func (s *URLSource) Set(key string, value any) { record.Set(s, &s.extra, key, value) }

func (s *URLSource) String() string { return indent(s) }

// BufferSource carries the payload in memory.
type BufferSource struct {
	Buffer []byte `json:"buffer,omitempty"`

	extra record.Extra
}

func NewBufferSource(buf []byte) *BufferSource {
	return &BufferSource{Buffer: buf}
}

func (s *BufferSource) Kind() SourceKind { return SourceKindBuffer }

func (s *BufferSource) source() {}

// Reader returns a fresh reader over the buffer on every call.
func (s *BufferSource) Reader() io.Reader { return bytes.NewReader(s.Buffer) }

func (s BufferSource) MarshalJSON() ([]byte, error) {
	type plain BufferSource
	return record.Marshal(plain(s), s.extra)
}

func (s *BufferSource) UnmarshalJSON(data []byte) error {
	type plain BufferSource
	var p plain
	if err := record.Unmarshal(data, &p, &p.extra); err != nil {
		return err
	}
	*s = BufferSource(p)
	return nil
}

// Get returns the raw bytes for a non-empty "buffer"; other keys, and an
// empty buffer, read through the serialized mapping.
func (s *BufferSource) Get(key string) (any, error) {
	if key == "buffer" && len(s.Buffer) > 0 {
		return s.Buffer, nil
	}
	return lookup(s, key)
}

func (s *BufferSource) Set(key string, value any) { record.Set(s, &s.extra, key, value) }

func (s *BufferSource) String() string { return indent(s) }

// StreamSource reads the payload from a caller-owned reader. The descriptor
// neither closes nor rewinds it, and it must stay readable until the request
// has consumed it.
type StreamSource struct {
	Stream io.Reader `json:"stream"`

	extra record.Extra
}

func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{Stream: r}
}

func (s *StreamSource) Kind() SourceKind { return SourceKindStream }

func (s *StreamSource) source() {}

func (s *StreamSource) Reader() io.Reader { return s.Stream }

// MarshalJSON renders the stream as its Go type; the bytes are never read.
func (s StreamSource) MarshalJSON() ([]byte, error) {
	var view struct {
		Stream string `json:"stream,omitempty"`
	}
	if s.Stream != nil {
		view.Stream = fmt.Sprintf("%T", s.Stream)
	}
	return record.Marshal(view, s.extra)
}

// Get returns the reader itself for "stream"; other keys read through the
// serialized mapping.
func (s *StreamSource) Get(key string) (any, error) {
	if key == "stream" && s.Stream != nil {
		return s.Stream, nil
	}
	return lookup(s, key)
}

func (s *StreamSource) Set(key string, value any) { record.Set(s, &s.extra, key, value) }

func (s *StreamSource) String() string { return indent(s) }

// IsEmpty reports whether src carries no payload.
func IsEmpty(src Source) bool {
	switch s := src.(type) {
	case *URLSource:
		return s == nil || s.URL == ""
	case *BufferSource:
		return s == nil || len(s.Buffer) == 0
	case *StreamSource:
		return s == nil || s.Stream == nil
	default:
		return true
	}
}

type marshaler interface {
	MarshalJSON() ([]byte, error)
}

func lookup(m marshaler, key string) (any, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	v, ok := record.Lookup(data, key)
	if !ok {
		return nil, NewKeyNotFoundError(key)
	}
	return v, nil
}

func indent(m marshaler) string {
	return record.String(m)
}
