package v1

import (
	deepgram "github.com/moxierobots/deepgram-go"
)

// AnalyzeSource is any source the /v1/read endpoint accepts: *URLSource,
// *BufferSource or *StreamSource.
type AnalyzeSource interface {
	deepgram.Source
}

// TextSource is a source whose text the caller supplies directly:
// *BufferSource or *StreamSource. URL sources do not satisfy it.
type TextSource interface {
	deepgram.PayloadSource
}

var (
	_ AnalyzeSource = (*deepgram.URLSource)(nil)
	_ AnalyzeSource = (*deepgram.BufferSource)(nil)
	_ AnalyzeSource = (*deepgram.StreamSource)(nil)
	_ TextSource    = (*deepgram.BufferSource)(nil)
	_ TextSource    = (*deepgram.StreamSource)(nil)
)
