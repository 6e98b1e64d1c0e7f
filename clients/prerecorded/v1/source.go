package v1

import (
	deepgram "github.com/moxierobots/deepgram-go"
)

// PrerecordedSource is any source the /v1/listen endpoint accepts.
type PrerecordedSource interface {
	deepgram.Source
}

// FileSource is audio the caller uploads: *BufferSource or *StreamSource.
type FileSource interface {
	deepgram.PayloadSource
}

var (
	_ PrerecordedSource = (*deepgram.URLSource)(nil)
	_ FileSource        = (*deepgram.BufferSource)(nil)
	_ FileSource        = (*deepgram.StreamSource)(nil)
)
