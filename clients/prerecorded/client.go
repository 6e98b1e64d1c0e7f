// Package prerecorded points at the currently supported version of the
// prerecorded transcription client. Older versions stay importable from
// their versioned packages.
package prerecorded

import (
	deepgram "github.com/moxierobots/deepgram-go"
	v1 "github.com/moxierobots/deepgram-go/clients/prerecorded/v1"
)

type (
	Options           = v1.PrerecordedOptions
	Client            = v1.Client
	Response          = v1.PrerecordedResponse
	PrerecordedSource = v1.PrerecordedSource
	FileSource        = v1.FileSource
)

// NewClient is v1.NewClient; see that package for details.
func NewClient(config *deepgram.ClientOptions) *Client {
	return v1.NewClient(config)
}
