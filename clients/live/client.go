// Package live points at the currently supported version of the streaming
// transcription client. Older versions stay importable from their versioned
// packages.
package live

import (
	deepgram "github.com/moxierobots/deepgram-go"
	v1 "github.com/moxierobots/deepgram-go/clients/live/v1"
)

type (
	Options       = v1.LiveOptions
	StreamOptions = v1.StreamOptions
	Client        = v1.Client
	LegacyClient  = v1.LegacyClient
	Callbacks     = v1.Callbacks
	State         = v1.State
	Result        = v1.ResultResponse
)

// NewClient is v1.NewClient; see that package for details.
func NewClient(config *deepgram.ClientOptions) *Client {
	return v1.NewClient(config)
}

// NewLegacyClient is v1.NewLegacyClient.
func NewLegacyClient(config *deepgram.ClientOptions) *LegacyClient {
	return v1.NewLegacyClient(config)
}
