// Package analyze points at the currently supported version of the text
// intelligence client. Older versions stay importable from their versioned
// packages.
package analyze

import (
	deepgram "github.com/moxierobots/deepgram-go"
	v1 "github.com/moxierobots/deepgram-go/clients/analyze/v1"
)

type (
	Options       = v1.AnalyzeOptions
	Client        = v1.Client
	Response      = v1.AnalyzeResponse
	AnalyzeSource = v1.AnalyzeSource
	TextSource    = v1.TextSource
)

// NewClient is v1.NewClient; see that package for details.
func NewClient(config *deepgram.ClientOptions) *Client {
	return v1.NewClient(config)
}
