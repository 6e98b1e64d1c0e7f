package v1

import (
	"context"

	"go.uber.org/zap"

	deepgram "github.com/moxierobots/deepgram-go"
	"github.com/moxierobots/deepgram-go/internal/rest"
)

const listenPath = "listen"

// Client transcribes prerecorded audio through /v1/listen.
type Client struct {
	config  *deepgram.ClientOptions
	options deepgram.ClientOptions
	rest    *rest.Client
	logger  *zap.Logger
}

// NewClient creates a client. config is kept as given; defaults are applied
// to a private copy.
func NewClient(config *deepgram.ClientOptions) *Client {
	options := config.WithDefaults()
	return &Client{
		config:  config,
		options: options,
		rest:    rest.New(options),
		logger:  options.Logger.With(zap.String("client", "prerecorded")),
	}
}

// Config returns the configuration the client was created with.
func (c *Client) Config() *deepgram.ClientOptions {
	return c.config
}

// TranscribeURL transcribes audio the service fetches from source.
func (c *Client) TranscribeURL(ctx context.Context, source *deepgram.URLSource, options *PrerecordedOptions) (*PrerecordedResponse, error) {
	return c.Transcribe(ctx, source, options)
}

// TranscribeFile uploads audio from a buffer or stream. A stream is read to
// EOF but not closed.
func (c *Client) TranscribeFile(ctx context.Context, source FileSource, options *PrerecordedOptions) (*PrerecordedResponse, error) {
	return c.Transcribe(ctx, source, options)
}

// Transcribe dispatches on the source variant. Options with a callback are
// rejected; use the Callback variants instead.
func (c *Client) Transcribe(ctx context.Context, source PrerecordedSource, options *PrerecordedOptions) (*PrerecordedResponse, error) {
	if hasCallback(options) {
		return nil, deepgram.ErrCallbackNotAllowed
	}
	var resp PrerecordedResponse
	if err := c.do(ctx, source, options, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TranscribeURLCallback submits source and returns the request ID; results
// are posted to callback.
func (c *Client) TranscribeURLCallback(ctx context.Context, source *deepgram.URLSource, callback string, options *PrerecordedOptions) (*deepgram.AsyncResponse, error) {
	return c.TranscribeCallback(ctx, source, callback, options)
}

// TranscribeFileCallback is TranscribeURLCallback for uploaded audio.
func (c *Client) TranscribeFileCallback(ctx context.Context, source FileSource, callback string, options *PrerecordedOptions) (*deepgram.AsyncResponse, error) {
	return c.TranscribeCallback(ctx, source, callback, options)
}

func (c *Client) TranscribeCallback(ctx context.Context, source PrerecordedSource, callback string, options *PrerecordedOptions) (*deepgram.AsyncResponse, error) {
	if callback == "" {
		return nil, deepgram.ErrCallbackRequired
	}
	var opts PrerecordedOptions
	if options != nil {
		opts = *options
	}
	opts.Callback = deepgram.String(callback)

	var resp deepgram.AsyncResponse
	if err := c.do(ctx, source, &opts, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, source PrerecordedSource, options *PrerecordedOptions, out any) error {
	if source == nil || deepgram.IsEmpty(source) {
		return deepgram.ErrEmptySource
	}
	if options == nil {
		options = &PrerecordedOptions{}
	}
	if err := options.Validate(); err != nil {
		return err
	}
	for _, w := range options.Warnings() {
		c.logger.Warn(w)
	}
	query, err := options.Query()
	if err != nil {
		return deepgram.NewErrorWithCause(deepgram.ErrorStatusInvalidArgument, "failed to encode options", err)
	}
	endpoint := c.rest.Endpoint(listenPath, query)
	c.logger.Debug("transcribe", zap.String("source", string(source.Kind())), zap.String("endpoint", endpoint))

	switch s := source.(type) {
	case *deepgram.URLSource:
		return c.rest.PostJSON(ctx, endpoint, map[string]string{"url": s.URL}, out)
	case *deepgram.BufferSource, *deepgram.StreamSource:
		return c.rest.Post(ctx, endpoint, s.(deepgram.PayloadSource).Reader(), "", out)
	default:
		return deepgram.NewError(deepgram.ErrorStatusInvalidArgument, "unsupported source type")
	}
}

func hasCallback(options *PrerecordedOptions) bool {
	if options == nil {
		return false
	}
	_, err := options.Get("callback")
	return err == nil
}
