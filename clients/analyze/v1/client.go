package v1

import (
	"context"
	"encoding/json"
	"io"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	deepgram "github.com/moxierobots/deepgram-go"
	"github.com/moxierobots/deepgram-go/internal/rest"
)

const readPath = "read"

// Client calls the text intelligence (/v1/read) endpoint.
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
		logger:  options.Logger.With(zap.String("client", "analyze")),
	}
}

// Config returns the configuration the client was created with.
func (c *Client) Config() *deepgram.ClientOptions {
	return c.config
}

// AnalyzeURL analyzes the text hosted at source.
func (c *Client) AnalyzeURL(ctx context.Context, source *deepgram.URLSource, options *AnalyzeOptions) (*AnalyzeResponse, error) {
	return c.Analyze(ctx, source, options)
}

// AnalyzeText analyzes text supplied in a buffer or stream.
func (c *Client) AnalyzeText(ctx context.Context, source TextSource, options *AnalyzeOptions) (*AnalyzeResponse, error) {
	return c.Analyze(ctx, source, options)
}

// Analyze dispatches on the source variant. Options with a callback are
// rejected; use the Callback variants instead.
func (c *Client) Analyze(ctx context.Context, source AnalyzeSource, options *AnalyzeOptions) (*AnalyzeResponse, error) {
	if hasCallback(options) {
		return nil, deepgram.ErrCallbackNotAllowed
	}
	var resp AnalyzeResponse
	if err := c.do(ctx, source, options, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeURLCallback submits source and returns immediately; results are
// posted to callback.
func (c *Client) AnalyzeURLCallback(ctx context.Context, source *deepgram.URLSource, callback string, options *AnalyzeOptions) (*deepgram.AsyncResponse, error) {
	return c.AnalyzeCallback(ctx, source, callback, options)
}

// AnalyzeTextCallback is AnalyzeURLCallback for buffer and stream sources.
func (c *Client) AnalyzeTextCallback(ctx context.Context, source TextSource, callback string, options *AnalyzeOptions) (*deepgram.AsyncResponse, error) {
	return c.AnalyzeCallback(ctx, source, callback, options)
}

func (c *Client) AnalyzeCallback(ctx context.Context, source AnalyzeSource, callback string, options *AnalyzeOptions) (*deepgram.AsyncResponse, error) {
	if callback == "" {
		return nil, deepgram.ErrCallbackRequired
	}
	var opts AnalyzeOptions
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

func (c *Client) do(ctx context.Context, source AnalyzeSource, options *AnalyzeOptions, out any) error {
	if source == nil || deepgram.IsEmpty(source) {
		return deepgram.ErrEmptySource
	}
	if options == nil {
		options = &AnalyzeOptions{}
	}
	if err := options.Validate(); err != nil {
		return err
	}
	query, err := options.Query()
	if err != nil {
		return deepgram.NewErrorWithCause(deepgram.ErrorStatusInvalidArgument, "failed to encode options", err)
	}
	endpoint := c.rest.Endpoint(readPath, query)
	c.logger.Debug("analyze", zap.String("source", string(source.Kind())), zap.String("endpoint", endpoint))

	switch s := source.(type) {
	case *deepgram.URLSource:
		return c.rest.PostJSON(ctx, endpoint, map[string]string{"url": s.URL}, out)
	case *deepgram.BufferSource, *deepgram.StreamSource:
		payload, err := io.ReadAll(s.(deepgram.PayloadSource).Reader())
		if err != nil {
			return deepgram.NewErrorWithCause(deepgram.ErrorStatusInvalidArgument, "failed to read source", err)
		}
		return c.rest.PostJSON(ctx, endpoint, textBody(payload), out)
	default:
		return deepgram.NewError(deepgram.ErrorStatusInvalidArgument, "unsupported source type")
	}
}

// textBody passes through a payload that is already a request object
// ({"text": ...} or {"url": ...}) and wraps anything else as text.
func textBody(payload []byte) any {
	if gjson.ValidBytes(payload) {
		obj := gjson.ParseBytes(payload)
		if obj.IsObject() && (obj.Get("text").Exists() || obj.Get("url").Exists()) {
			return json.RawMessage(payload)
		}
	}
	return map[string]string{"text": string(payload)}
}

func hasCallback(options *AnalyzeOptions) bool {
	if options == nil {
		return false
	}
	_, err := options.Get("callback")
	return err == nil
}
