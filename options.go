package deepgram

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	Version = "0.4.0"

	DefaultHost              = "api.deepgram.com"
	DefaultAPIVersion        = "v1"
	DefaultBufferQueueSize   = 1000
	DefaultKeepAliveInterval = 5 * time.Second
	DefaultConnectTimeout    = 30 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultRequestTimeout    = 300 * time.Second
)

// APIKeyFunc returns an API key dynamically (e.g. short-lived keys).
type APIKeyFunc func() (string, error)

// ClientOptions is the configuration shared by every client. Clients keep the
// pointer they were given and apply defaults to a private copy.
type ClientOptions struct {
	APIKey            string            `yaml:"api_key"`
	APIKeyFunc        APIKeyFunc        `yaml:"-"` // takes precedence over APIKey
	Host              string            `yaml:"host"`
	Headers           map[string]string `yaml:"headers"`
	KeepAlive         bool              `yaml:"keep_alive"`
	KeepAliveInterval time.Duration     `yaml:"keep_alive_interval"`
	ConnectTimeout    time.Duration     `yaml:"connect_timeout"`
	WriteTimeout      time.Duration     `yaml:"write_timeout"`
	RequestTimeout    time.Duration     `yaml:"request_timeout"`
	BufferQueueSize   int               `yaml:"buffer_queue_size"`
	LogLevel          string            `yaml:"log_level"`

	Logger     *zap.Logger  `yaml:"-"`
	HTTPClient *http.Client `yaml:"-"`
}

// WithDefaults returns a copy of o with every unset field defaulted. A nil
// receiver yields the defaults.
func (o *ClientOptions) WithDefaults() ClientOptions {
	var out ClientOptions
	if o != nil {
		out = *o
	}
	if out.Host == "" {
		out.Host = DefaultHost
	}
	if out.BufferQueueSize == 0 {
		out.BufferQueueSize = DefaultBufferQueueSize
	}
	if out.KeepAliveInterval == 0 {
		out.KeepAliveInterval = DefaultKeepAliveInterval
	}
	if out.ConnectTimeout == 0 {
		out.ConnectTimeout = DefaultConnectTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = DefaultWriteTimeout
	}
	if out.RequestTimeout == 0 {
		out.RequestTimeout = DefaultRequestTimeout
	}
	if out.Logger == nil {
		out.Logger = NewLogger(out.LogLevel)
	}
	if out.HTTPClient == nil {
		out.HTTPClient = &http.Client{Timeout: out.RequestTimeout}
	}
	return out
}

// BaseURL returns the API root for the given scheme ("https" or "wss"). A
// scheme already present on Host is translated to its REST or WebSocket
// counterpart.
func (o ClientOptions) BaseURL(scheme string) string {
	host := o.Host
	if host == "" {
		host = DefaultHost
	}
	if i := strings.Index(host, "://"); i >= 0 {
		current := host[:i]
		host = host[i+3:]
		scheme = translateScheme(current, scheme)
	}
	return scheme + "://" + strings.TrimRight(host, "/")
}

func translateScheme(current, want string) string {
	secure := current == "https" || current == "wss"
	switch want {
	case "ws", "wss":
		if secure {
			return "wss"
		}
		return "ws"
	default:
		if secure {
			return "https"
		}
		return "http"
	}
}

// Key resolves the API key, preferring APIKeyFunc.
func (o ClientOptions) Key() (string, error) {
	if o.APIKeyFunc != nil {
		return o.APIKeyFunc()
	}
	return o.APIKey, nil
}

// AuthHeader returns the headers sent with every request: token
// authorization, the SDK user agent, and any custom headers.
func (o ClientOptions) AuthHeader() (http.Header, error) {
	key, err := o.Key()
	if err != nil {
		return nil, NewErrorWithCause(ErrorStatusAPIKeyFetchFailed, "failed to get API key", err)
	}
	h := http.Header{}
	for k, v := range o.Headers {
		h.Set(k, v)
	}
	if key != "" {
		h.Set("Authorization", "Token "+key)
	}
	h.Set("User-Agent", "deepgram-go/"+Version)
	return h, nil
}
