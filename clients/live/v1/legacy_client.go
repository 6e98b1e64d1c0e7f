package v1

import (
	"context"
	"sync"

	deepgram "github.com/moxierobots/deepgram-go"
)

const legacyChannelSize = 64

// LegacyClient wraps Client behind channels and io.Writer for callers that
// predate the callback API.
type LegacyClient struct {
	client *Client

	mu      sync.Mutex
	results chan *ResultResponse
	errs    chan *deepgram.Error
	done    chan struct{}
	once    sync.Once
}

func NewLegacyClient(config *deepgram.ClientOptions) *LegacyClient {
	return &LegacyClient{client: NewClient(config)}
}

func (l *LegacyClient) Config() *deepgram.ClientOptions {
	return l.client.Config()
}

// Start opens a session; results and errors are delivered on the channels
// returned by Results and Errors until Done is closed.
func (l *LegacyClient) Start(ctx context.Context, options *LiveOptions) error {
	l.mu.Lock()
	l.results = make(chan *ResultResponse, legacyChannelSize)
	l.errs = make(chan *deepgram.Error, 1)
	done := make(chan struct{})
	l.done = done
	l.once = sync.Once{}
	results, errs := l.results, l.errs
	l.mu.Unlock()

	finish := func() {
		l.once.Do(func() { close(done) })
	}

	return l.client.Start(ctx, options, Callbacks{
		OnResults: func(r *ResultResponse) {
			select {
			case results <- r:
			case <-done:
			}
		},
		OnError: func(err *deepgram.Error) {
			select {
			case errs <- err:
			default:
			}
			finish()
		},
		OnStateChange: func(_, newState State) {
			if newState.IsTerminal() {
				finish()
			}
		},
	})
}

// Write sends p as audio. It implements io.Writer.
func (l *LegacyClient) Write(p []byte) (int, error) {
	data := make([]byte, len(p))
	copy(data, p)
	if err := l.client.Send(data); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Results is never closed; select on Done alongside it.
func (l *LegacyClient) Results() <-chan *ResultResponse {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.results
}

func (l *LegacyClient) Errors() <-chan *deepgram.Error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errs
}

// Done is closed when the session reaches a terminal state.
func (l *LegacyClient) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

func (l *LegacyClient) Finish() error {
	return l.client.Finish()
}

func (l *LegacyClient) Close() error {
	return l.client.Close()
}
