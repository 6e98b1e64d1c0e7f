package v1

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deepgram "github.com/moxierobots/deepgram-go"
)

const analyzeReply = `{
	"metadata": {"request_id": "req-1", "language": "en"},
	"results": {
		"summary": {"text": "A short call."},
		"topics": {"segments": [{"text": "refund please", "start_word": 0, "end_word": 1, "topics": [{"topic": "refunds", "confidence_score": 0.9}]}]}
	}
}`

type recordedRequest struct {
	path  string
	query string
	body  string
}

func newServer(t *testing.T, reply string) (*deepgram.ClientOptions, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body = string(body)
		w.Header().Set("dg-request-id", "req-1")
		w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return &deepgram.ClientOptions{APIKey: "key", Host: server.URL}, rec
}

func TestAnalyzeURL(t *testing.T) {
	config, rec := newServer(t, analyzeReply)
	client := NewClient(config)

	resp, err := client.AnalyzeURL(context.Background(), deepgram.NewURLSource("https://example.com/t.txt"),
		&AnalyzeOptions{Summarize: deepgram.Bool(true), Topics: deepgram.Bool(true)})
	require.NoError(t, err)

	assert.Equal(t, "/v1/read", rec.path)
	assert.Equal(t, "summarize=true&topics=true", rec.query)
	assert.JSONEq(t, `{"url":"https://example.com/t.txt"}`, rec.body)

	assert.Equal(t, "req-1", resp.Metadata.RequestID)
	require.NotNil(t, resp.Results.Summary)
	assert.Equal(t, "A short call.", resp.Results.Summary.Text)
	require.NotNil(t, resp.Results.Topics)
	require.Len(t, resp.Results.Topics.Segments, 1)
	assert.Equal(t, "refunds", resp.Results.Topics.Segments[0].Topics[0].Topic)
}

func TestAnalyzeText(t *testing.T) {
	tests := []struct {
		name   string
		source TextSource
		body   string
	}{
		{
			name:   "plain text buffer",
			source: deepgram.NewBufferSource([]byte("hello there")),
			body:   `{"text":"hello there"}`,
		},
		{
			name:   "request object stream",
			source: deepgram.NewStreamSource(strings.NewReader(`{"text":"from json"}`)),
			body:   `{"text":"from json"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, rec := newServer(t, analyzeReply)
			client := NewClient(config)

			_, err := client.AnalyzeText(context.Background(), tt.source, nil)
			require.NoError(t, err)
			assert.JSONEq(t, tt.body, rec.body)
			assert.Empty(t, rec.query)
		})
	}
}

func TestAnalyzeRejectsCallback(t *testing.T) {
	client := NewClient(nil)
	opts := &AnalyzeOptions{Callback: deepgram.String("https://cb")}
	_, err := client.Analyze(context.Background(), deepgram.NewURLSource("https://x"), opts)
	assert.Equal(t, deepgram.ErrCallbackNotAllowed, err)
}

func TestAnalyzeRejectsEmptySource(t *testing.T) {
	client := NewClient(nil)
	_, err := client.Analyze(context.Background(), &deepgram.URLSource{}, nil)
	assert.Equal(t, deepgram.ErrEmptySource, err)

	_, err = client.AnalyzeText(context.Background(), deepgram.NewBufferSource(nil), nil)
	assert.Equal(t, deepgram.ErrEmptySource, err)
}

func TestAnalyzeCallback(t *testing.T) {
	config, rec := newServer(t, `{"request_id":"async-1"}`)
	client := NewClient(config)

	opts := &AnalyzeOptions{Sentiment: deepgram.Bool(true)}
	resp, err := client.AnalyzeURLCallback(context.Background(), deepgram.NewURLSource("https://x"), "https://cb.example.com", opts)
	require.NoError(t, err)
	assert.Equal(t, "async-1", resp.RequestID)
	assert.Contains(t, rec.query, "callback=https%3A%2F%2Fcb.example.com")
	assert.Nil(t, opts.Callback, "caller's options must not be modified")

	_, err = client.AnalyzeTextCallback(context.Background(), deepgram.NewBufferSource([]byte("x")), "", nil)
	assert.Equal(t, deepgram.ErrCallbackRequired, err)
}

func TestAnalyzeCallbackReplacesEarlierSet(t *testing.T) {
	config, rec := newServer(t, `{"request_id":"async-2"}`)
	client := NewClient(config)

	opts := &AnalyzeOptions{}
	opts.Set("callback", 5)
	_, err := client.AnalyzeURLCallback(context.Background(), deepgram.NewURLSource("https://x"), "https://cb.example.com", opts)
	require.NoError(t, err)
	assert.Equal(t, "callback=https%3A%2F%2Fcb.example.com", rec.query)
}

func TestAnalyzeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"err_code":"INVALID_QUERY","err_msg":"unknown language","request_id":"req-9"}`))
	}))
	defer server.Close()

	client := NewClient(&deepgram.ClientOptions{Host: server.URL})
	_, err := client.AnalyzeText(context.Background(), deepgram.NewBufferSource([]byte("hola")), &AnalyzeOptions{Language: deepgram.String("xx")})
	require.Error(t, err)
	assert.True(t, deepgram.IsErrorStatus(err, deepgram.ErrorStatusBadRequest))
	assert.Contains(t, err.Error(), "req-9")
}

func TestClientConfig(t *testing.T) {
	config := &deepgram.ClientOptions{APIKey: "key"}
	client := NewClient(config)
	assert.Same(t, config, client.Config())
	assert.Empty(t, config.Host)
}
