package deepgram

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLSource(t *testing.T) {
	src := NewURLSource("https://example.com/a.wav")
	assert.Equal(t, SourceKindURL, src.Kind())

	v, err := src.Get("url")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.wav", v)

	_, err = src.Get("buffer")
	assert.True(t, IsErrorStatus(err, ErrorStatusKeyNotFound))

	assert.Equal(t, "{\n    \"url\": \"https://example.com/a.wav\"\n}", src.String())
}

func TestURLSourceSet(t *testing.T) {
	src := NewURLSource("https://example.com/a.wav")
	src.Set("url", "https://example.com/b.wav")
	assert.Equal(t, "https://example.com/b.wav", src.URL)

	src.Set("priority", "high")
	v, err := src.Get("priority")
	require.NoError(t, err)
	assert.Equal(t, "high", v)

	src.Set("priority", nil)
	_, err = src.Get("priority")
	assert.True(t, IsErrorStatus(err, ErrorStatusKeyNotFound))

	src.Set("url", nil)
	assert.True(t, IsEmpty(src))
	assert.Equal(t, "{}", src.String())
}

func TestURLSourceUnmarshal(t *testing.T) {
	var src URLSource
	require.NoError(t, json.Unmarshal([]byte(`{"url":"https://x","mimetype":"audio/wav"}`), &src))
	assert.Equal(t, "https://x", src.URL)

	v, err := src.Get("mimetype")
	require.NoError(t, err)
	assert.Equal(t, "audio/wav", v)
}

func TestBufferSource(t *testing.T) {
	src := NewBufferSource([]byte("audio"))
	assert.Equal(t, SourceKindBuffer, src.Kind())

	v, err := src.Get("buffer")
	require.NoError(t, err)
	assert.Equal(t, []byte("audio"), v)

	data, err := io.ReadAll(src.Reader())
	require.NoError(t, err)
	assert.Equal(t, "audio", string(data))

	data, err = io.ReadAll(src.Reader())
	require.NoError(t, err)
	assert.Equal(t, "audio", string(data), "Reader should start over on every call")

	assert.Contains(t, src.String(), `"buffer": "YXVkaW8="`)
}

func TestBufferSourceEmptyBuffer(t *testing.T) {
	src := &BufferSource{}
	src.Set("buffer", []byte{})

	_, err := src.Get("buffer")
	assert.True(t, IsErrorStatus(err, ErrorStatusKeyNotFound))
	assert.Equal(t, "{}", src.String())

	src.Set("buffer", 7)
	v, err := src.Get("buffer")
	require.NoError(t, err)
	assert.Equal(t, float64(7), v)
}

func TestStreamSource(t *testing.T) {
	r := strings.NewReader("audio")
	src := NewStreamSource(r)
	assert.Equal(t, SourceKindStream, src.Kind())
	assert.Same(t, r, src.Reader())

	v, err := src.Get("stream")
	require.NoError(t, err)
	assert.Same(t, r, v)

	assert.Equal(t, "{\n    \"stream\": \"*strings.Reader\"\n}", src.String())
	assert.Equal(t, 5, r.Len(), "String must not consume the stream")

	other := bytes.NewBufferString("more")
	src.Set("stream", other)
	assert.Same(t, other, src.Reader())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(&URLSource{}))
	assert.True(t, IsEmpty(&BufferSource{}))
	assert.True(t, IsEmpty(&StreamSource{}))
	assert.True(t, IsEmpty((*URLSource)(nil)))
	assert.False(t, IsEmpty(NewURLSource("https://x")))
	assert.False(t, IsEmpty(NewBufferSource([]byte{0})))
	assert.False(t, IsEmpty(NewStreamSource(strings.NewReader(""))))
}

func TestSourceKinds(t *testing.T) {
	sources := []Source{
		NewURLSource("u"),
		NewBufferSource(nil),
		NewStreamSource(nil),
	}
	var payloads int
	for _, s := range sources {
		if _, ok := s.(PayloadSource); ok {
			payloads++
		}
	}
	assert.Equal(t, 2, payloads)
}
