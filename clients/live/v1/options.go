package v1

import (
	"net/url"
	"time"

	deepgram "github.com/moxierobots/deepgram-go"
	"github.com/moxierobots/deepgram-go/internal/record"
)

const DefaultStreamChunkSize = 4096

// LiveOptions are the query parameters of a streaming /v1/listen session.
//
// https://developers.deepgram.com/reference/streaming
type LiveOptions struct {
	Alternatives    *int                   `json:"alternatives,omitempty"`
	Callback        *string                `json:"callback,omitempty"`
	CallbackMethod  *string                `json:"callback_method,omitempty"`
	Channels        *int                   `json:"channels,omitempty"`
	Diarize         *bool                  `json:"diarize,omitempty"`
	DiarizeVersion  *string                `json:"diarize_version,omitempty"`
	Dictation       *bool                  `json:"dictation,omitempty"`
	Encoding        *string                `json:"encoding,omitempty"`
	Endpointing     *string                `json:"endpointing,omitempty"`
	Extra           *deepgram.StringOrList `json:"extra,omitempty"`
	FillerWords     *bool                  `json:"filler_words,omitempty"`
	InterimResults  *bool                  `json:"interim_results,omitempty"`
	Keywords        []string               `json:"keywords,omitempty"`
	Language        *string                `json:"language,omitempty"`
	Model           *string                `json:"model,omitempty"`
	Multichannel    *bool                  `json:"multichannel,omitempty"`
	Numerals        *bool                  `json:"numerals,omitempty"`
	ProfanityFilter *bool                  `json:"profanity_filter,omitempty"`
	Punctuate       *bool                  `json:"punctuate,omitempty"`
	Redact          *deepgram.StringOrList `json:"redact,omitempty"`
	Replace         *deepgram.StringOrList `json:"replace,omitempty"`
	SampleRate      *int                   `json:"sample_rate,omitempty"`
	Search          *deepgram.StringOrList `json:"search,omitempty"`
	SmartFormat     *bool                  `json:"smart_format,omitempty"`
	Tag             []string               `json:"tag,omitempty"`
	Tier            *string                `json:"tier,omitempty"`
	UtteranceEndMs  *string                `json:"utterance_end_ms,omitempty"`
	VadEvents       *bool                  `json:"vad_events,omitempty"`
	Version         *string                `json:"version,omitempty"`

	extra record.Extra
}

func (o LiveOptions) MarshalJSON() ([]byte, error) {
	type plain LiveOptions
	return record.Marshal(plain(o), o.extra)
}

func (o *LiveOptions) UnmarshalJSON(data []byte) error {
	type plain LiveOptions
	var p plain
	if err := record.Unmarshal(data, &p, &p.extra); err != nil {
		return err
	}
	*o = LiveOptions(p)
	return nil
}

func (o *LiveOptions) Get(key string) (any, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if v, ok := record.Lookup(data, key); ok {
		return v, nil
	}
	return nil, deepgram.NewKeyNotFoundError(key)
}

func (o *LiveOptions) Set(key string, value any) {
	record.Set(o, &o.extra, key, value)
}

func (o *LiveOptions) Map() (map[string]any, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return record.Map(data)
}

func (o *LiveOptions) Query() (url.Values, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return record.Query(data), nil
}

func (o LiveOptions) String() string {
	return record.String(o)
}

// Validate never rejects; deprecated fields are reported by Warnings.
func (o *LiveOptions) Validate() error {
	return nil
}

// Warnings lists deprecated options that are set.
func (o *LiveOptions) Warnings() []string {
	if o.Tier != nil {
		return []string{"tier is deprecated; select the tier with model instead"}
	}
	return nil
}

type StreamOptions struct {
	ChunkSize    int
	PaceInterval time.Duration
	Finish       bool // calls Finish() after the stream is fully sent
}
