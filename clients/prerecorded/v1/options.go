package v1

import (
	"net/url"

	deepgram "github.com/moxierobots/deepgram-go"
	"github.com/moxierobots/deepgram-go/internal/record"
)

// PrerecordedOptions are the query parameters of the /v1/listen endpoint for
// prerecorded audio.
//
// https://developers.deepgram.com/reference/pre-recorded
type PrerecordedOptions struct {
	Alternatives     *int                   `json:"alternatives,omitempty"`
	Callback         *string                `json:"callback,omitempty"`
	CallbackMethod   *string                `json:"callback_method,omitempty"`
	CustomIntent     *deepgram.StringOrList `json:"custom_intent,omitempty"`
	CustomIntentMode *string                `json:"custom_intent_mode,omitempty"`
	CustomTopic      *deepgram.StringOrList `json:"custom_topic,omitempty"`
	CustomTopicMode  *string                `json:"custom_topic_mode,omitempty"`
	DetectEntities   *bool                  `json:"detect_entities,omitempty"`
	DetectLanguage   *bool                  `json:"detect_language,omitempty"`
	DetectTopics     *bool                  `json:"detect_topics,omitempty"`
	Diarize          *bool                  `json:"diarize,omitempty"`
	DiarizeVersion   *string                `json:"diarize_version,omitempty"`
	Dictation        *bool                  `json:"dictation,omitempty"`
	Encoding         *string                `json:"encoding,omitempty"`
	Extra            *deepgram.StringOrList `json:"extra,omitempty"`
	FillerWords      *bool                  `json:"filler_words,omitempty"`
	Intents          *bool                  `json:"intents,omitempty"`
	Keywords         []string               `json:"keywords,omitempty"`
	Language         *string                `json:"language,omitempty"`
	Measurements     *bool                  `json:"measurements,omitempty"`
	Model            *string                `json:"model,omitempty"`
	Multichannel     *bool                  `json:"multichannel,omitempty"`
	Numerals         *bool                  `json:"numerals,omitempty"`
	Paragraphs       *bool                  `json:"paragraphs,omitempty"`
	ProfanityFilter  *bool                  `json:"profanity_filter,omitempty"`
	Punctuate        *bool                  `json:"punctuate,omitempty"`
	Redact           *deepgram.StringOrList `json:"redact,omitempty"`
	Replace          *deepgram.StringOrList `json:"replace,omitempty"`
	Search           *deepgram.StringOrList `json:"search,omitempty"`
	Sentiment        *bool                  `json:"sentiment,omitempty"`
	SmartFormat      *bool                  `json:"smart_format,omitempty"`
	Summarize        *deepgram.BoolOrString `json:"summarize,omitempty"`
	Tag              []string               `json:"tag,omitempty"`
	Tier             *string                `json:"tier,omitempty"`
	Topics           *bool                  `json:"topics,omitempty"`
	UttSplit         *float64               `json:"utt_split,omitempty"`
	Utterances       *bool                  `json:"utterances,omitempty"`
	Version          *string                `json:"version,omitempty"`

	extra record.Extra
}

func (o PrerecordedOptions) MarshalJSON() ([]byte, error) {
	type plain PrerecordedOptions
	return record.Marshal(plain(o), o.extra)
}

func (o *PrerecordedOptions) UnmarshalJSON(data []byte) error {
	type plain PrerecordedOptions
	var p plain
	if err := record.Unmarshal(data, &p, &p.extra); err != nil {
		return err
	}
	*o = PrerecordedOptions(p)
	return nil
}

func (o *PrerecordedOptions) Get(key string) (any, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if v, ok := record.Lookup(data, key); ok {
		return v, nil
	}
	return nil, deepgram.NewKeyNotFoundError(key)
}

func (o *PrerecordedOptions) Set(key string, value any) {
	record.Set(o, &o.extra, key, value)
}

func (o *PrerecordedOptions) Map() (map[string]any, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return record.Map(data)
}

func (o *PrerecordedOptions) Query() (url.Values, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return record.Query(data), nil
}

func (o PrerecordedOptions) String() string {
	return record.String(o)
}

// Validate never rejects; deprecated fields are reported by Warnings.
func (o *PrerecordedOptions) Validate() error {
	return nil
}

// Warnings lists deprecated options that are set.
func (o *PrerecordedOptions) Warnings() []string {
	if o.Tier != nil {
		return []string{"tier is deprecated; select the tier with model instead"}
	}
	return nil
}
