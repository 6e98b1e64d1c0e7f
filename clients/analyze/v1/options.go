package v1

import (
	"net/url"

	deepgram "github.com/moxierobots/deepgram-go"
	"github.com/moxierobots/deepgram-go/internal/record"
)

// AnalyzeOptions are the query parameters of the /v1/read endpoint.
//
// https://developers.deepgram.com/reference/text-intelligence-apis
type AnalyzeOptions struct {
	Callback         *string                `json:"callback,omitempty"`
	CallbackMethod   *string                `json:"callback_method,omitempty"`
	CustomIntent     *deepgram.StringOrList `json:"custom_intent,omitempty"`
	CustomIntentMode *string                `json:"custom_intent_mode,omitempty"`
	CustomTopic      *deepgram.StringOrList `json:"custom_topic,omitempty"`
	CustomTopicMode  *string                `json:"custom_topic_mode,omitempty"`
	Intents          *bool                  `json:"intents,omitempty"`
	Language         *string                `json:"language,omitempty"`
	Sentiment        *bool                  `json:"sentiment,omitempty"`
	Summarize        *bool                  `json:"summarize,omitempty"`
	Topics           *bool                  `json:"topics,omitempty"`

	extra record.Extra
}

func (o AnalyzeOptions) MarshalJSON() ([]byte, error) {
	type plain AnalyzeOptions
	return record.Marshal(plain(o), o.extra)
}

func (o *AnalyzeOptions) UnmarshalJSON(data []byte) error {
	type plain AnalyzeOptions
	var p plain
	if err := record.Unmarshal(data, &p, &p.extra); err != nil {
		return err
	}
	*o = AnalyzeOptions(p)
	return nil
}

// Get returns the serialized value of key. Unset fields are not serialized
// and report ErrorStatusKeyNotFound.
func (o *AnalyzeOptions) Get(key string) (any, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if v, ok := record.Lookup(data, key); ok {
		return v, nil
	}
	return nil, deepgram.NewKeyNotFoundError(key)
}

// Set assigns key without validation. Keys the struct does not declare are
// sent as-is; a nil value removes the key.
func (o *AnalyzeOptions) Set(key string, value any) {
	record.Set(o, &o.extra, key, value)
}

func (o *AnalyzeOptions) Map() (map[string]any, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return record.Map(data)
}

func (o *AnalyzeOptions) Query() (url.Values, error) {
	data, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return record.Query(data), nil
}

func (o AnalyzeOptions) String() string {
	return record.String(o)
}

// Validate is the hook for cross-field checks. No combination is rejected
// today.
func (o *AnalyzeOptions) Validate() error {
	return nil
}
