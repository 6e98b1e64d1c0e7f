package v1

import (
	deepgram "github.com/moxierobots/deepgram-go"
)

// Server message types.
const (
	MessageTypeResults       = "Results"
	MessageTypeMetadata      = "Metadata"
	MessageTypeSpeechStarted = "SpeechStarted"
	MessageTypeUtteranceEnd  = "UtteranceEnd"
	MessageTypeError         = "Error"
)

// Client control message types.
const (
	ControlKeepAlive   = "KeepAlive"
	ControlFinalize    = "Finalize"
	ControlCloseStream = "CloseStream"
)

type Word struct {
	Word           string  `json:"word"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Confidence     float64 `json:"confidence"`
	PunctuatedWord string  `json:"punctuated_word,omitempty"`
	Speaker        *int    `json:"speaker,omitempty"`
	Language       string  `json:"language,omitempty"`
}

type Alternative struct {
	Transcript string   `json:"transcript"`
	Confidence float64  `json:"confidence"`
	Words      []Word   `json:"words"`
	Languages  []string `json:"languages,omitempty"`
}

type Channel struct {
	Alternatives []Alternative `json:"alternatives"`
}

type ResultMetadata struct {
	RequestID string             `json:"request_id"`
	ModelUUID string             `json:"model_uuid"`
	ModelInfo deepgram.ModelInfo `json:"model_info"`
}

type ResultResponse struct {
	Type         string         `json:"type"`
	ChannelIndex []int          `json:"channel_index"`
	Duration     float64        `json:"duration"`
	Start        float64        `json:"start"`
	IsFinal      bool           `json:"is_final"`
	SpeechFinal  bool           `json:"speech_final"`
	FromFinalize bool           `json:"from_finalize,omitempty"`
	Channel      Channel        `json:"channel"`
	Metadata     ResultMetadata `json:"metadata"`
}

// Transcript returns the first alternative's transcript, or "".
func (r *ResultResponse) Transcript() string {
	if len(r.Channel.Alternatives) == 0 {
		return ""
	}
	return r.Channel.Alternatives[0].Transcript
}

type MetadataResponse struct {
	Type           string                        `json:"type"`
	TransactionKey string                        `json:"transaction_key"`
	RequestID      string                        `json:"request_id"`
	Sha256         string                        `json:"sha256"`
	Created        string                        `json:"created"`
	Duration       float64                       `json:"duration"`
	Channels       int                           `json:"channels"`
	Models         []string                      `json:"models"`
	ModelInfo      map[string]deepgram.ModelInfo `json:"model_info"`
}

type SpeechStartedResponse struct {
	Type      string  `json:"type"`
	Channel   []int   `json:"channel"`
	Timestamp float64 `json:"timestamp"`
}

type UtteranceEndResponse struct {
	Type        string  `json:"type"`
	Channel     []int   `json:"channel"`
	LastWordEnd float64 `json:"last_word_end"`
}

type ErrorResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Message     string `json:"message"`
	Variant     string `json:"variant"`
}

type ControlMessage struct {
	Type string `json:"type"`
}

func NewKeepAliveMessage() ControlMessage {
	return ControlMessage{Type: ControlKeepAlive}
}

func NewFinalizeMessage() ControlMessage {
	return ControlMessage{Type: ControlFinalize}
}

func NewCloseStreamMessage() ControlMessage {
	return ControlMessage{Type: ControlCloseStream}
}
