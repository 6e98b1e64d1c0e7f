package v1

import (
	deepgram "github.com/moxierobots/deepgram-go"
)

type Warning struct {
	Parameter string `json:"parameter"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

type Metadata struct {
	TransactionKey string                        `json:"transaction_key"`
	RequestID      string                        `json:"request_id"`
	Sha256         string                        `json:"sha256"`
	Created        string                        `json:"created"`
	Duration       float64                       `json:"duration"`
	Channels       int                           `json:"channels"`
	Models         []string                      `json:"models"`
	ModelInfo      map[string]deepgram.ModelInfo `json:"model_info"`
	Warnings       []Warning                     `json:"warnings,omitempty"`
	SummaryInfo    *deepgram.IntelligenceInfo    `json:"summary_info,omitempty"`
	IntentsInfo    *deepgram.IntelligenceInfo    `json:"intents_info,omitempty"`
	SentimentInfo  *deepgram.IntelligenceInfo    `json:"sentiment_info,omitempty"`
	TopicsInfo     *deepgram.IntelligenceInfo    `json:"topics_info,omitempty"`
}

type Word struct {
	Word              string  `json:"word"`
	Start             float64 `json:"start"`
	End               float64 `json:"end"`
	Confidence        float64 `json:"confidence"`
	PunctuatedWord    string  `json:"punctuated_word,omitempty"`
	Speaker           *int    `json:"speaker,omitempty"`
	SpeakerConfidence float64 `json:"speaker_confidence,omitempty"`
}

type Sentence struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type Paragraph struct {
	Sentences []Sentence `json:"sentences"`
	NumWords  int        `json:"num_words"`
	Start     float64    `json:"start"`
	End       float64    `json:"end"`
	Speaker   *int       `json:"speaker,omitempty"`
}

type Paragraphs struct {
	Transcript string      `json:"transcript"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

type Entity struct {
	Label      string  `json:"label"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	StartWord  int     `json:"start_word"`
	EndWord    int     `json:"end_word"`
}

type Alternative struct {
	Transcript string      `json:"transcript"`
	Confidence float64     `json:"confidence"`
	Words      []Word      `json:"words"`
	Paragraphs *Paragraphs `json:"paragraphs,omitempty"`
	Entities   []Entity    `json:"entities,omitempty"`
}

type Hit struct {
	Confidence float64 `json:"confidence"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Snippet    string  `json:"snippet"`
}

type Search struct {
	Query string `json:"query"`
	Hits  []Hit  `json:"hits"`
}

type Channel struct {
	Search             []Search      `json:"search,omitempty"`
	Alternatives       []Alternative `json:"alternatives"`
	DetectedLanguage   string        `json:"detected_language,omitempty"`
	LanguageConfidence float64       `json:"language_confidence,omitempty"`
}

type Utterance struct {
	ID         string  `json:"id"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
	Channel    int     `json:"channel"`
	Transcript string  `json:"transcript"`
	Words      []Word  `json:"words"`
	Speaker    *int    `json:"speaker,omitempty"`
}

type Results struct {
	Channels   []Channel            `json:"channels"`
	Utterances []Utterance          `json:"utterances,omitempty"`
	Summary    *deepgram.Summary    `json:"summary,omitempty"`
	Topics     *deepgram.Topics     `json:"topics,omitempty"`
	Intents    *deepgram.Intents    `json:"intents,omitempty"`
	Sentiments *deepgram.Sentiments `json:"sentiments,omitempty"`
}

type PrerecordedResponse struct {
	Metadata Metadata `json:"metadata"`
	Results  Results  `json:"results"`
}

// Transcript returns the first alternative of the first channel, or "".
func (r *PrerecordedResponse) Transcript() string {
	if len(r.Results.Channels) == 0 || len(r.Results.Channels[0].Alternatives) == 0 {
		return ""
	}
	return r.Results.Channels[0].Alternatives[0].Transcript
}
