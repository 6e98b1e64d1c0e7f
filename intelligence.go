package deepgram

// Response shapes for the text-intelligence features shared by the analyze
// and prerecorded endpoints.

type ModelInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Arch    string `json:"arch"`
}

type IntelligenceInfo struct {
	ModelUUID    string `json:"model_uuid"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

type Summary struct {
	Result string `json:"result,omitempty"`
	Short  string `json:"short,omitempty"`
	Text   string `json:"text,omitempty"`
}

type Topic struct {
	Topic           string  `json:"topic"`
	ConfidenceScore float64 `json:"confidence_score"`
}

type Intent struct {
	Intent          string  `json:"intent"`
	ConfidenceScore float64 `json:"confidence_score"`
}

type Segment struct {
	Text           string   `json:"text"`
	StartWord      int      `json:"start_word"`
	EndWord        int      `json:"end_word"`
	Topics         []Topic  `json:"topics,omitempty"`
	Intents        []Intent `json:"intents,omitempty"`
	Sentiment      string   `json:"sentiment,omitempty"`
	SentimentScore float64  `json:"sentiment_score,omitempty"`
}

type Topics struct {
	Segments []Segment `json:"segments"`
}

type Intents struct {
	Segments []Segment `json:"segments"`
}

type Average struct {
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
}

type Sentiments struct {
	Segments []Segment `json:"segments"`
	Average  Average   `json:"average"`
}

// AsyncResponse is returned when a request names a callback URL; results are
// delivered to that URL later.
type AsyncResponse struct {
	RequestID string `json:"request_id"`
}
