package v1

import (
	deepgram "github.com/moxierobots/deepgram-go"
)

type AnalyzeMetadata struct {
	RequestID     string                     `json:"request_id"`
	Created       string                     `json:"created"`
	Language      string                     `json:"language"`
	IntentsInfo   *deepgram.IntelligenceInfo `json:"intents_info,omitempty"`
	SentimentInfo *deepgram.IntelligenceInfo `json:"sentiment_info,omitempty"`
	SummaryInfo   *deepgram.IntelligenceInfo `json:"summary_info,omitempty"`
	TopicsInfo    *deepgram.IntelligenceInfo `json:"topics_info,omitempty"`
}

type AnalyzeResults struct {
	Summary    *deepgram.Summary    `json:"summary,omitempty"`
	Topics     *deepgram.Topics     `json:"topics,omitempty"`
	Intents    *deepgram.Intents    `json:"intents,omitempty"`
	Sentiments *deepgram.Sentiments `json:"sentiments,omitempty"`
}

type AnalyzeResponse struct {
	Metadata AnalyzeMetadata `json:"metadata"`
	Results  AnalyzeResults  `json:"results"`
}
