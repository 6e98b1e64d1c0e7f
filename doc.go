// Package deepgram provides a Go SDK for the Deepgram speech and text
// intelligence API.
//
// The root package holds what every client shares: ClientOptions, the typed
// Error, source descriptors and a few value helpers. Clients live under
// clients/, one package per endpoint, each re-exporting its current
// versioned implementation:
//
//   - clients/live: real-time transcription over WebSocket
//   - clients/prerecorded: transcription of hosted or uploaded audio
//   - clients/analyze: summaries, topics, intents and sentiment for text
//
// # Quick Start
//
//	cfg, err := deepgram.LoadClientOptions("") // reads DEEPGRAM_API_KEY
//	client := prerecorded.NewClient(cfg)
//
//	resp, err := client.TranscribeURL(ctx,
//	    deepgram.NewURLSource("https://dpgr.am/spacewalk.wav"),
//	    &prerecorded.Options{
//	        Model:       deepgram.String("nova-2"),
//	        SmartFormat: deepgram.Bool(true),
//	    })
//
// # Options
//
// Option records are flat structs of pointer fields. A nil field is never
// sent. Records also support keyed access for parameters the struct does not
// declare yet:
//
//	opts := &analyze.Options{Summarize: deepgram.Bool(true)}
//	opts.Set("new_feature", true)
//	fmt.Println(opts) // indented JSON of the set keys
//
// Get reads through the serialized form, so a key that is not serialized is
// reported as ErrorStatusKeyNotFound even if the struct declares it.
//
// # Sources
//
// A request takes exactly one source: *URLSource, *BufferSource or
// *StreamSource. Endpoints that cannot fetch URLs accept only the payload
// variants, which is enforced at compile time:
//
//	client.AnalyzeText(ctx, deepgram.NewBufferSource([]byte(text)), opts)
//
// # Error Handling
//
// All errors can be type-asserted to *deepgram.Error:
//
//	var dgErr *deepgram.Error
//	if errors.As(err, &dgErr) {
//	    fmt.Printf("Status: %s, Code: %v\n", dgErr.Status, dgErr.Code)
//	}
//
// # Logging
//
// Set ClientOptions.Logger to a *zap.Logger, or LogLevel to have one built.
// Logging is off by default.
package deepgram
