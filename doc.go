// Package aisprint provides a unified task façade over Google Cloud
// generative AI services and Google Drive.
//
// The library wraps five managed-service calls behind one consistent
// surface: text drafting (Vertex AI), document summarization (Gemini API),
// image generation (Imagen), code question answering (Vertex AI), and
// Drive file listing. Each operation is a single synchronous exchange;
// there is no retry, streaming, or multi-turn state.
//
// # Core Types
//
//   - [Generator]: the capability interface implemented by every
//     generative backend variant
//   - [FileLister]: the Drive file listing capability
//   - [BackendKind]: the closed set of backend variants
//   - [Options]: caller-tunable generation parameters
//
// Use the [github.com/Victorasuquo/vertex-aI-sprint/agent] package as the
// entry point and the [github.com/Victorasuquo/vertex-aI-sprint/model]
// package for model selection.
//
// # Basic Usage
//
// Draft text through the façade:
//
//	a, err := agent.New(agent.Config{
//	    Project:  os.Getenv("VERTEX_PROJECT"),
//	    Location: os.Getenv("VERTEX_LOCATION"),
//	    APIKey:   os.Getenv("GOOGLE_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := a.Draft(ctx, "Write a 2-sentence thank-you email",
//	    ai.WithTemperature(0.7),
//	    ai.WithMaxTokens(500),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text)
//
// # Error Handling
//
// Every operation either returns its documented value or fails with one
// of three kinds: [ValidationError] (bad parameters, no network call
// made), [CredentialError] (credential missing, malformed, or rejected),
// or [BackendError] (the exchange failed, with a [Cause] naming what went
// wrong). Inspect them with the predicates:
//
//	img, err := a.GenerateImage(ctx, prompt)
//	switch {
//	case aisprint.IsValidation(err):
//	    // fix the request
//	case aisprint.IsCause(err, aisprint.CauseQuotaExceeded):
//	    // back off and try again later
//	}
//
// Retryable failures are reported, never retried; the caller owns retry
// policy.
package aisprint
