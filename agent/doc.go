// Package agent provides the task-dispatch façade over the backend
// variants.
//
// The Agent routes a closed set of tasks (draft, summarize,
// generate_image, query_code, list_files) to the backend family serving
// each one. Routing is by task tag; there is no runtime model-name
// lookup. Every invocation is a single synchronous exchange: no retries,
// no streaming, no multi-turn state.
//
// # Basic Usage
//
// Create an agent with explicit configuration and invoke a task:
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
//
// The typed methods cover the five tasks; Do is the tagged entry point
// they share:
//
//	res, err := a.Do(ctx, agent.Request{
//	    Task:     agent.TaskListFiles,
//	    Query:    "mimeType='application/pdf'",
//	    PageSize: 10,
//	})
//
// # Configuration
//
// All configuration is explicit. The library never reads the process
// environment; the cmd binaries read the conventional variables and pass
// the values in. Backends are built lazily: an agent configured only
// with an APIKey can summarize but fails draft with
// [ErrBackendUnavailable] naming the missing fields.
//
// # Events
//
// Observe execution through an event channel:
//
//	events := make(chan agent.Event, 100)
//	a, _ := agent.New(agent.Config{APIKey: key, Events: events})
//
//	go func() {
//	    for e := range events {
//	        fmt.Printf("[%s] %s via %s took %v\n", e.Type, e.Task, e.Backend, e.Duration)
//	    }
//	}()
//
// Emission never blocks a call: events are dropped when the channel is
// full. Locally rejected requests produce no events.
package agent
