// Package model provides typed model identifiers for each backend family.
//
// Every family is a distinct string type, so a code model cannot be handed
// to the image backend by accident. Use the Default* values unless a
// specific model is required:
//
//	a, _ := agent.New(agent.Config{
//	    Project:  "my-project",
//	    Location: "us-central1",
//	    Defaults: agent.Defaults{
//	        Text:  model.DefaultText,
//	        Image: model.Imagen4Fast,
//	    },
//	})
//
// Per-request overrides take a raw identifier and must stay within the
// operation's family:
//
//	text, err := a.Draft(ctx, prompt, ai.WithModel(model.TextGemini25Pro.String()))
package model
