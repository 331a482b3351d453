package gemini

import (
	"google.golang.org/genai"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

// BuildConfig translates generation options into the SDK config. Unset
// options are left out so the service defaults apply.
func BuildConfig(opts *ai.Options) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if opts.MaxTokens != nil {
		config.MaxOutputTokens = int32(*opts.MaxTokens)
	}
	if opts.Temperature != nil {
		temp := float32(*opts.Temperature)
		config.Temperature = &temp
	}
	if opts.ResponseMIMEType != "" {
		config.ResponseMIMEType = opts.ResponseMIMEType
	}
	return config
}

// DecodeText extracts the text payload from a generate-content response.
// Missing pieces are reported as distinct causes: no candidates at all,
// a candidate without content parts, or parts that carry no text.
func DecodeText(backend ai.BackendKind, op string, resp *genai.GenerateContentResponse) (string, ai.Usage, error) {
	usage := ai.Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	if len(resp.Candidates) == 0 {
		return "", usage, ai.NewBackendError(backend, op, ai.CauseEmptyResponse, 0, nil)
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", usage, ai.NewBackendError(backend, op, ai.CauseMissingContentPart, 0, nil)
	}

	text := ""
	for _, part := range content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", usage, ai.NewBackendError(backend, op, ai.CauseMalformedResponse, 0, nil)
	}
	return text, usage, nil
}
