package imagen

import (
	"google.golang.org/genai"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

// DecodeImage extracts the binary payload of the first generated image.
// Each way the payload can be absent is reported as its own cause: no
// generated images at all, an entry without an image object, or an image
// object without bytes.
func DecodeImage(resp *genai.GenerateImagesResponse) ([]byte, string, error) {
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, "", ai.NewBackendError(ai.BackendImage, "generate_image", ai.CauseEmptyResponse, 0, nil)
	}

	entry := resp.GeneratedImages[0]
	if entry == nil || entry.Image == nil {
		return nil, "", ai.NewBackendError(ai.BackendImage, "generate_image", ai.CauseMissingContentPart, 0, nil)
	}

	if len(entry.Image.ImageBytes) == 0 {
		return nil, "", ai.NewBackendError(ai.BackendImage, "generate_image", ai.CauseMissingImageData, 0, nil)
	}

	return entry.Image.ImageBytes, entry.Image.MIMEType, nil
}
