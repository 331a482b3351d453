package imagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

func TestDecodeImage(t *testing.T) {
	t.Run("returns the first image bytes and MIME type", func(t *testing.T) {
		resp := &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: []byte{0x89, 0x50, 0x4e, 0x47}, MIMEType: "image/png"}},
			},
		}

		data, mimeType, err := DecodeImage(resp)

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, data)
		assert.Equal(t, "image/png", mimeType)
	})

	t.Run("ignores extra images beyond the first", func(t *testing.T) {
		resp := &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: []byte{1}}},
				{Image: &genai.Image{ImageBytes: []byte{2}}},
			},
		}

		data, _, err := DecodeImage(resp)

		require.NoError(t, err)
		assert.Equal(t, []byte{1}, data)
	})

	t.Run("reports empty response for nil response", func(t *testing.T) {
		_, _, err := DecodeImage(nil)

		assert.True(t, ai.IsCause(err, ai.CauseEmptyResponse))
	})

	t.Run("reports empty response when no images generated", func(t *testing.T) {
		_, _, err := DecodeImage(&genai.GenerateImagesResponse{})

		assert.True(t, ai.IsCause(err, ai.CauseEmptyResponse))
	})

	t.Run("reports missing content part for entry without image", func(t *testing.T) {
		resp := &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{{Image: nil}},
		}

		_, _, err := DecodeImage(resp)

		assert.True(t, ai.IsCause(err, ai.CauseMissingContentPart))
	})

	t.Run("reports missing image data for image without bytes", func(t *testing.T) {
		resp := &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{GCSURI: "gs://bucket/out.png"}},
			},
		}

		_, _, err := DecodeImage(resp)

		assert.True(t, ai.IsCause(err, ai.CauseMissingImageData))
	})

	t.Run("keeps the three failure causes distinct", func(t *testing.T) {
		table := []struct {
			name string
			resp *genai.GenerateImagesResponse
			want ai.Cause
		}{
			{"no candidates", &genai.GenerateImagesResponse{}, ai.CauseEmptyResponse},
			{"nil image", &genai.GenerateImagesResponse{
				GeneratedImages: []*genai.GeneratedImage{{}},
			}, ai.CauseMissingContentPart},
			{"zero bytes", &genai.GenerateImagesResponse{
				GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{}}},
			}, ai.CauseMissingImageData},
		}
		for _, tc := range table {
			_, _, err := DecodeImage(tc.resp)

			assert.Equal(t, tc.want, ai.CauseOf(err), tc.name)
		}
	})
}
