package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visionFunc func(ctx context.Context, mimeType string, image []byte, prompt string) (string, error)

func (f visionFunc) Describe(ctx context.Context, mimeType string, image []byte, prompt string) (string, error) {
	return f(ctx, mimeType, image, prompt)
}

func replying(text string) visionFunc {
	return func(context.Context, string, []byte, string) (string, error) { return text, nil }
}

type archiveFunc func(ctx context.Context, photo Photo) (string, error)

func (f archiveFunc) Store(ctx context.Context, photo Photo) (string, error) { return f(ctx, photo) }

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		want   []string
		wantOK bool
	}{
		{"plain", `{"ingredients": ["tomato", "onion"]}`, []string{"tomato", "onion"}, true},
		{"wrapped in prose", "Sure!\n```json\n{\"ingredients\": [\"Garlic\"]}\n```", []string{"garlic"}, true},
		{"normalizes", `{"ingredients": [" Tomato ", "tomato", "", "BASIL"]}`, []string{"tomato", "basil"}, true},
		{"drops non strings", `{"ingredients": ["egg", 3, null, {"name": "x"}]}`, []string{"egg"}, true},
		{"empty list", `{"ingredients": []}`, []string{}, true},
		{"missing key", `{"items": ["egg"]}`, []string{}, true},
		{"no json", "I cannot see any food.", []string{}, false},
		{"malformed", `{"ingredients": ["egg",}`, []string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIngredients(tt.reply)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecognizeSendsPhotoToVisionModel(t *testing.T) {
	var gotMIME string
	var gotImage []byte
	vision := visionFunc(func(_ context.Context, mimeType string, image []byte, prompt string) (string, error) {
		gotMIME, gotImage = mimeType, image
		assert.Contains(t, prompt, `"ingredients"`)
		return `{"ingredients": ["Tomato", "onion"]}`, nil
	})
	svc := NewRecognitionService(vision, nil)

	result, err := svc.Recognize(context.Background(), Photo{Filename: "fridge.png", Data: []byte("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, []string{"tomato", "onion"}, result.Ingredients)
	assert.Empty(t, result.PhotoURL)
	assert.Equal(t, "image/jpeg", gotMIME)
	assert.Equal(t, []byte("png-bytes"), gotImage)
}

func TestRecognizeMalformedReplyYieldsNoIngredients(t *testing.T) {
	svc := NewRecognitionService(replying("no json here"), nil)

	result, err := svc.Recognize(context.Background(), Photo{MIMEType: "image/png", Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, []string{}, result.Ingredients)
}

func TestRecognizeWithoutVisionModel(t *testing.T) {
	svc := NewRecognitionService(nil, nil)

	_, err := svc.Recognize(context.Background(), Photo{Data: []byte("x")})
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestRecognizeArchivesPhoto(t *testing.T) {
	archive := archiveFunc(func(_ context.Context, photo Photo) (string, error) {
		assert.Equal(t, "image/webp", photo.MIMEType)
		return "https://bucket.example/photo.webp", nil
	})
	svc := NewRecognitionService(replying(`{"ingredients": ["egg"]}`), archive)

	result, err := svc.Recognize(context.Background(), Photo{MIMEType: "image/webp", Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example/photo.webp", result.PhotoURL)
	assert.Equal(t, []string{"egg"}, result.Ingredients)
}

func TestRecognizeIgnoresArchiveFailure(t *testing.T) {
	archive := archiveFunc(func(context.Context, Photo) (string, error) {
		return "", errors.New("bucket unreachable")
	})
	svc := NewRecognitionService(replying(`{"ingredients": ["egg"]}`), archive)

	result, err := svc.Recognize(context.Background(), Photo{Data: []byte("x")})
	require.NoError(t, err)
	assert.Empty(t, result.PhotoURL)
	assert.Equal(t, []string{"egg"}, result.Ingredients)
}

func TestRecognizeOpensBreakerAfterRepeatedFailures(t *testing.T) {
	calls := 0
	vision := visionFunc(func(context.Context, string, []byte, string) (string, error) {
		calls++
		return "", errors.New("upstream 500")
	})
	svc := NewRecognitionService(vision, nil)

	for i := 0; i < 5; i++ {
		_, err := svc.Recognize(context.Background(), Photo{Data: []byte("x")})
		require.Error(t, err)
	}

	_, err := svc.Recognize(context.Background(), Photo{Data: []byte("x")})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 5, calls)
}

func TestPhotoKey(t *testing.T) {
	assert.Regexp(t, `^ingredient-photos/[0-9a-f-]{36}\.jpg$`, photoKey(Photo{Filename: "a.JPG"}))
	assert.Regexp(t, `^ingredient-photos/[0-9a-f-]{36}\.png$`, photoKey(Photo{MIMEType: "image/png"}))
	assert.Regexp(t, `^ingredient-photos/[0-9a-f-]{36}\.jpg$`, photoKey(Photo{}))
}
