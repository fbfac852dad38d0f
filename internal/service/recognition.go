package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/option"

	"github.com/smartchef/backend/internal/logging"
	"github.com/smartchef/backend/internal/matching"
	"github.com/smartchef/backend/internal/metrics"
)

var ErrAPIKeyMissing = errors.New("API key not configured")

const recognitionPrompt = `Analyze this food image and extract a list of visible ingredients.
Return ONLY a JSON object with an "ingredients" array of lowercase ingredient names (strings).
Example: {"ingredients": ["tomato", "onion", "garlic", "olive oil"]}
If no food is detected, return {"ingredients": []}.
Be specific and list individual ingredients, not dishes.`

// VisionModel describes an image and returns the model's raw text reply.
type VisionModel interface {
	Describe(ctx context.Context, mimeType string, image []byte, prompt string) (string, error)
}

// GeminiVision calls a Gemini multimodal model.
type GeminiVision struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiVision(ctx context.Context, apiKey, modelName string) (*GeminiVision, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiVision{client: client, model: client.GenerativeModel(modelName)}, nil
}

func (g *GeminiVision) Describe(ctx context.Context, mimeType string, image []byte, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Blob{MIMEType: mimeType, Data: image}, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	return sb.String(), nil
}

func (g *GeminiVision) Close() error {
	return g.client.Close()
}

// Photo is an uploaded ingredient photo.
type Photo struct {
	Filename string
	MIMEType string
	Data     []byte
}

// RecognitionResult lists the recognized ingredients and, when the photo
// was archived, a link to it.
type RecognitionResult struct {
	Ingredients []string
	PhotoURL    string
}

// RecognitionService extracts ingredient names from a photo.
type RecognitionService struct {
	vision  VisionModel
	archive PhotoArchive
	breaker *gobreaker.CircuitBreaker[string]
	timeout time.Duration
}

// NewRecognitionService wires the vision model. A nil vision model makes
// every call fail with ErrAPIKeyMissing; a nil archive skips archiving.
func NewRecognitionService(vision VisionModel, archive PhotoArchive) *RecognitionService {
	return &RecognitionService{
		vision:  vision,
		archive: archive,
		breaker: newVisionBreaker("gemini-vision"),
		timeout: 30 * time.Second,
	}
}

func newVisionBreaker(name string) *gobreaker.CircuitBreaker[string] {
	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
	})
}

// Recognize archives the photo when an archive is configured, then asks
// the vision model for the ingredients it shows. A reply without a JSON
// object, or with malformed JSON, yields no ingredients.
func (s *RecognitionService) Recognize(ctx context.Context, photo Photo) (*RecognitionResult, error) {
	if s.vision == nil {
		metrics.RecognitionRequests.WithLabelValues("unavailable").Inc()
		return nil, ErrAPIKeyMissing
	}
	if photo.MIMEType == "" {
		photo.MIMEType = "image/jpeg"
	}

	result := &RecognitionResult{}
	if s.archive != nil {
		url, err := s.archive.Store(ctx, photo)
		if err != nil {
			logging.Warn().Err(err).Msg("failed to archive ingredient photo")
		} else {
			result.PhotoURL = url
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.breaker.Execute(func() (string, error) {
		return s.vision.Describe(ctx, photo.MIMEType, photo.Data, recognitionPrompt)
	})
	if err != nil {
		metrics.RecognitionRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	ingredients, ok := ParseIngredients(text)
	switch {
	case !ok:
		logging.Warn().Str("reply", truncate(text, 200)).Msg("no ingredient JSON in vision reply")
		metrics.RecognitionRequests.WithLabelValues("malformed").Inc()
	case len(ingredients) == 0:
		metrics.RecognitionRequests.WithLabelValues("empty").Inc()
	default:
		metrics.RecognitionRequests.WithLabelValues("ok").Inc()
	}
	result.Ingredients = ingredients
	return result, nil
}

var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// ParseIngredients extracts the "ingredients" array from the outermost JSON
// object in a model reply. Names are lowercased, trimmed and deduplicated;
// empty and non-string entries are dropped. ok is false when the reply has
// no parsable JSON object. The returned slice is never nil.
func ParseIngredients(reply string) ([]string, bool) {
	raw := jsonObject.FindString(reply)
	if raw == "" {
		return []string{}, false
	}

	var parsed struct {
		Ingredients []interface{} `json:"ingredients"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []string{}, false
	}

	names := make([]string, 0, len(parsed.Ingredients))
	for _, v := range parsed.Ingredients {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	return matching.NormalizeIngredients(names), true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
