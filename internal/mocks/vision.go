package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockVisionModel is a mock implementation of service.VisionModel
type MockVisionModel struct {
	mock.Mock
}

func (m *MockVisionModel) Describe(ctx context.Context, mimeType string, image []byte, prompt string) (string, error) {
	args := m.Called(ctx, mimeType, image, prompt)
	return args.String(0), args.Error(1)
}
