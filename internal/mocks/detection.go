package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/pantry-match/backend/internal/service"
)

// MockDetectionService is a mock implementation of the detection service
type MockDetectionService struct {
	mock.Mock
}

// DetectIngredients mocks the DetectIngredients method
func (m *MockDetectionService) DetectIngredients(ctx context.Context, image string) (*service.DetectionResult, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DetectionResult), args.Error(1)
}
