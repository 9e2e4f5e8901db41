package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shiprecon/internal/domain"
)

// MockMappingRepo is a mock implementation of port.MappingRepository.
type MockMappingRepo struct {
	mock.Mock
}

func (m *MockMappingRepo) ReplaceAll(ctx context.Context, rules []domain.MappingRule) error {
	args := m.Called(ctx, rules)
	return args.Error(0)
}

func (m *MockMappingRepo) List(ctx context.Context, kind *domain.FileKind) ([]domain.MappingRule, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MappingRule), args.Error(1)
}
