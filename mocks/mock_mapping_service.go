package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shiprecon/internal/domain"
)

// MockMappingService is a mock implementation of service.MappingService.
type MockMappingService struct {
	mock.Mock
}

func (m *MockMappingService) Replace(ctx context.Context, columns []string, rows []map[string]string) (int, error) {
	args := m.Called(ctx, columns, rows)
	return args.Int(0), args.Error(1)
}

func (m *MockMappingService) List(ctx context.Context, kind *domain.FileKind) ([]domain.MappingRule, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MappingRule), args.Error(1)
}

func (m *MockMappingService) HasValidMappings(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockMappingService) RulesFor(ctx context.Context, kind domain.FileKind) ([]domain.MappingRule, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MappingRule), args.Error(1)
}
