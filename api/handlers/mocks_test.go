package handlers

import (
	"context"

	"leadscout-api/core/domain"
)

// mockEnrichmentService is a mock implementation of the EnrichmentService interface
type mockEnrichmentService struct {
	searchCompaniesFunc func(ctx context.Context, query domain.SearchQuery) ([]domain.Company, error)
}

func (m *mockEnrichmentService) SearchCompanies(ctx context.Context, query domain.SearchQuery) ([]domain.Company, error) {
	if m.searchCompaniesFunc != nil {
		return m.searchCompaniesFunc(ctx, query)
	}
	return []domain.Company{}, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
