package services

import (
	"context"

	health "github.com/MohmedAnas/RB-WEB-sub000/gen/health"
)

// HealthService implements the health service
type HealthService struct{}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{}
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) (*health.Healthresult, error) {
	status := "healthy"
	service := "RB Infotech API"
	return &health.Healthresult{
		Status:  &status,
		Service: &service,
	}, nil
}
