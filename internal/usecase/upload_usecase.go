package usecase

import (
	"context"
	"io"

	"petwelfare/internal/domain/service"
)

// UploadInput is a single multipart file.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadUsecase stores user uploads under module and role scoped keys.
type UploadUsecase interface {
	Upload(ctx context.Context, actor *Actor, module string, input UploadInput) (*service.StoredFile, error)
}

// DashboardStats is the super admin overview. Modules maps a module key to named counters.
type DashboardStats struct {
	TotalUsers  int64                       `json:"totalUsers"`
	Modules     map[string]map[string]int64 `json:"modules"`
	GeneratedAt string                      `json:"generatedAt"`
}

// DashboardUsecase aggregates platform wide counters.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
