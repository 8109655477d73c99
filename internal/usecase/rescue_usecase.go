package usecase

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// RescueReportInput reports an animal in distress.
type RescueReportInput struct {
	Species      string
	Description  string
	Urgency      entity.RescueUrgency
	Location     entity.GeoPoint
	Photos       []string
	ContactPhone string
}

// NearbyQuery searches open reports around a point. A zero RadiusKm uses the default radius.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// RescueUsecase covers rescue reports from intake to closure.
type RescueUsecase interface {
	CreateReport(ctx context.Context, actor *Actor, input RescueReportInput) (*entity.RescueReport, error)
	ListMyReports(ctx context.Context, actor *Actor, page entity.PageRequest) (*entity.Page[*entity.RescueReport], error)
	ListReports(ctx context.Context, filter entity.RescueFilter, page entity.PageRequest) (*entity.Page[*entity.RescueReport], error)
	GetReport(ctx context.Context, id uuid.UUID) (*entity.RescueReport, error)

	// Nearby returns open reports within the radius, closest first.
	Nearby(ctx context.Context, query NearbyQuery) ([]*entity.RescueReport, error)

	AssignReport(ctx context.Context, actor *Actor, id, assigneeID uuid.UUID) (*entity.RescueReport, error)
	UpdateStatus(ctx context.Context, actor *Actor, id uuid.UUID, status entity.RescueStatus, note string) (*entity.RescueReport, error)
	AddNote(ctx context.Context, actor *Actor, id uuid.UUID, text string) (*entity.RescueReport, error)
}
