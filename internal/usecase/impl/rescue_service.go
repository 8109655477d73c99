package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type rescueService struct {
	txManager repository.TransactionManager
	notifier  notifier
	now       func() time.Time
	logger    *slog.Logger
}

// RescueServiceParams holds dependencies for RescueService, injected by Fx.
type RescueServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRescueService is the constructor for rescueService.
func NewRescueService(params RescueServiceParams) usecase.RescueUsecase {
	return &rescueService{
		txManager: params.TxManager,
		notifier:  newNotifier(params.Publisher, params.Logger),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *rescueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *rescueService) CreateReport(ctx context.Context, actor *usecase.Actor, input usecase.RescueReportInput) (*entity.RescueReport, error) {
	if err := validateRescueInput(&input); err != nil {
		return nil, err
	}

	now := srv.now()
	report := &entity.RescueReport{
		ID:           uuid.New(),
		ReporterID:   actor.UserID,
		Species:      strings.TrimSpace(input.Species),
		Description:  strings.TrimSpace(input.Description),
		Urgency:      input.Urgency,
		Location:     input.Location,
		Photos:       compactStrings(input.Photos),
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		Status:       entity.RescueReported,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		number, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixRescue, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate report number")
		}
		report.ReportNumber = number

		return domainerrors.FromRepository(repoFactory.RescueRepo().Create(ctx, report), nil, "create rescue report")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rescue report")
	}

	srv.log(ctx).Info("Rescue reported",
		slog.String("reportNumber", report.ReportNumber),
		slog.String("urgency", string(report.Urgency)),
	)

	return report, nil
}

func validateRescueInput(input *usecase.RescueReportInput) error {
	if strings.TrimSpace(input.Species) == "" || strings.TrimSpace(input.Description) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("species and description are required")
	}
	if input.Urgency == "" {
		input.Urgency = entity.UrgencyMedium
	}
	if !slices.Contains([]entity.RescueUrgency{entity.UrgencyLow, entity.UrgencyMedium, entity.UrgencyHigh, entity.UrgencyCritical}, input.Urgency) {
		return domainerrors.ErrValidationFailed.WithDetails("urgency must be low, medium, high or critical")
	}

	return validateCoordinates(input.Location.Latitude, input.Location.Longitude)
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	return nil
}

func (srv *rescueService) ListMyReports(ctx context.Context, actor *usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.RescueReport], error) {
	return srv.ListReports(ctx, entity.RescueFilter{ReporterID: &actor.UserID}, page)
}

func (srv *rescueService) ListReports(ctx context.Context, filter entity.RescueFilter, page entity.PageRequest) (*entity.Page[*entity.RescueReport], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.RescueReport]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reports, total, err := repoFactory.RescueRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list rescue reports")
		}
		result = newPage(reports, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rescue reports")
	}

	return result, nil
}

func (srv *rescueService) GetReport(ctx context.Context, id uuid.UUID) (*entity.RescueReport, error) {
	var report *entity.RescueReport
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RescueRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrRescueNotFound, "find rescue report")
		}
		report = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get rescue report")
	}

	return report, nil
}

// Nearby pre-filters with a bounding box in the database, then keeps reports whose
// haversine distance is within the radius.
func (srv *rescueService) Nearby(ctx context.Context, query usecase.NearbyQuery) ([]*entity.RescueReport, error) {
	if err := validateCoordinates(query.Latitude, query.Longitude); err != nil {
		return nil, err
	}

	radius := query.RadiusKm
	switch {
	case radius <= 0:
		radius = entity.DefaultRescueRadiusKm
	case radius > entity.MaxRescueRadiusKm:
		radius = entity.MaxRescueRadiusKm
	}

	center := orb.Point{query.Longitude, query.Latitude}
	bound := geo.NewBoundAroundPoint(center, radius*1000)
	box := entity.BoundingBox{
		MinLat: bound.Min.Lat(),
		MaxLat: bound.Max.Lat(),
		MinLng: bound.Min.Lon(),
		MaxLng: bound.Max.Lon(),
	}

	var candidates []*entity.RescueReport
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RescueRepo().ListWithin(ctx, box)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list rescue reports within box")
		}
		candidates = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search nearby rescue reports")
	}

	nearby := make([]*entity.RescueReport, 0, len(candidates))
	for _, report := range candidates {
		point := orb.Point{report.Location.Longitude, report.Location.Latitude}
		km := geo.DistanceHaversine(center, point) / 1000
		if km > radius {
			continue
		}
		km = round2(km)
		report.DistanceKm = &km
		nearby = append(nearby, report)
	}
	slices.SortStableFunc(nearby, func(a, b *entity.RescueReport) int {
		switch {
		case *a.DistanceKm < *b.DistanceKm:
			return -1
		case *a.DistanceKm > *b.DistanceKm:
			return 1
		}

		return 0
	})

	return nearby, nil
}

// AssignReport hands a report to an active rescue staff member. Reassigning keeps the current status.
func (srv *rescueService) AssignReport(ctx context.Context, actor *usecase.Actor, id, assigneeID uuid.UUID) (*entity.RescueReport, error) {
	report, err := srv.mutate(ctx, id, "assign rescue report", func(repoFactory repository.RepositoryFactory, report *entity.RescueReport) error {
		assignee, err := repoFactory.UserRepo().FindByID(ctx, assigneeID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find assignee")
		}
		if !assignee.IsActive || (assignee.Module != entity.ModuleRescue && !assignee.IsSuperAdmin()) {
			return domainerrors.ErrValidationFailed.WithDetails("assignee must be active rescue staff")
		}

		switch report.Status {
		case entity.RescueReported:
			report.Status = entity.RescueAssigned
		case entity.RescueAssigned, entity.RescueInProgress:
		default:
			return domainerrors.ErrInvalidStatus.WithDetails("report is " + string(report.Status))
		}

		report.AssignedTo = &assignee.ID
		report.Notes = append(report.Notes, entity.RescueNote{
			AuthorID: actor.UserID,
			Text:     "Assigned to " + assignee.Name,
			At:       srv.now(),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifier.notify(ctx, entity.NotificationRescueAssigned, []uuid.UUID{assigneeID},
		"Rescue "+report.ReportNumber, string(report.Urgency)+" urgency "+report.Species+" rescue assigned to you",
		map[string]string{"reportId": report.ID.String(), "urgency": string(report.Urgency)},
	)

	return report, nil
}

func (srv *rescueService) UpdateStatus(ctx context.Context, actor *usecase.Actor, id uuid.UUID, status entity.RescueStatus, note string) (*entity.RescueReport, error) {
	return srv.mutate(ctx, id, "update rescue status", func(_ repository.RepositoryFactory, report *entity.RescueReport) error {
		if err := checkRescueWorker(actor, report); err != nil {
			return err
		}
		if !report.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatus.WithDetails("cannot move from " + string(report.Status) + " to " + string(status))
		}
		if status == entity.RescueAssigned && report.AssignedTo == nil {
			return domainerrors.ErrValidationFailed.WithDetails("use assign to pick a rescuer")
		}

		now := srv.now()
		report.Status = status
		if status == entity.RescueRescued {
			report.RescuedAt = &now
		}
		if note = strings.TrimSpace(note); note != "" {
			report.Notes = append(report.Notes, entity.RescueNote{AuthorID: actor.UserID, Text: note, At: now})
		}

		return nil
	})
}

func (srv *rescueService) AddNote(ctx context.Context, actor *usecase.Actor, id uuid.UUID, text string) (*entity.RescueReport, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("note text is required")
	}

	return srv.mutate(ctx, id, "add rescue note", func(_ repository.RepositoryFactory, report *entity.RescueReport) error {
		if err := checkRescueWorker(actor, report); err != nil {
			return err
		}
		report.Notes = append(report.Notes, entity.RescueNote{AuthorID: actor.UserID, Text: text, At: srv.now()})

		return nil
	})
}

// checkRescueWorker limits rescue workers to the reports assigned to them.
func checkRescueWorker(actor *usecase.Actor, report *entity.RescueReport) error {
	if actor.Role != entity.ModuleRoleName(entity.ModuleRescue, entity.StaffWorker) {
		return nil
	}
	if report.AssignedTo == nil || *report.AssignedTo != actor.UserID {
		return domainerrors.ErrForbidden.WithDetails("report is assigned to someone else")
	}

	return nil
}

func (srv *rescueService) mutate(
	ctx context.Context,
	id uuid.UUID,
	op string,
	change func(repository.RepositoryFactory, *entity.RescueReport) error,
) (*entity.RescueReport, error) {
	var report *entity.RescueReport
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rescueRepo := repoFactory.RescueRepo()

		found, err := rescueRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrRescueNotFound, "find rescue report")
		}
		if err := change(repoFactory, found); err != nil {
			return err
		}

		found.UpdatedAt = srv.now()
		if err := rescueRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}
		report = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return report, nil
}
