package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// dashboardConcurrency caps the number of counting transactions open at once.
const dashboardConcurrency = 4

const usersCounter = "users"

type counter struct {
	module string
	metric string
	count  func(ctx context.Context, repoFactory repository.RepositoryFactory) (int64, error)
}

type dashboardService struct {
	txManager repository.TransactionManager
	counters  []counter
	now       func() time.Time
	logger    *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		txManager: params.TxManager,
		counters:  dashboardCounters(),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func dashboardCounters() []counter {
	adoption := string(entity.ModuleAdoption)
	petshop := string(entity.ModulePetShop)
	vet := string(entity.ModuleVeterinary)
	pharmacy := string(entity.ModulePharmacy)
	rescue := string(entity.ModuleRescue)
	shelter := string(entity.ModuleShelter)
	care := string(entity.ModuleTemporaryCare)
	shop := string(entity.ModuleEcommerce)

	return []counter{
		{usersCounter, "total", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			_, total, err := rf.UserRepo().List(ctx, entity.UserFilter{}, entity.PageRequest{Page: 1, Limit: 1})
			return total, err
		}},
		{adoption, "pets", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.AdoptionPetRepo().Count(ctx, entity.AdoptionPetFilter{OnlyActive: true})
		}},
		{adoption, "available", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.AdoptionPetRepo().Count(ctx, entity.AdoptionPetFilter{OnlyActive: true, Status: entity.PetAvailable})
		}},
		{petshop, "inventory", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.InventoryRepo().Count(ctx, entity.InventoryFilter{})
		}},
		{petshop, "inStock", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.InventoryRepo().Count(ctx, entity.InventoryFilter{Status: entity.InventoryInStock})
		}},
		{vet, "appointments", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.AppointmentRepo().Count(ctx, entity.AppointmentFilter{})
		}},
		{vet, "pendingApproval", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.AppointmentRepo().Count(ctx, entity.AppointmentFilter{Status: entity.AppointmentPendingApproval})
		}},
		{pharmacy, "medicines", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			_, total, err := rf.MedicineRepo().List(ctx, entity.MedicineFilter{OnlyActive: true}, entity.PageRequest{Page: 1, Limit: 1})
			return total, err
		}},
		{pharmacy, "lowStock", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			low, err := rf.MedicineRepo().ListLowStock(ctx)
			return int64(len(low)), err
		}},
		{pharmacy, "pendingOrders", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			_, total, err := rf.PharmacyOrderRepo().List(ctx, entity.PharmacyOrderPending, entity.PageRequest{Page: 1, Limit: 1})
			return total, err
		}},
		{rescue, "reports", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.RescueRepo().Count(ctx, entity.RescueFilter{})
		}},
		{rescue, "unassigned", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.RescueRepo().Count(ctx, entity.RescueFilter{Status: entity.RescueReported})
		}},
		{shelter, "animals", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.ShelterRepo().Count(ctx, entity.ShelterFilter{})
		}},
		{shelter, "readyForAdoption", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.ShelterRepo().Count(ctx, entity.ShelterFilter{Status: entity.ShelterReadyForAdoption})
		}},
		{care, "bookings", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.CareBookingRepo().Count(ctx, entity.CareBookingFilter{})
		}},
		{care, "activeStays", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.CareBookingRepo().Count(ctx, entity.CareBookingFilter{Status: entity.CareInProgress})
		}},
		{shop, "products", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.ProductRepo().Count(ctx, entity.ProductFilter{})
		}},
		{shop, "orders", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.OrderRepo().Count(ctx, entity.OrderFilter{})
		}},
		{shop, "pendingOrders", func(ctx context.Context, rf repository.RepositoryFactory) (int64, error) {
			return rf.OrderRepo().Count(ctx, entity.OrderFilter{Status: entity.OrderPending})
		}},
	}
}

// Stats runs every counter concurrently, each in its own read transaction.
// The first failure cancels the rest.
func (srv *dashboardService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	values := make([]int64, len(srv.counters))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dashboardConcurrency)
	for idx, c := range srv.counters {
		g.Go(func() error {
			return srv.txManager.Execute(gctx, func(repoFactory repository.RepositoryFactory) error {
				n, err := c.count(gctx, repoFactory)
				if err != nil {
					return domainerrors.FromRepository(err, nil, "count "+c.module+" "+c.metric)
				}
				values[idx] = n

				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to build dashboard")
	}

	stats := &usecase.DashboardStats{
		Modules:     make(map[string]map[string]int64),
		GeneratedAt: srv.now().UTC().Format(time.RFC3339),
	}
	for idx, c := range srv.counters {
		if c.module == usersCounter {
			stats.TotalUsers = values[idx]
			continue
		}
		if stats.Modules[c.module] == nil {
			stats.Modules[c.module] = make(map[string]int64)
		}
		stats.Modules[c.module][c.metric] = values[idx]
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Dashboard built", slog.Int("counters", len(srv.counters)))

	return stats, nil
}
