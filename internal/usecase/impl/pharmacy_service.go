package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var pharmacyOrderTransitions = map[entity.PharmacyOrderStatus][]entity.PharmacyOrderStatus{
	entity.PharmacyOrderPending:    {entity.PharmacyOrderConfirmed, entity.PharmacyOrderCancelled},
	entity.PharmacyOrderConfirmed:  {entity.PharmacyOrderDispatched, entity.PharmacyOrderCancelled},
	entity.PharmacyOrderDispatched: {entity.PharmacyOrderDelivered},
}

type pharmacyService struct {
	txManager repository.TransactionManager
	notifier  notifier
	now       func() time.Time
	logger    *slog.Logger
}

// PharmacyServiceParams holds dependencies for PharmacyService, injected by Fx.
type PharmacyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPharmacyService is the constructor for pharmacyService.
func NewPharmacyService(params PharmacyServiceParams) usecase.PharmacyUsecase {
	return &pharmacyService{
		txManager: params.TxManager,
		notifier:  newNotifier(params.Publisher, params.Logger),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *pharmacyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *pharmacyService) ListMedicines(ctx context.Context, filter entity.MedicineFilter, page entity.PageRequest) (*entity.Page[*entity.Medicine], error) {
	page = page.Normalize()
	filter.OnlyActive = true

	var result *entity.Page[*entity.Medicine]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		medicines, total, err := repoFactory.MedicineRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list medicines")
		}
		result = newPage(medicines, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	return result, nil
}

func (srv *pharmacyService) GetMedicine(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medicine *entity.Medicine
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MedicineRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrMedicineNotFound, "find medicine")
		}
		if !found.IsActive {
			return domainerrors.ErrMedicineNotFound
		}
		medicine = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get medicine")
	}

	return medicine, nil
}

func (srv *pharmacyService) SaveMedicine(ctx context.Context, actor *usecase.Actor, input usecase.MedicineInput) (*entity.Medicine, bool, error) {
	if err := validateMedicineInput(input); err != nil {
		return nil, false, err
	}

	var (
		medicine *entity.Medicine
		created  bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		medicineRepo := repoFactory.MedicineRepo()
		now := srv.now()

		existing, err := medicineRepo.FindByNameAndBatch(ctx, strings.TrimSpace(input.Name), strings.TrimSpace(input.BatchNumber))
		switch {
		case err == nil:
			applyMedicineInput(existing, input)
			existing.IsActive = true
			existing.UpdatedAt = now
			if err := medicineRepo.Update(ctx, existing); err != nil {
				return domainerrors.FromRepository(err, nil, "update medicine")
			}
			medicine = existing
		case errors.Is(err, repository.ErrNotFound):
			medicine = &entity.Medicine{ID: uuid.New(), IsActive: true, StoreID: actor.StoreID, CreatedAt: now, UpdatedAt: now}
			applyMedicineInput(medicine, input)
			if err := medicineRepo.Create(ctx, medicine); err != nil {
				return domainerrors.FromRepository(err, nil, "create medicine")
			}
			created = true
		default:
			return domainerrors.FromRepository(err, nil, "find medicine")
		}

		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to save medicine")
	}

	srv.log(ctx).Info("Medicine saved",
		slog.String("medicineID", medicine.ID.String()),
		slog.Bool("created", created),
		slog.Int("stock", medicine.Stock.Current),
	)

	return medicine, created, nil
}

func (srv *pharmacyService) UpdateMedicine(ctx context.Context, _ *usecase.Actor, id uuid.UUID, input usecase.MedicineInput) (*entity.Medicine, error) {
	if err := validateMedicineInput(input); err != nil {
		return nil, err
	}

	return srv.mutateMedicine(ctx, id, "update medicine", func(medicine *entity.Medicine) {
		applyMedicineInput(medicine, input)
	})
}

// DeleteMedicine hides the medicine from the catalogue. Orders keep referring to it.
func (srv *pharmacyService) DeleteMedicine(ctx context.Context, _ *usecase.Actor, id uuid.UUID) error {
	_, err := srv.mutateMedicine(ctx, id, "delete medicine", func(medicine *entity.Medicine) {
		medicine.IsActive = false
	})

	return err
}

func (srv *pharmacyService) mutateMedicine(ctx context.Context, id uuid.UUID, op string, change func(*entity.Medicine)) (*entity.Medicine, error) {
	var medicine *entity.Medicine
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		medicineRepo := repoFactory.MedicineRepo()

		found, err := medicineRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrMedicineNotFound, "find medicine")
		}
		change(found)
		found.UpdatedAt = srv.now()
		if err := medicineRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}
		medicine = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return medicine, nil
}

func (srv *pharmacyService) ListLowStock(ctx context.Context) ([]*entity.Medicine, error) {
	var medicines []*entity.Medicine
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MedicineRepo().ListLowStock(ctx)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list low stock medicines")
		}
		medicines = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock medicines")
	}
	if medicines == nil {
		medicines = []*entity.Medicine{}
	}

	return medicines, nil
}

func (srv *pharmacyService) UploadPrescription(ctx context.Context, actor *usecase.Actor, input usecase.PrescriptionInput) (*entity.Prescription, error) {
	if strings.TrimSpace(input.DocumentURL) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("documentUrl is required")
	}

	now := srv.now()
	prescription := &entity.Prescription{
		ID:          uuid.New(),
		UserID:      actor.UserID,
		MedicineID:  input.MedicineID,
		PetID:       input.PetID,
		DocumentURL: strings.TrimSpace(input.DocumentURL),
		Status:      entity.PrescriptionPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.MedicineRepo().FindByID(ctx, input.MedicineID); err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrMedicineNotFound, "find medicine")
		}

		return domainerrors.FromRepository(repoFactory.PrescriptionRepo().Create(ctx, prescription), nil, "create prescription")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload prescription")
	}

	return prescription, nil
}

func (srv *pharmacyService) ListMyPrescriptions(ctx context.Context, actor *usecase.Actor) ([]*entity.Prescription, error) {
	return srv.listPrescriptions(ctx, func(repo repository.PrescriptionRepository) ([]*entity.Prescription, error) {
		return repo.ListByUser(ctx, actor.UserID)
	})
}

func (srv *pharmacyService) ListPendingPrescriptions(ctx context.Context) ([]*entity.Prescription, error) {
	return srv.listPrescriptions(ctx, func(repo repository.PrescriptionRepository) ([]*entity.Prescription, error) {
		return repo.ListByStatus(ctx, entity.PrescriptionPending)
	})
}

func (srv *pharmacyService) listPrescriptions(
	ctx context.Context,
	query func(repository.PrescriptionRepository) ([]*entity.Prescription, error),
) ([]*entity.Prescription, error) {
	prescriptions := []*entity.Prescription{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := query(repoFactory.PrescriptionRepo())
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list prescriptions")
		}
		if found != nil {
			prescriptions = found
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prescriptions")
	}

	return prescriptions, nil
}

func (srv *pharmacyService) ReviewPrescription(ctx context.Context, actor *usecase.Actor, id uuid.UUID, approve bool, notes string) (*entity.Prescription, error) {
	notes = strings.TrimSpace(notes)
	if !approve && notes == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reviewNotes are required when rejecting")
	}

	var prescription *entity.Prescription
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		prescriptionRepo := repoFactory.PrescriptionRepo()

		found, err := prescriptionRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPrescriptionNotFound, "find prescription")
		}
		if found.Status != entity.PrescriptionPending {
			return domainerrors.ErrInvalidStatus.WithDetails("prescription was already " + string(found.Status))
		}

		now := srv.now()
		found.Status = entity.PrescriptionRejected
		if approve {
			found.Status = entity.PrescriptionApproved
		}
		found.ReviewNotes = notes
		found.ReviewedBy = &actor.UserID
		found.ReviewedAt = &now
		found.UpdatedAt = now
		if err := prescriptionRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, "update prescription")
		}
		prescription = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to review prescription")
	}

	srv.notifier.notify(ctx, entity.NotificationPrescriptionStatus, []uuid.UUID{prescription.UserID},
		"Prescription "+string(prescription.Status), "Your prescription has been "+string(prescription.Status),
		map[string]string{"prescriptionId": prescription.ID.String(), "status": string(prescription.Status)},
	)

	return prescription, nil
}

// PlaceOrder prices each line from the catalogue and takes the stock in the same transaction.
// Prescription-only medicines need an approved prescription of the buyer for that medicine.
func (srv *pharmacyService) PlaceOrder(ctx context.Context, actor *usecase.Actor, input usecase.PharmacyOrderInput) (*entity.PharmacyOrder, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one item is required")
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}
	}

	now := srv.now()
	order := &entity.PharmacyOrder{
		ID:              uuid.New(),
		UserID:          actor.UserID,
		Items:           make([]entity.PharmacyOrderItem, 0, len(input.Items)),
		Status:          entity.PharmacyOrderPending,
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var lowStock []*entity.Medicine
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		medicineRepo := repoFactory.MedicineRepo()

		for _, line := range input.Items {
			medicine, err := medicineRepo.FindByID(ctx, line.MedicineID)
			if err != nil {
				return domainerrors.FromRepository(err, domainerrors.ErrMedicineNotFound, "find medicine")
			}
			if !medicine.IsActive {
				return domainerrors.ErrMedicineNotFound.WithDetails(medicine.Name + " is no longer sold")
			}

			if medicine.RequiresPrescription {
				prescription, err := repoFactory.PrescriptionRepo().FindApproved(ctx, actor.UserID, medicine.ID)
				if err != nil {
					return domainerrors.FromRepository(err, domainerrors.ErrPrescriptionRequired.WithDetails(medicine.Name), "find prescription")
				}
				if order.PrescriptionID == nil {
					order.PrescriptionID = &prescription.ID
				}
			}

			if err := medicineRepo.DecrementStock(ctx, medicine.ID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails(medicine.Name)
				}

				return domainerrors.FromRepository(err, nil, "decrement stock")
			}

			medicine.Stock.Current -= line.Quantity
			if medicine.IsLowStock() {
				lowStock = append(lowStock, medicine)
			}

			total := round2(medicine.Price * float64(line.Quantity))
			order.Items = append(order.Items, entity.PharmacyOrderItem{
				MedicineID: medicine.ID,
				Name:       medicine.Name,
				Quantity:   line.Quantity,
				UnitPrice:  medicine.Price,
				Total:      total,
			})
			order.Total += total
		}
		order.Total = round2(order.Total)

		number, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixPharmacyOrder, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate order number")
		}
		order.OrderNumber = number

		return domainerrors.FromRepository(repoFactory.PharmacyOrderRepo().Create(ctx, order), nil, "create pharmacy order")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to place pharmacy order")
	}

	srv.log(ctx).Info("Pharmacy order placed",
		slog.String("orderNumber", order.OrderNumber),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.Total),
	)

	if len(lowStock) > 0 {
		srv.alertLowStock(ctx, lowStock)
	}

	return order, nil
}

// alertLowStock notifies active pharmacy staff about medicines that fell to their reorder level.
func (srv *pharmacyService) alertLowStock(ctx context.Context, medicines []*entity.Medicine) {
	active := true
	var staff []uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, _, err := repoFactory.UserRepo().List(ctx,
			entity.UserFilter{Module: entity.ModulePharmacy, IsActive: &active},
			entity.PageRequest{Page: 1, Limit: entity.MaxPageLimit},
		)
		if err != nil {
			return err
		}
		for _, user := range users {
			staff = append(staff, user.ID)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve pharmacy staff for low stock alert", errAttr(err))

		return
	}

	names := make([]string, 0, len(medicines))
	for _, medicine := range medicines {
		names = append(names, medicine.Name)
	}
	srv.log(ctx).Warn("Medicines at reorder level", slog.Any("medicines", names))

	srv.notifier.notify(ctx, entity.NotificationLowStock, staff,
		"Low stock", strings.Join(names, ", ")+" at or below reorder level",
		map[string]string{"medicines": strings.Join(names, ",")},
	)
}

func (srv *pharmacyService) ListMyOrders(ctx context.Context, actor *usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.PharmacyOrder], error) {
	return srv.listOrders(ctx, page, func(repo repository.PharmacyOrderRepository, page entity.PageRequest) ([]*entity.PharmacyOrder, int64, error) {
		return repo.ListByUser(ctx, actor.UserID, page)
	})
}

func (srv *pharmacyService) ListOrders(ctx context.Context, status entity.PharmacyOrderStatus, page entity.PageRequest) (*entity.Page[*entity.PharmacyOrder], error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	return srv.listOrders(ctx, page, func(repo repository.PharmacyOrderRepository, page entity.PageRequest) ([]*entity.PharmacyOrder, int64, error) {
		return repo.List(ctx, status, page)
	})
}

func (srv *pharmacyService) listOrders(
	ctx context.Context,
	page entity.PageRequest,
	query func(repository.PharmacyOrderRepository, entity.PageRequest) ([]*entity.PharmacyOrder, int64, error),
) (*entity.Page[*entity.PharmacyOrder], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.PharmacyOrder]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders, total, err := query(repoFactory.PharmacyOrderRepo(), page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list pharmacy orders")
		}
		result = newPage(orders, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pharmacy orders")
	}

	return result, nil
}

func (srv *pharmacyService) GetMyOrder(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.PharmacyOrder, error) {
	var order *entity.PharmacyOrder
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PharmacyOrderRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPharmacyOrderNotFound, "find pharmacy order")
		}
		if found.UserID != actor.UserID {
			return domainerrors.ErrPharmacyOrderNotFound
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pharmacy order")
	}

	return order, nil
}

// UpdateOrderStatus moves an order forward. Cancelling returns the ordered quantities to stock.
func (srv *pharmacyService) UpdateOrderStatus(ctx context.Context, _ *usecase.Actor, id uuid.UUID, status entity.PharmacyOrderStatus) (*entity.PharmacyOrder, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	var order *entity.PharmacyOrder
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.PharmacyOrderRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPharmacyOrderNotFound, "find pharmacy order")
		}
		if !canMovePharmacyOrder(found.Status, status) {
			return domainerrors.ErrInvalidStatus.WithDetails("cannot move from " + string(found.Status) + " to " + string(status))
		}

		if status == entity.PharmacyOrderCancelled {
			if err := srv.restock(ctx, repoFactory.MedicineRepo(), found.Items); err != nil {
				return err
			}
		}

		found.Status = status
		found.UpdatedAt = srv.now()
		if err := orderRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, "update pharmacy order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update pharmacy order")
	}

	srv.notifier.notify(ctx, entity.NotificationOrderStatus, []uuid.UUID{order.UserID},
		"Order "+order.OrderNumber, "Your pharmacy order is now "+string(order.Status),
		map[string]string{"orderId": order.ID.String(), "status": string(order.Status)},
	)

	return order, nil
}

func (srv *pharmacyService) restock(ctx context.Context, medicineRepo repository.MedicineRepository, items []entity.PharmacyOrderItem) error {
	for _, item := range items {
		medicine, err := medicineRepo.FindByID(ctx, item.MedicineID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return domainerrors.FromRepository(err, nil, "find medicine")
		}
		medicine.Stock.Current += item.Quantity
		medicine.UpdatedAt = srv.now()
		if err := medicineRepo.Update(ctx, medicine); err != nil {
			return domainerrors.FromRepository(err, nil, "restock medicine")
		}
	}

	return nil
}

func canMovePharmacyOrder(from, to entity.PharmacyOrderStatus) bool {
	for _, allowed := range pharmacyOrderTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

func validateMedicineInput(input usecase.MedicineInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case strings.TrimSpace(input.Category) == "":
		return domainerrors.ErrValidationFailed.WithDetails("category is required")
	case input.Price < 0 || input.CostPrice < 0:
		return domainerrors.ErrValidationFailed.WithDetails("prices cannot be negative")
	case input.Stock.Current < 0 || input.Stock.ReorderLevel < 0:
		return domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	}

	return nil
}

func applyMedicineInput(medicine *entity.Medicine, input usecase.MedicineInput) {
	medicine.Name = strings.TrimSpace(input.Name)
	medicine.Description = input.Description
	medicine.Category = strings.TrimSpace(input.Category)
	medicine.Price = input.Price
	medicine.CostPrice = input.CostPrice
	medicine.Dosage = input.Dosage
	medicine.Manufacturer = input.Manufacturer
	medicine.ExpiryDate = input.ExpiryDate
	medicine.BatchNumber = strings.TrimSpace(input.BatchNumber)
	medicine.RequiresPrescription = input.RequiresPrescription
	medicine.PetTypes = compactStrings(input.PetTypes)
	medicine.Stock = input.Stock
}
