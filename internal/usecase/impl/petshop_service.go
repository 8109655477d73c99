package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"petwelfare/config"
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

type petShopService struct {
	txManager  repository.TransactionManager
	qrCode     service.QRCodeService
	notifier   notifier
	otpTTL     time.Duration
	otpHistory int
	now        func() time.Time
	logger     *slog.Logger
}

// PetShopServiceParams holds dependencies for PetShopService, injected by Fx.
type PetShopServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPetShopService is the constructor for petShopService.
func NewPetShopService(params PetShopServiceParams) usecase.PetShopUsecase {
	srv := &petShopService{
		txManager:  params.TxManager,
		qrCode:     params.QRCode,
		notifier:   newNotifier(params.Publisher, params.Logger),
		otpTTL:     24 * time.Hour,
		otpHistory: 10,
		now:        time.Now,
		logger:     params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.HandoverOTPTTL > 0 {
			srv.otpTTL = params.Config.Auth.HandoverOTPTTL
		}
		if params.Config.Auth.OTPHistoryLimit > 0 {
			srv.otpHistory = params.Config.Auth.OTPHistoryLimit
		}
	}

	return srv
}

func (srv *petShopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *petShopService) ListItems(ctx context.Context, filter entity.InventoryFilter, page entity.PageRequest) (*entity.Page[*entity.ShopInventoryItem], error) {
	filter.Status = entity.InventoryInStock

	return srv.listItems(ctx, filter, page)
}

func (srv *petShopService) GetItem(ctx context.Context, id uuid.UUID) (*entity.ShopInventoryItem, error) {
	item, err := srv.findItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status != entity.InventoryInStock {
		return nil, domainerrors.ErrItemNotAvailable.WithDetails("current status: " + string(item.Status))
	}

	return item, nil
}

func (srv *petShopService) ListStoreItems(ctx context.Context, actor *usecase.Actor, filter entity.InventoryFilter, page entity.PageRequest) (*entity.Page[*entity.ShopInventoryItem], error) {
	if scope := actor.StoreScope(entity.ModulePetShop); scope != "" {
		filter.StoreID = scope
	}

	return srv.listItems(ctx, filter, page)
}

func (srv *petShopService) GetStoreItem(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.ShopInventoryItem, error) {
	item, err := srv.findItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessStore(entity.ModulePetShop, item.StoreID) {
		return nil, domainerrors.ErrItemNotFound
	}

	return item, nil
}

func (srv *petShopService) CreateItem(ctx context.Context, actor *usecase.Actor, input usecase.InventoryItemInput) (*entity.ShopInventoryItem, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	storeID := actor.StoreScope(entity.ModulePetShop)
	if storeID == "" {
		storeID = strings.TrimSpace(input.StoreID)
	}
	if storeID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("register a store before listing pets")
	}

	now := srv.now()
	item := &entity.ShopInventoryItem{
		ID:        uuid.New(),
		Status:    entity.InventoryInStock,
		StoreID:   storeID,
		CreatedBy: actor.UserID,
		CreatedAt: now,
	}
	applyItemInput(item, input, now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		code, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixPetCode, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate pet code")
		}
		item.PetCode = code

		return domainerrors.FromRepository(repoFactory.InventoryRepo().Create(ctx, item), nil, "create inventory item")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory item")
	}

	srv.log(ctx).Info("Inventory item created", slog.String("petCode", item.PetCode), slog.String("storeID", storeID))

	return item, nil
}

func (srv *petShopService) UpdateItem(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.InventoryItemInput) (*entity.ShopInventoryItem, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	var updated *entity.ShopInventoryItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.InventoryRepo()

		item, err := itemRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrItemNotFound, "find inventory item")
		}
		if !actor.CanAccessStore(entity.ModulePetShop, item.StoreID) {
			return domainerrors.ErrItemNotFound
		}
		if item.Status == entity.InventorySold {
			return domainerrors.ErrInvalidStatus.WithDetails("sold items cannot be edited")
		}

		applyItemInput(item, input, srv.now())
		if err := itemRepo.Update(ctx, item); err != nil {
			return domainerrors.FromRepository(err, nil, "update inventory item")
		}
		updated = item

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update inventory item")
	}

	return updated, nil
}

func (srv *petShopService) DeleteItem(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.InventoryRepo()

		item, err := itemRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrItemNotFound, "find inventory item")
		}
		if !actor.CanAccessStore(entity.ModulePetShop, item.StoreID) {
			return domainerrors.ErrItemNotFound
		}
		if item.Status == entity.InventoryReserved {
			return domainerrors.ErrInvalidStatus.WithDetails("item has an open reservation")
		}

		return domainerrors.FromRepository(itemRepo.Delete(ctx, id), domainerrors.ErrItemNotFound, "delete inventory item")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete inventory item")
	}

	return nil
}

func (srv *petShopService) CreateReservation(ctx context.Context, actor *usecase.Actor, input usecase.ReservationInput) (*entity.PetReservation, error) {
	now := srv.now()
	reservation := &entity.PetReservation{
		ID:          uuid.New(),
		ItemID:      input.ItemID,
		UserID:      actor.UserID,
		ContactInfo: input.ContactInfo,
		Notes:       input.Notes,
		Status:      entity.ReservationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if reservation.ContactInfo.Email == "" {
		reservation.ContactInfo.Email = actor.Email
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.InventoryRepo()

		item, err := itemRepo.FindByID(ctx, input.ItemID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrItemNotFound, "find inventory item")
		}
		if item.Status != entity.InventoryInStock {
			return domainerrors.ErrItemNotAvailable.WithDetails("current status: " + string(item.Status))
		}

		code, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixReservation, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate reservation code")
		}
		reservation.ReservationCode = code
		reservation.StoreID = item.StoreID

		item.Status = entity.InventoryReserved
		item.UpdatedAt = now
		if err := itemRepo.Update(ctx, item); err != nil {
			return domainerrors.FromRepository(err, nil, "reserve inventory item")
		}

		return domainerrors.FromRepository(repoFactory.ReservationRepo().Create(ctx, reservation), nil, "create reservation")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reservation")
	}

	srv.log(ctx).Info("Reservation created", slog.String("code", reservation.ReservationCode))

	return reservation, nil
}

func (srv *petShopService) ListMyReservations(ctx context.Context, actor *usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.PetReservation], error) {
	return srv.listReservations(ctx, entity.ReservationFilter{UserID: &actor.UserID}, page)
}

func (srv *petShopService) GetMyReservation(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*usecase.ReservationView, error) {
	view, err := srv.reservationView(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor.UserID {
		return nil, domainerrors.ErrReservationNotFound
	}

	return view, nil
}

func (srv *petShopService) CancelReservation(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.PetReservation, error) {
	return srv.transition(ctx, id, "cancel reservation", func(_ repository.RepositoryFactory, r *entity.PetReservation, item *entity.ShopInventoryItem) error {
		if r.UserID != actor.UserID {
			return domainerrors.ErrReservationNotFound
		}
		if r.Status != entity.ReservationPending && r.Status != entity.ReservationApproved {
			return domainerrors.ErrInvalidStatus.WithDetails("only pending or approved reservations can be cancelled")
		}

		r.Status = entity.ReservationCancelled
		restock(item)

		return nil
	})
}

func (srv *petShopService) ListReservations(ctx context.Context, actor *usecase.Actor, filter entity.ReservationFilter, page entity.PageRequest) (*entity.Page[*entity.PetReservation], error) {
	if scope := actor.StoreScope(entity.ModulePetShop); scope != "" {
		filter.StoreID = scope
	}

	return srv.listReservations(ctx, filter, page)
}

func (srv *petShopService) GetReservation(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*usecase.ReservationView, error) {
	view, err := srv.reservationView(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessStore(entity.ModulePetShop, view.StoreID) {
		return nil, domainerrors.ErrReservationNotFound
	}

	return view, nil
}

func (srv *petShopService) ApproveReservation(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.PetReservation, error) {
	r, err := srv.managerTransition(ctx, actor, id, "approve reservation", func(_ repository.RepositoryFactory, r *entity.PetReservation, _ *entity.ShopInventoryItem) error {
		if r.Status != entity.ReservationPending {
			return domainerrors.ErrInvalidStatus.WithDetails("reservation is not pending")
		}
		r.Status = entity.ReservationApproved

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.notifyBuyer(ctx, r, "Reservation approved", "Reservation "+r.ReservationCode+" was approved. Please complete the payment.", nil)

	return r, nil
}

func (srv *petShopService) RejectReservation(ctx context.Context, actor *usecase.Actor, id uuid.UUID, reason string) (*entity.PetReservation, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rejection reason is required")
	}

	r, err := srv.managerTransition(ctx, actor, id, "reject reservation", func(_ repository.RepositoryFactory, r *entity.PetReservation, item *entity.ShopInventoryItem) error {
		if r.Status != entity.ReservationPending && r.Status != entity.ReservationApproved {
			return domainerrors.ErrInvalidStatus.WithDetails("reservation is " + string(r.Status))
		}
		r.Status = entity.ReservationRejected
		r.RejectionReason = reason
		restock(item)

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.notifyBuyer(ctx, r, "Reservation rejected", reason, nil)

	return r, nil
}

func (srv *petShopService) RecordPayment(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.PaymentInput) (*entity.PetReservation, error) {
	if input.Amount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount cannot be negative")
	}

	return srv.managerTransition(ctx, actor, id, "record payment", func(_ repository.RepositoryFactory, r *entity.PetReservation, item *entity.ShopInventoryItem) error {
		if r.Status != entity.ReservationApproved {
			return domainerrors.ErrInvalidStatus.WithDetails("reservation must be approved before payment")
		}

		amount := input.Amount
		if amount == 0 && item != nil {
			amount = item.EffectivePrice()
		}
		now := srv.now()
		r.Payment = &entity.ReservationPayment{
			Amount:    amount,
			Method:    input.Method,
			Reference: strings.TrimSpace(input.Reference),
			PaidAt:    &now,
		}
		r.Status = entity.ReservationPaid

		return nil
	})
}

func (srv *petShopService) ScheduleHandover(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.HandoverInput) (*entity.PetReservation, error) {
	if input.ScheduledAt.IsZero() || strings.TrimSpace(input.Location) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scheduledAt and location are required")
	}

	var otp string
	r, err := srv.managerTransition(ctx, actor, id, "schedule handover", func(_ repository.RepositoryFactory, r *entity.PetReservation, _ *entity.ShopInventoryItem) error {
		if r.Status != entity.ReservationPaid && r.Status != entity.ReservationReadyPickup {
			return domainerrors.ErrInvalidStatus.WithDetails("reservation must be paid before scheduling pickup")
		}

		scheduledAt := input.ScheduledAt
		r.Handover.ScheduledAt = &scheduledAt
		r.Handover.Location = strings.TrimSpace(input.Location)
		r.Handover.Notes = input.Notes
		r.Handover.Status = entity.HandoverScheduled

		code, err := srv.appendOTP(r)
		if err != nil {
			return err
		}
		otp = code
		r.Status = entity.ReservationReadyPickup

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.notifyBuyer(ctx, r, "Pickup scheduled", "Show this code at pickup: "+otp, map[string]string{"otp": otp})

	return r, nil
}

func (srv *petShopService) RegenerateOTP(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.PetReservation, error) {
	var otp string
	r, err := srv.managerTransition(ctx, actor, id, "regenerate handover otp", func(_ repository.RepositoryFactory, r *entity.PetReservation, _ *entity.ShopInventoryItem) error {
		if r.Status != entity.ReservationReadyPickup {
			return domainerrors.ErrInvalidStatus.WithDetails("reservation is not ready for pickup")
		}

		code, err := srv.appendOTP(r)
		if err != nil {
			return err
		}
		otp = code

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.notifyBuyer(ctx, r, "New pickup code", "Your new pickup code is "+otp, map[string]string{"otp": otp})

	return r, nil
}

// CompleteHandover validates otp inside the transaction. A wrong code leaves the reservation untouched.
func (srv *petShopService) CompleteHandover(ctx context.Context, actor *usecase.Actor, id uuid.UUID, otp string) (*entity.PetReservation, error) {
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return nil, domainerrors.ErrOTPInvalid.WithDetails("otp is required")
	}

	r, err := srv.managerTransition(ctx, actor, id, "complete handover", func(repoFactory repository.RepositoryFactory, r *entity.PetReservation, item *entity.ShopInventoryItem) error {
		if r.Status != entity.ReservationReadyPickup {
			return domainerrors.ErrInvalidStatus.WithDetails("reservation is not ready for pickup")
		}

		now := srv.now()
		if err := redeemHandoverOTP(&r.Handover, otp, now); err != nil {
			return err
		}
		r.Status = entity.ReservationAtOwner

		if item == nil {
			return nil
		}
		item.Status = entity.InventorySold
		item.BuyerID = &r.UserID
		item.SoldAt = &now

		_, err := registerTransferredPet(ctx, repoFactory, shopPetTransfer(r, item, now), now)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Pet handed over",
		slog.String("code", r.ReservationCode),
		slog.String("by", actor.UserID.String()),
	)
	srv.notifyBuyer(ctx, r, "Welcome home", "Reservation "+r.ReservationCode+" is complete.", nil)

	return r, nil
}

func (srv *petShopService) HandoverQR(ctx context.Context, actor *usecase.Actor, id uuid.UUID) ([]byte, error) {
	view, err := srv.reservationView(ctx, id)
	if err != nil {
		return nil, err
	}

	isBuyer := view.UserID == actor.UserID
	isStaff := actor.Module == entity.ModulePetShop || actor.IsSuperAdmin()
	if !isBuyer && !(isStaff && actor.CanAccessStore(entity.ModulePetShop, view.StoreID)) {
		return nil, domainerrors.ErrReservationNotFound
	}

	png, err := srv.qrCode.Encode(view.ReservationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render handover qr code")
	}

	return png, nil
}

// shopPetTransfer carries a sold item into the registry under its shop pet code.
func shopPetTransfer(r *entity.PetReservation, item *entity.ShopInventoryItem, now time.Time) petTransfer {
	price := item.EffectivePrice()
	if r.Payment != nil && r.Payment.Amount > 0 {
		price = r.Payment.Amount
	}

	template := entity.Pet{
		Name:    item.Name,
		Species: item.Species,
		Breed:   item.Breed,
		Gender:  item.Gender,
		Color:   item.Color,
		Images:  item.Images,
	}
	if item.AgeMonths > 0 {
		dob := now.AddDate(0, -item.AgeMonths, 0)
		template.DateOfBirth = &dob
	}
	ref := item.ID
	template.SourceRef = &ref

	return petTransfer{
		code:     item.PetCode,
		template: template,
		newOwner: r.UserID,
		kind:     entity.PetSourcePetShop,
		price:    round2(price),
		reason:   "Purchased with reservation " + r.ReservationCode,
	}
}

func (srv *petShopService) appendOTP(r *entity.PetReservation) (string, error) {
	return issueHandoverOTP(&r.Handover, srv.now(), srv.otpTTL, srv.otpHistory)
}

func (srv *petShopService) notifyBuyer(ctx context.Context, r *entity.PetReservation, title, body string, extra map[string]string) {
	kind := entity.NotificationReservationStatus
	data := map[string]string{
		"reservationId":   r.ID.String(),
		"reservationCode": r.ReservationCode,
		"status":          string(r.Status),
	}
	for k, v := range extra {
		data[k] = v
	}
	if _, ok := extra["otp"]; ok {
		kind = entity.NotificationHandoverOTP
	}

	srv.notifier.notify(ctx, kind, []uuid.UUID{r.UserID}, title, body, data)
}

func (srv *petShopService) listItems(ctx context.Context, filter entity.InventoryFilter, page entity.PageRequest) (*entity.Page[*entity.ShopInventoryItem], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.ShopInventoryItem]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.InventoryRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list inventory")
		}
		result = newPage(items, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	return result, nil
}

func (srv *petShopService) findItem(ctx context.Context, id uuid.UUID) (*entity.ShopInventoryItem, error) {
	var item *entity.ShopInventoryItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.InventoryRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrItemNotFound, "find inventory item")
		}
		item = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get inventory item")
	}

	return item, nil
}

func (srv *petShopService) listReservations(ctx context.Context, filter entity.ReservationFilter, page entity.PageRequest) (*entity.Page[*entity.PetReservation], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.PetReservation]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservations, total, err := repoFactory.ReservationRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list reservations")
		}
		result = newPage(reservations, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return result, nil
}

func (srv *petShopService) reservationView(ctx context.Context, id uuid.UUID) (*usecase.ReservationView, error) {
	var view *usecase.ReservationView
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		r, err := repoFactory.ReservationRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrReservationNotFound, "find reservation")
		}
		view = &usecase.ReservationView{PetReservation: r}

		item, err := repoFactory.InventoryRepo().FindByID(ctx, r.ItemID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return domainerrors.FromRepository(err, nil, "find inventory item")
		}
		view.Item = item

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reservation")
	}

	return view, nil
}

type reservationChange func(repository.RepositoryFactory, *entity.PetReservation, *entity.ShopInventoryItem) error

func (srv *petShopService) managerTransition(ctx context.Context, actor *usecase.Actor, id uuid.UUID, op string, change reservationChange) (*entity.PetReservation, error) {
	return srv.transition(ctx, id, op, func(repoFactory repository.RepositoryFactory, r *entity.PetReservation, item *entity.ShopInventoryItem) error {
		if !actor.CanAccessStore(entity.ModulePetShop, r.StoreID) {
			return domainerrors.ErrReservationNotFound
		}

		return change(repoFactory, r, item)
	})
}

// transition loads a reservation and its item, applies change and saves both.
func (srv *petShopService) transition(ctx context.Context, id uuid.UUID, op string, change reservationChange) (*entity.PetReservation, error) {
	var updated *entity.PetReservation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.ReservationRepo()
		itemRepo := repoFactory.InventoryRepo()

		r, err := reservationRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrReservationNotFound, "find reservation")
		}

		item, err := itemRepo.FindByID(ctx, r.ItemID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return domainerrors.FromRepository(err, nil, "find inventory item")
		}
		var itemBefore entity.InventoryStatus
		if item != nil {
			itemBefore = item.Status
		}

		if err := change(repoFactory, r, item); err != nil {
			return err
		}

		now := srv.now()
		r.UpdatedAt = now
		if err := reservationRepo.Update(ctx, r); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}
		if item != nil && item.Status != itemBefore {
			item.UpdatedAt = now
			if err := itemRepo.Update(ctx, item); err != nil {
				return domainerrors.FromRepository(err, nil, op)
			}
		}
		updated = r

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return updated, nil
}

// restock puts a reserved item back on sale.
func restock(item *entity.ShopInventoryItem) {
	if item != nil && item.Status == entity.InventoryReserved {
		item.Status = entity.InventoryInStock
	}
}

func validateItemInput(input usecase.InventoryItemInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Species) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and species are required")
	}
	if input.Price < 0 || input.DiscountPrice < 0 || input.AgeMonths < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price, discountPrice and ageMonths cannot be negative")
	}
	if input.DiscountPrice > 0 && input.DiscountPrice >= input.Price {
		return domainerrors.ErrValidationFailed.WithDetails("discountPrice must be lower than price")
	}

	return nil
}

func applyItemInput(item *entity.ShopInventoryItem, input usecase.InventoryItemInput, now time.Time) {
	item.Name = strings.TrimSpace(input.Name)
	item.Species = strings.TrimSpace(input.Species)
	item.Breed = input.Breed
	item.Gender = input.Gender
	if item.Gender == "" {
		item.Gender = "Unknown"
	}
	item.AgeMonths = input.AgeMonths
	item.Color = input.Color
	item.Description = input.Description
	item.Price = input.Price
	item.DiscountPrice = input.DiscountPrice
	item.Images = compactStrings(input.Images)
	item.UpdatedAt = now
}
