package impl

import (
	"context"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	mockRepo "petwelfare/internal/mocks/repository"
	mockSvc "petwelfare/internal/mocks/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userAdminServiceFixtures struct {
	service   *userAdminService
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	roleRepo  *mockRepo.MockRoleRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserAdminService(t *testing.T) userAdminServiceFixtures {
	fx := userAdminServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		roleRepo:  mockRepo.NewMockRoleRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
	}
	fx.service = NewUserAdminService(fx.txManager, fx.hasher, newDiscardLogger()).(*userAdminService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().RoleRepo().Return(fx.roleRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func activeRole(name string) *entity.Role {
	return &entity.Role{ID: uuid.New(), Name: name, IsActive: true}
}

func TestUserAdminService_ListUsers(t *testing.T) {
	fx := createTestUserAdminService(t)
	ctx := context.Background()
	filter := entity.UserFilter{Module: entity.ModuleShelter}

	fx.userRepo.EXPECT().List(ctx, filter, entity.PageRequest{Page: 1, Limit: 10}).
		Return([]*entity.User{{Name: "A"}, {Name: "B"}}, int64(12), nil)

	page, err := fx.service.ListUsers(ctx, filter, entity.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 12, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.Pages)
}

func TestUserAdminService_AssignRole(t *testing.T) {
	ctx := context.Background()
	admin := testActor(entity.RoleSuperAdmin)

	t.Run("module role sets module", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		user := &entity.User{ID: uuid.New(), Role: entity.RolePublicUser}
		fx.roleRepo.EXPECT().FindByName(ctx, "rescue_worker").Return(activeRole("rescue_worker"), nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		updated, err := fx.service.AssignRole(ctx, admin, user.ID, "rescue_worker")
		require.NoError(t, err)
		assert.Equal(t, "rescue_worker", updated.Role)
		assert.Equal(t, entity.ModuleRescue, updated.Module)
	})

	t.Run("plain role clears store", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		user := &entity.User{ID: uuid.New(), Role: "petshop_manager", Module: entity.ModulePetShop, StoreID: "S1"}
		fx.roleRepo.EXPECT().FindByName(ctx, entity.RolePublicUser).Return(activeRole(entity.RolePublicUser), nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		updated, err := fx.service.AssignRole(ctx, admin, user.ID, entity.RolePublicUser)
		require.NoError(t, err)
		assert.Empty(t, updated.Module)
		assert.Empty(t, updated.StoreID)
	})

	t.Run("inactive role", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "legacy").Return(&entity.Role{Name: "legacy"}, nil)

		_, err := fx.service.AssignRole(ctx, admin, uuid.New(), "legacy")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "ghost").Return(nil, repository.ErrNotFound)

		_, err := fx.service.AssignRole(ctx, admin, uuid.New(), "ghost")
		assert.ErrorIs(t, err, domainerrors.ErrRoleNotFound)
	})

	t.Run("super admin grant needs super admin", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		_, err := fx.service.AssignRole(ctx, testActor("adoption_admin"), uuid.New(), entity.RoleSuperAdmin)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestUserAdminService_SetUserActive(t *testing.T) {
	ctx := context.Background()
	admin := testActor(entity.RoleSuperAdmin)

	t.Run("self deactivation refused", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		_, err := fx.service.SetUserActive(ctx, admin, admin.UserID, false)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("deactivates", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		user := &entity.User{ID: uuid.New(), IsActive: true}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		updated, err := fx.service.SetUserActive(ctx, admin, user.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
		assert.Equal(t, fixedNow, updated.UpdatedAt)
	})

	t.Run("super admin protected from module admins", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		target := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin, IsActive: true}
		fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

		_, err := fx.service.SetUserActive(ctx, testActor("shelter_admin"), target.ID, false)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestUserAdminService_CreateModuleAdmin(t *testing.T) {
	ctx := context.Background()
	admin := testActor(entity.RoleSuperAdmin)

	t.Run("creates account from display name", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "temporary-care_admin").Return(activeRole("temporary-care_admin"), nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "carla@example.com").Return(nil, repository.ErrNotFound)
		fx.hasher.EXPECT().ValidatePasswordStrength("Str0ng!Pass").Return(nil)
		fx.hasher.EXPECT().Hash("Str0ng!Pass").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		out, err := fx.service.CreateModuleAdmin(ctx, admin, usecase.StaffInput{
			Name:     "Carla",
			Email:    " Carla@Example.com ",
			Password: "Str0ng!Pass",
			Module:   "Temporary Care",
		})
		require.NoError(t, err)
		assert.True(t, out.Created)
		assert.Equal(t, "temporary-care_admin", out.User.Role)
		assert.Equal(t, entity.ModuleTemporaryCare, out.User.Module)
		assert.True(t, out.User.MustChangePassword)
		assert.Nil(t, out.User.SupervisorID)
	})

	t.Run("promotes existing account", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		existing := &entity.User{ID: uuid.New(), Email: "sam@example.com", Role: entity.RolePublicUser}
		fx.roleRepo.EXPECT().FindByName(ctx, "adoption_admin").Return(activeRole("adoption_admin"), nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "sam@example.com").Return(existing, nil)
		fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)

		out, err := fx.service.CreateModuleAdmin(ctx, admin, usecase.StaffInput{Email: "sam@example.com", Module: "adoption"})
		require.NoError(t, err)
		assert.False(t, out.Created)
		assert.Equal(t, "adoption_admin", out.User.Role)
	})

	t.Run("not super admin", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		_, err := fx.service.CreateModuleAdmin(ctx, testActor("adoption_admin"), usecase.StaffInput{Email: "x@example.com", Module: "adoption"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown module", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		_, err := fx.service.CreateModuleAdmin(ctx, admin, usecase.StaffInput{Email: "x@example.com", Module: "grooming"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidModule)
	})

	t.Run("new account needs password", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "adoption_admin").Return(activeRole("adoption_admin"), nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrNotFound)

		_, err := fx.service.CreateModuleAdmin(ctx, admin, usecase.StaffInput{Name: "New", Email: "new@example.com", Module: "adoption"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserAdminService_CreateModuleStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("module admin adds manager and supervises", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		moduleAdmin := testActor("pharmacy_admin")
		existing := &entity.User{ID: uuid.New(), Email: "mia@example.com", Role: entity.RolePublicUser}
		fx.roleRepo.EXPECT().FindByName(ctx, "pharmacy_manager").Return(activeRole("pharmacy_manager"), nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "mia@example.com").Return(existing, nil)
		fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)

		out, err := fx.service.CreateModuleStaff(ctx, moduleAdmin, usecase.StaffInput{
			Email:     "mia@example.com",
			Module:    "pharmacy",
			Kind:      entity.StaffManager,
			StoreID:   "PH-1",
			StoreName: "Main Street Pharmacy",
		})
		require.NoError(t, err)
		require.NotNil(t, out.User.SupervisorID)
		assert.Equal(t, moduleAdmin.UserID, *out.User.SupervisorID)
		assert.Equal(t, "PH-1", out.User.StoreID)
	})

	t.Run("admin of another module", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		_, err := fx.service.CreateModuleStaff(ctx, testActor("rescue_admin"), usecase.StaffInput{
			Email: "x@example.com", Module: "pharmacy", Kind: entity.StaffWorker,
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin kind rejected", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		_, err := fx.service.CreateModuleStaff(ctx, testActor(entity.RoleSuperAdmin), usecase.StaffInput{
			Email: "x@example.com", Module: "pharmacy", Kind: entity.StaffAdmin,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	})

	t.Run("super admin account cannot be demoted", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "pharmacy_worker").Return(activeRole("pharmacy_worker"), nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "root@example.com").Return(&entity.User{Role: entity.RoleSuperAdmin}, nil)

		_, err := fx.service.CreateModuleStaff(ctx, testActor(entity.RoleSuperAdmin), usecase.StaffInput{
			Email: "root@example.com", Module: "pharmacy", Kind: entity.StaffWorker,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	})
}
