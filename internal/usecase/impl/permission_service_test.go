package impl

import (
	"context"
	"testing"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	mockRepo "petwelfare/internal/mocks/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type permissionServiceFixtures struct {
	service   usecase.PermissionUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	permRepo  *mockRepo.MockPermissionRepository
	roleRepo  *mockRepo.MockRoleRepository
}

func createTestPermissionService(t *testing.T) permissionServiceFixtures {
	fx := permissionServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		permRepo:  mockRepo.NewMockPermissionRepository(t),
		roleRepo:  mockRepo.NewMockRoleRepository(t),
	}
	fx.service = NewPermissionService(fx.txManager, newDiscardLogger())
	fx.factory.EXPECT().PermissionRepo().Return(fx.permRepo).Maybe()
	fx.factory.EXPECT().RoleRepo().Return(fx.roleRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func TestPermissionService_CreatePermission(t *testing.T) {
	ctx := context.Background()
	valid := func() usecase.PermissionInput {
		return usecase.PermissionInput{
			Name:        "approve_own_store_orders",
			DisplayName: "Approve own store orders",
			Module:      entity.ModulePharmacy,
			Action:      entity.ActionApprove,
			Conditions: []entity.Condition{
				{Field: "resource.storeId", Operator: entity.OpEquals, Value: "S1"},
			},
		}
	}

	t.Run("defaults to active", func(t *testing.T) {
		fx := createTestPermissionService(t)
		fx.permRepo.EXPECT().FindByName(ctx, "approve_own_store_orders").Return(nil, repository.ErrNotFound)
		fx.permRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Permission")).Return(nil)

		permission, err := fx.service.CreatePermission(ctx, valid())
		require.NoError(t, err)
		assert.True(t, permission.IsActive)
		assert.Len(t, permission.Conditions, 1)
	})

	t.Run("duplicate name", func(t *testing.T) {
		fx := createTestPermissionService(t)
		fx.permRepo.EXPECT().FindByName(ctx, "approve_own_store_orders").Return(&entity.Permission{}, nil)

		_, err := fx.service.CreatePermission(ctx, valid())
		assert.ErrorIs(t, err, domainerrors.ErrPermissionExists)
	})

	tests := []struct {
		name    string
		mutate  func(*usecase.PermissionInput)
		wantErr error
	}{
		{"name with digits", func(in *usecase.PermissionInput) { in.Name = "orders2" }, domainerrors.ErrValidationFailed},
		{"name with uppercase", func(in *usecase.PermissionInput) { in.Name = "Orders" }, domainerrors.ErrValidationFailed},
		{"unknown module", func(in *usecase.PermissionInput) { in.Module = "grooming" }, domainerrors.ErrInvalidModule},
		{"unknown action", func(in *usecase.PermissionInput) { in.Action = "fly" }, domainerrors.ErrInvalidAction},
		{"unknown operator", func(in *usecase.PermissionInput) { in.Conditions[0].Operator = "like" }, domainerrors.ErrValidationFailed},
		{"empty condition field", func(in *usecase.PermissionInput) { in.Conditions[0].Field = " " }, domainerrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPermissionService(t)
			input := valid()
			tt.mutate(&input)

			_, err := fx.service.CreatePermission(ctx, input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPermissionService_UpdatePermission(t *testing.T) {
	fx := createTestPermissionService(t)
	ctx := context.Background()
	existing := &entity.Permission{ID: uuid.New(), Name: "read_records", DisplayName: "Read", IsActive: true}

	fx.permRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.permRepo.EXPECT().Update(ctx, existing).Return(nil)

	inactive := false
	display := "Read records"
	updated, err := fx.service.UpdatePermission(ctx, existing.ID, usecase.PermissionUpdate{DisplayName: &display, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Read records", updated.DisplayName)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "read_records", updated.Name)
}

func TestPermissionService_DeletePermission(t *testing.T) {
	ctx := context.Background()
	permission := &entity.Permission{ID: uuid.New(), Name: "approve_orders", Module: entity.ModulePharmacy, Action: entity.ActionApprove}

	t.Run("in use through manage", func(t *testing.T) {
		fx := createTestPermissionService(t)
		fx.permRepo.EXPECT().FindByID(ctx, permission.ID).Return(permission, nil)
		fx.roleRepo.EXPECT().List(ctx, true).Return([]*entity.Role{
			{Name: "pharmacy_manager", Permissions: []entity.ModulePermission{{Module: entity.ModulePharmacy, Actions: []string{entity.ActionManage}}}},
		}, nil)

		err := fx.service.DeletePermission(ctx, permission.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPermissionInUse)
		assert.Contains(t, mustAppError(t, err).Details(), "pharmacy_manager")
	})

	t.Run("super admin does not pin permissions", func(t *testing.T) {
		fx := createTestPermissionService(t)
		fx.permRepo.EXPECT().FindByID(ctx, permission.ID).Return(permission, nil)
		fx.roleRepo.EXPECT().List(ctx, true).Return([]*entity.Role{{Name: entity.RoleSuperAdmin, IsActive: true}}, nil)
		fx.permRepo.EXPECT().Delete(ctx, permission.ID).Return(nil)

		require.NoError(t, fx.service.DeletePermission(ctx, permission.ID))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestPermissionService(t)
		fx.permRepo.EXPECT().FindByID(ctx, permission.ID).Return(nil, repository.ErrNotFound)

		err := fx.service.DeletePermission(ctx, permission.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPermissionNotFound)
	})
}

func TestPermissionService_Catalogue(t *testing.T) {
	fx := createTestPermissionService(t)

	modules := fx.service.ListModules()
	require.Len(t, modules, len(entity.PermissionModules))
	assert.Contains(t, modules, usecase.ModuleOption{Key: entity.ModuleTemporaryCare, Name: "Temporary Care"})

	actions := fx.service.ListActions()
	assert.Equal(t, entity.Actions, actions)

	actions[0] = "mutated"
	assert.Equal(t, entity.ActionCreate, entity.Actions[0])
}

func TestPermissionService_CheckPermission(t *testing.T) {
	ctx := context.Background()
	manager := &usecase.Actor{UserID: uuid.New(), Role: "pharmacy_manager", Module: entity.ModulePharmacy, StoreID: "S1"}
	managerRole := &entity.Role{
		Name:        "pharmacy_manager",
		IsActive:    true,
		Permissions: []entity.ModulePermission{{Module: entity.ModulePharmacy, Actions: []string{entity.ActionManage}}},
	}
	ownStore := &entity.Permission{
		Name:       "approve_own_store",
		Conditions: []entity.Condition{{Field: "user.storeId", Operator: entity.OpEquals, Value: "S1"}},
	}
	highValue := &entity.Permission{
		Name:       "approve_small_orders",
		Conditions: []entity.Condition{{Field: "order.total", Operator: entity.OpLessThan, Value: 1000}},
	}

	t.Run("super admin bypass", func(t *testing.T) {
		fx := createTestPermissionService(t)

		decision, err := fx.service.CheckPermission(ctx, testActor(entity.RoleSuperAdmin), usecase.PermissionCheck{Module: entity.ModuleRescue, Action: entity.ActionDelete})
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})

	t.Run("all conditions hold", func(t *testing.T) {
		fx := createTestPermissionService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "pharmacy_manager").Return(managerRole, nil)
		fx.permRepo.EXPECT().FindActiveFor(ctx, entity.ModulePharmacy, entity.ActionApprove, "").
			Return([]*entity.Permission{ownStore, highValue}, nil)

		decision, err := fx.service.CheckPermission(ctx, manager, usecase.PermissionCheck{
			Module:     entity.ModulePharmacy,
			Action:     entity.ActionApprove,
			Attributes: map[string]any{"order": map[string]any{"total": 250}},
		})
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, []string{"approve_own_store", "approve_small_orders"}, decision.EvaluatedPermission)
	})

	t.Run("one failing condition denies", func(t *testing.T) {
		fx := createTestPermissionService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "pharmacy_manager").Return(managerRole, nil)
		fx.permRepo.EXPECT().FindActiveFor(ctx, entity.ModulePharmacy, entity.ActionApprove, "").
			Return([]*entity.Permission{ownStore, highValue}, nil)

		decision, err := fx.service.CheckPermission(ctx, manager, usecase.PermissionCheck{
			Module:     entity.ModulePharmacy,
			Action:     entity.ActionApprove,
			Attributes: map[string]any{"order": map[string]any{"total": 5000}},
		})
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Contains(t, decision.Reason, "approve_small_orders")
	})

	t.Run("role lacks module", func(t *testing.T) {
		fx := createTestPermissionService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "pharmacy_manager").Return(managerRole, nil)

		decision, err := fx.service.CheckPermission(ctx, manager, usecase.PermissionCheck{Module: entity.ModuleRescue, Action: entity.ActionRead})
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestPermissionService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "pharmacy_manager").Return(nil, repository.ErrNotFound)

		decision, err := fx.service.CheckPermission(ctx, manager, usecase.PermissionCheck{Module: entity.ModulePharmacy, Action: entity.ActionRead})
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestPermissionService(t)

		decision, err := fx.service.CheckPermission(ctx, nil, usecase.PermissionCheck{Module: entity.ModulePharmacy, Action: entity.ActionRead})
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
	})
}
