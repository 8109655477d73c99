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

type roleServiceFixtures struct {
	service   usecase.RoleUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	roleRepo  *mockRepo.MockRoleRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestRoleService(t *testing.T) roleServiceFixtures {
	fx := roleServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		roleRepo:  mockRepo.NewMockRoleRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
	}
	fx.service = NewRoleService(fx.txManager, newDiscardLogger())
	fx.factory.EXPECT().RoleRepo().Return(fx.roleRepo).Maybe()
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func customRole() *entity.Role {
	return &entity.Role{
		ID:          uuid.New(),
		Name:        "clinic_reception",
		DisplayName: "Clinic Reception",
		Level:       3,
		Permissions: []entity.ModulePermission{{Module: entity.ModuleVeterinary, Actions: []string{entity.ActionRead}}},
		IsActive:    true,
	}
}

func validRoleInput() usecase.RoleInput {
	return usecase.RoleInput{
		Name:        "clinic_reception",
		DisplayName: "Clinic Reception",
		Level:       3,
		Permissions: []entity.ModulePermission{{Module: entity.ModuleVeterinary, Actions: []string{entity.ActionRead}}},
	}
}

func TestRoleService_ListRoles(t *testing.T) {
	fx := createTestRoleService(t)
	ctx := context.Background()

	roles := []*entity.Role{{Name: entity.RoleSuperAdmin}, customRole()}
	fx.roleRepo.EXPECT().List(ctx, true).Return(roles, nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RoleSuperAdmin).Return(1, nil)
	fx.userRepo.EXPECT().CountByRole(ctx, "clinic_reception").Return(4, nil)

	summaries, err := fx.service.ListRoles(ctx, true)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.EqualValues(t, 1, summaries[0].AssignedUsers)
	assert.EqualValues(t, 4, summaries[1].AssignedUsers)
}

func TestRoleService_GetRole_NotFound(t *testing.T) {
	fx := createTestRoleService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.roleRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotFound)

	_, err := fx.service.GetRole(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotFound)
}

func TestRoleService_CreateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active custom role", func(t *testing.T) {
		fx := createTestRoleService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "clinic_reception").Return(nil, repository.ErrNotFound)
		fx.roleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Role")).Return(nil)

		role, err := fx.service.CreateRole(ctx, validRoleInput())
		require.NoError(t, err)
		assert.True(t, role.IsActive)
		assert.False(t, role.IsSystemRole)
		assert.NotEqual(t, uuid.Nil, role.ID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		fx := createTestRoleService(t)
		fx.roleRepo.EXPECT().FindByName(ctx, "clinic_reception").Return(customRole(), nil)

		_, err := fx.service.CreateRole(ctx, validRoleInput())
		assert.ErrorIs(t, err, domainerrors.ErrRoleAlreadyExists)
	})

	tests := []struct {
		name    string
		mutate  func(*usecase.RoleInput)
		wantErr error
	}{
		{"missing display name", func(in *usecase.RoleInput) { in.DisplayName = "" }, domainerrors.ErrValidationFailed},
		{"level too high", func(in *usecase.RoleInput) { in.Level = 11 }, domainerrors.ErrValidationFailed},
		{"level too low", func(in *usecase.RoleInput) { in.Level = 0 }, domainerrors.ErrValidationFailed},
		{"unknown module", func(in *usecase.RoleInput) { in.Permissions[0].Module = "grooming" }, domainerrors.ErrInvalidModule},
		{"unknown action", func(in *usecase.RoleInput) { in.Permissions[0].Actions = []string{"fly"} }, domainerrors.ErrInvalidAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRoleService(t)
			input := validRoleInput()
			tt.mutate(&input)

			_, err := fx.service.CreateRole(ctx, input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoleService_SystemRolesAreReadOnly(t *testing.T) {
	ctx := context.Background()
	system := &entity.Role{ID: uuid.New(), Name: "adoption_admin", IsSystemRole: true, IsActive: true}

	t.Run("update", func(t *testing.T) {
		fx := createTestRoleService(t)
		fx.roleRepo.EXPECT().FindByID(ctx, system.ID).Return(system, nil)

		_, err := fx.service.UpdateRole(ctx, system.ID, validRoleInput())
		assert.ErrorIs(t, err, domainerrors.ErrSystemRoleReadOnly)
	})

	t.Run("remove module", func(t *testing.T) {
		fx := createTestRoleService(t)
		fx.roleRepo.EXPECT().FindByID(ctx, system.ID).Return(system, nil)

		_, err := fx.service.RemoveModule(ctx, system.ID, entity.ModuleAdoption)
		assert.ErrorIs(t, err, domainerrors.ErrSystemRoleReadOnly)
	})

	t.Run("deactivate", func(t *testing.T) {
		fx := createTestRoleService(t)
		fx.roleRepo.EXPECT().FindByID(ctx, system.ID).Return(system, nil)

		err := fx.service.DeactivateRole(ctx, system.ID)
		assert.ErrorIs(t, err, domainerrors.ErrSystemRoleReadOnly)
	})
}

func TestRoleService_DeactivateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("refused while assigned", func(t *testing.T) {
		fx := createTestRoleService(t)
		role := customRole()
		fx.roleRepo.EXPECT().FindByID(ctx, role.ID).Return(role, nil)
		fx.userRepo.EXPECT().CountByRole(ctx, role.Name).Return(2, nil)

		err := fx.service.DeactivateRole(ctx, role.ID)
		assert.ErrorIs(t, err, domainerrors.ErrRoleInUse)
	})

	t.Run("unassigned role is deactivated", func(t *testing.T) {
		fx := createTestRoleService(t)
		role := customRole()
		fx.roleRepo.EXPECT().FindByID(ctx, role.ID).Return(role, nil)
		fx.userRepo.EXPECT().CountByRole(ctx, role.Name).Return(0, nil)
		fx.roleRepo.EXPECT().Update(ctx, mock.MatchedBy(func(r *entity.Role) bool { return !r.IsActive })).Return(nil)

		require.NoError(t, fx.service.DeactivateRole(ctx, role.ID))
	})
}

func TestRoleService_AddModuleActions(t *testing.T) {
	ctx := context.Background()

	t.Run("merges into existing grant", func(t *testing.T) {
		fx := createTestRoleService(t)
		role := customRole()
		fx.roleRepo.EXPECT().FindByID(ctx, role.ID).Return(role, nil)
		fx.roleRepo.EXPECT().Update(ctx, role).Return(nil)

		updated, err := fx.service.AddModuleActions(ctx, role.ID, entity.ModuleVeterinary, []string{entity.ActionUpdate, entity.ActionRead})
		require.NoError(t, err)
		require.Len(t, updated.Permissions, 1)
		assert.ElementsMatch(t, []string{entity.ActionRead, entity.ActionUpdate}, updated.Permissions[0].Actions)
	})

	t.Run("requires actions", func(t *testing.T) {
		fx := createTestRoleService(t)

		_, err := fx.service.AddModuleActions(ctx, uuid.New(), entity.ModuleVeterinary, nil)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
	})
}

func TestRoleService_RemoveModule_NotGranted(t *testing.T) {
	fx := createTestRoleService(t)
	ctx := context.Background()
	role := customRole()
	fx.roleRepo.EXPECT().FindByID(ctx, role.ID).Return(role, nil)

	_, err := fx.service.RemoveModule(ctx, role.ID, entity.ModulePharmacy)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidModule)
}

func TestRoleService_InitializeDefaults(t *testing.T) {
	fx := createTestRoleService(t)
	ctx := context.Background()

	fx.roleRepo.EXPECT().FindByName(ctx, entity.RoleSuperAdmin).Return(&entity.Role{Name: entity.RoleSuperAdmin}, nil)
	fx.roleRepo.EXPECT().FindByName(ctx, mock.MatchedBy(func(name string) bool { return name != entity.RoleSuperAdmin })).
		Return(nil, repository.ErrNotFound)
	fx.roleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Role")).Return(nil)

	created, err := fx.service.InitializeDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(entity.SystemRoles())-1, created)
}
