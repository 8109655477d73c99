package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_HasPermission(t *testing.T) {
	t.Parallel()

	manager := &Role{
		Name:        "adoption_manager",
		IsActive:    true,
		Permissions: []ModulePermission{{Module: ModuleAdoption, Actions: []string{ActionManage}}},
	}
	worker := &Role{
		Name:        "rescue_worker",
		IsActive:    true,
		Permissions: []ModulePermission{{Module: ModuleRescue, Actions: []string{ActionRead, ActionUpdate}}},
	}

	assert.True(t, manager.HasPermission(ModuleAdoption, ActionDelete), "manage implies delete")
	assert.False(t, manager.HasPermission(ModuleShelter, ActionRead))
	assert.True(t, worker.HasPermission(ModuleRescue, ActionUpdate))
	assert.False(t, worker.HasPermission(ModuleRescue, ActionDelete))

	super := &Role{Name: RoleSuperAdmin, IsActive: true}
	assert.True(t, super.HasPermission(ModuleEcommerce, ActionApprove))

	inactive := &Role{Name: "x", Permissions: manager.Permissions}
	assert.False(t, inactive.HasPermission(ModuleAdoption, ActionRead))

	var nilRole *Role
	assert.False(t, nilRole.HasPermission(ModuleAdoption, ActionRead))
}

func TestRole_AddAndRemoveModuleActions(t *testing.T) {
	t.Parallel()

	role := &Role{Name: "custom", IsActive: true}
	role.AddModuleActions(ModulePharmacy, []string{ActionRead})
	role.AddModuleActions(ModulePharmacy, []string{ActionRead, ActionUpdate})

	assert.Len(t, role.Permissions, 1)
	assert.ElementsMatch(t, []string{ActionRead, ActionUpdate}, role.Permissions[0].Actions)

	assert.True(t, role.RemoveModule(ModulePharmacy))
	assert.False(t, role.RemoveModule(ModulePharmacy))
	assert.Empty(t, role.Permissions)
}

func TestParseModuleRole(t *testing.T) {
	t.Parallel()

	m, kind, ok := ParseModuleRole("temporary-care_manager")
	assert.True(t, ok)
	assert.Equal(t, ModuleTemporaryCare, m)
	assert.Equal(t, StaffManager, kind)

	_, _, ok = ParseModuleRole("super_admin")
	assert.False(t, ok)

	_, _, ok = ParseModuleRole("adoption_owner")
	assert.False(t, ok)

	_, _, ok = ParseModuleRole("public_user")
	assert.False(t, ok)
}

func TestSystemRoles(t *testing.T) {
	t.Parallel()

	roles := SystemRoles()
	names := make(map[string]*Role, len(roles))
	for _, r := range roles {
		names[r.Name] = r
		assert.True(t, r.IsSystemRole)
		assert.GreaterOrEqual(t, r.Level, MinRoleLevel)
		assert.LessOrEqual(t, r.Level, MaxRoleLevel)
	}

	assert.Len(t, roles, 2+3*len(AssignableModules))
	assert.Contains(t, names, "ecommerce_worker")
	assert.True(t, names["shelter_admin"].HasPermission(ModuleShelter, ActionAssign))
	assert.False(t, names[RolePublicUser].HasPermission(ModuleShelter, ActionRead))
}

func TestModuleNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Temporary Care", ModuleTemporaryCare.DisplayName())
	assert.Equal(t, "Adoption", ModuleAdoption.DisplayName())
	assert.Equal(t, ModuleTemporaryCare, ModuleFromName("Temporary Care"))
	assert.Equal(t, ModuleEcommerce, ModuleFromName("E-commerce"))
	assert.Equal(t, ModuleVeterinary, ModuleFromName("veterinary"))
	assert.False(t, Module("unknown").IsAssignable())
	assert.True(t, ModuleRBAC.IsPermissionModule())
	assert.Len(t, ModuleCatalogue(), len(ServiceModules))
}

func TestUser_NeedsStoreSetup(t *testing.T) {
	t.Parallel()

	assert.True(t, (&User{Role: "petshop_manager"}).NeedsStoreSetup())
	assert.False(t, (&User{Role: "petshop_manager", StoreID: "s-1"}).NeedsStoreSetup())
	assert.False(t, (&User{Role: "petshop_worker"}).NeedsStoreSetup())
	assert.True(t, (&User{Role: "pharmacy_admin"}).ModuleAdminOf(ModulePharmacy))
}
