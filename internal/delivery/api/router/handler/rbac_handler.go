package handler

import (
	"log/slog"
	"net/http"

	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RBACHandlerParams holds dependencies for RBACHandler, injected by Fx.
type RBACHandlerParams struct {
	fx.In

	RoleUC       usecase.RoleUsecase
	PermissionUC usecase.PermissionUsecase
	UserAdminUC  usecase.UserAdminUsecase
	Logger       *slog.Logger
}

// RBACHandler serves roles, permissions and user administration.
type RBACHandler struct {
	roleUC       usecase.RoleUsecase
	permissionUC usecase.PermissionUsecase
	userAdminUC  usecase.UserAdminUsecase
	logger       *slog.Logger
}

// NewRBACHandler is the constructor for RBACHandler.
func NewRBACHandler(params RBACHandlerParams) *RBACHandler {
	return &RBACHandler{
		roleUC:       params.RoleUC,
		permissionUC: params.PermissionUC,
		userAdminUC:  params.UserAdminUC,
		logger:       params.Logger,
	}
}

// --- Permissions ---

// PermissionRequest creates a permission document.
type PermissionRequest struct {
	Name        string             `json:"name" validate:"required,permname,max=100"`
	DisplayName string             `json:"displayName" validate:"required,max=100"`
	Description string             `json:"description" validate:"max=500"`
	Module      string             `json:"module" validate:"required"`
	Action      string             `json:"action" validate:"required,oneof=create read update delete manage approve assign"`
	Resource    string             `json:"resource"`
	Conditions  []entity.Condition `json:"conditions" validate:"dive"`
	IsActive    *bool              `json:"isActive"`
}

// PermissionUpdateRequest changes a permission document.
type PermissionUpdateRequest struct {
	DisplayName *string             `json:"displayName" validate:"omitempty,max=100"`
	Description *string             `json:"description" validate:"omitempty,max=500"`
	Resource    *string             `json:"resource"`
	Conditions  *[]entity.Condition `json:"conditions"`
	IsActive    *bool               `json:"isActive"`
}

// ListPermissions lists permission documents sorted by module, action and name.
func (h *RBACHandler) ListPermissions(c echo.Context) error {
	perms, err := h.permissionUC.ListPermissions(c.Request().Context(), entity.PermissionFilter{
		Module:   entity.Module(c.QueryParam("module")),
		Action:   c.QueryParam("action"),
		IsActive: boolQuery(c, "isActive"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, perms)
}

// GetPermission returns one permission document.
func (h *RBACHandler) GetPermission(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	perm, err := h.permissionUC.GetPermission(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, perm)
}

// CreatePermission creates a permission document.
func (h *RBACHandler) CreatePermission(c echo.Context) error {
	var req PermissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	perm, err := h.permissionUC.CreatePermission(c.Request().Context(), usecase.PermissionInput{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		Module:      entity.Module(req.Module),
		Action:      req.Action,
		Resource:    req.Resource,
		Conditions:  req.Conditions,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Permission created", perm)
}

// UpdatePermission changes a permission document.
func (h *RBACHandler) UpdatePermission(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req PermissionUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	perm, err := h.permissionUC.UpdatePermission(c.Request().Context(), id, usecase.PermissionUpdate{
		DisplayName: req.DisplayName,
		Description: req.Description,
		Resource:    req.Resource,
		Conditions:  req.Conditions,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Permission updated", perm)
}

// DeletePermission removes a permission document not used by an active role.
func (h *RBACHandler) DeletePermission(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	if err := h.permissionUC.DeletePermission(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Permission deleted", nil)
}

// ListModules lists the modules permissions can target.
func (h *RBACHandler) ListModules(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.permissionUC.ListModules())
}

// ListActions lists the permission actions.
func (h *RBACHandler) ListActions(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.permissionUC.ListActions())
}

// CheckPermissionRequest is read from the query string; attributes may come in a JSON body.
type CheckPermissionRequest struct {
	Module     string         `query:"module" json:"module" validate:"required"`
	Action     string         `query:"action" json:"action" validate:"required"`
	Resource   string         `query:"resource" json:"resource"`
	Attributes map[string]any `query:"-" json:"attributes"`
}

// CheckPermission evaluates whether the caller may perform an action.
func (h *RBACHandler) CheckPermission(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req CheckPermissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	decision, err := h.permissionUC.CheckPermission(c.Request().Context(), actor, usecase.PermissionCheck{
		Module:     entity.Module(req.Module),
		Action:     req.Action,
		Resource:   req.Resource,
		Attributes: req.Attributes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, decision)
}

// --- Roles ---

// RoleRequest creates or replaces a custom role.
type RoleRequest struct {
	Name        string                    `json:"name" validate:"required,permname,max=50"`
	DisplayName string                    `json:"displayName" validate:"required,max=100"`
	Description string                    `json:"description" validate:"max=500"`
	Level       int                       `json:"level" validate:"required,min=1,max=10"`
	Permissions []entity.ModulePermission `json:"permissions" validate:"dive"`
}

// ModuleActionsRequest grants actions on one module.
type ModuleActionsRequest struct {
	Module  string   `json:"module" validate:"required"`
	Actions []string `json:"actions" validate:"required,min=1,dive,oneof=create read update delete manage approve assign"`
}

// ListRoles lists roles sorted by level. Pass includeInactive=true to see deactivated roles.
func (h *RBACHandler) ListRoles(c echo.Context) error {
	activeOnly := !boolOr(boolQuery(c, "includeInactive"), false)

	roles, err := h.roleUC.ListRoles(c.Request().Context(), activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, roles)
}

// GetRole returns one role with its assigned user count.
func (h *RBACHandler) GetRole(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	role, err := h.roleUC.GetRole(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, role)
}

func (req RoleRequest) toInput() usecase.RoleInput {
	return usecase.RoleInput{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		Level:       req.Level,
		Permissions: req.Permissions,
	}
}

// CreateRole creates a custom role.
func (h *RBACHandler) CreateRole(c echo.Context) error {
	var req RoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	role, err := h.roleUC.CreateRole(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Role created", role)
}

// UpdateRole replaces a custom role.
func (h *RBACHandler) UpdateRole(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req RoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	role, err := h.roleUC.UpdateRole(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Role updated", role)
}

// DeactivateRole deactivates a custom role no user holds.
func (h *RBACHandler) DeactivateRole(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	if err := h.roleUC.DeactivateRole(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Role deactivated", nil)
}

// AddModuleActions grants actions on a module to a role.
func (h *RBACHandler) AddModuleActions(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req ModuleActionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	role, err := h.roleUC.AddModuleActions(c.Request().Context(), id, entity.Module(req.Module), req.Actions)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, role)
}

// RemoveModule revokes every grant a role has on a module.
func (h *RBACHandler) RemoveModule(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	role, err := h.roleUC.RemoveModule(c.Request().Context(), id, entity.Module(c.Param("module")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, role)
}

// InitializeRoles seeds the system roles.
func (h *RBACHandler) InitializeRoles(c echo.Context) error {
	created, err := h.roleUC.InitializeDefaults(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "System roles initialized", map[string]int{"created": created})
}

// --- Users ---

// AssignRoleRequest assigns a role by name.
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UserStatusRequest activates or deactivates a user.
type UserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// StaffRequest creates or promotes module staff.
type StaffRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"omitempty,min=6"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Module    string `json:"module" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=admin manager worker"`
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
}

func (req StaffRequest) toInput(kind entity.StaffKind) usecase.StaffInput {
	return usecase.StaffInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Module:    req.Module,
		Kind:      kind,
		StoreID:   req.StoreID,
		StoreName: req.StoreName,
	}
}

// ListUsers lists accounts with optional role, module, status and search filters.
func (h *RBACHandler) ListUsers(c echo.Context) error {
	users, err := h.userAdminUC.ListUsers(c.Request().Context(), entity.UserFilter{
		Role:     c.QueryParam("role"),
		Module:   entity.Module(c.QueryParam("module")),
		IsActive: boolQuery(c, "isActive"),
		Search:   c.QueryParam("search"),
	}, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetUser returns one account.
func (h *RBACHandler) GetUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	user, err := h.userAdminUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// AssignRole changes an account's role.
func (h *RBACHandler) AssignRole(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req AssignRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	user, err := h.userAdminUC.AssignRole(c.Request().Context(), actor, id, req.Role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Role assigned", user)
}

// SetUserStatus activates or deactivates an account.
func (h *RBACHandler) SetUserStatus(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req UserStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	user, err := h.userAdminUC.SetUserActive(c.Request().Context(), actor, id, *req.IsActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// CreateModuleAdmin creates or promotes the admin of a module. Module may be a key or display name.
func (h *RBACHandler) CreateModuleAdmin(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req StaffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	out, err := h.userAdminUC.CreateModuleAdmin(c.Request().Context(), actor, req.toInput(entity.StaffAdmin))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}

	return response.SuccessMessage(c, status, "Module admin assigned", out)
}

// CreateModuleStaff creates or promotes a manager or worker of a module.
func (h *RBACHandler) CreateModuleStaff(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req StaffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	kind := entity.StaffKind(req.Role)
	if kind == "" {
		kind = entity.StaffManager
	}

	out, err := h.userAdminUC.CreateModuleStaff(c.Request().Context(), actor, req.toInput(kind))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}

	return response.SuccessMessage(c, status, "Module staff assigned", out)
}
