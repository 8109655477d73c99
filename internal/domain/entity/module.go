package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Module is the key of a functional area of the platform, e.g. "adoption".
type Module string

const (
	ModuleAdoption      Module = "adoption"
	ModulePetShop       Module = "petshop"
	ModuleVeterinary    Module = "veterinary"
	ModulePharmacy      Module = "pharmacy"
	ModuleRescue        Module = "rescue"
	ModuleShelter       Module = "shelter"
	ModuleTemporaryCare Module = "temporary-care"
	ModuleEcommerce     Module = "ecommerce"
	ModuleDonation      Module = "donation"
	ModuleBoarding      Module = "boarding"
	ModuleRBAC          Module = "rbac"
	ModuleCore          Module = "core"
)

// ServiceModules are the modules that expose manager dashboards.
var ServiceModules = []Module{
	ModuleAdoption,
	ModulePetShop,
	ModuleVeterinary,
	ModulePharmacy,
	ModuleRescue,
	ModuleShelter,
	ModuleTemporaryCare,
	ModuleEcommerce,
}

// AssignableModules may receive module admins and staff.
var AssignableModules = append(append([]Module{}, ServiceModules...), ModuleDonation, ModuleBoarding)

// PermissionModules are accepted in Permission.Module.
var PermissionModules = append(append([]Module{}, AssignableModules...), ModuleRBAC, ModuleCore)

func (m Module) String() string {
	return string(m)
}

// IsAssignable reports whether staff can be assigned to the module.
func (m Module) IsAssignable() bool {
	for _, candidate := range AssignableModules {
		if candidate == m {
			return true
		}
	}

	return false
}

// IsPermissionModule reports whether m may appear in permission documents.
func (m Module) IsPermissionModule() bool {
	for _, candidate := range PermissionModules {
		if candidate == m {
			return true
		}
	}

	return false
}

var displayNameOverrides = map[Module]string{
	ModuleTemporaryCare: "Temporary Care",
	ModulePetShop:       "Pet Shop",
	ModuleEcommerce:     "E-commerce",
	ModuleRBAC:          "RBAC",
}

// DisplayName returns the human readable module name.
func (m Module) DisplayName() string {
	if name, ok := displayNameOverrides[m]; ok {
		return name
	}

	return cases.Title(language.English).String(strings.ReplaceAll(string(m), "-", " "))
}

// ModuleFromName accepts either a module key or its display name.
func ModuleFromName(name string) Module {
	trimmed := strings.TrimSpace(name)
	for _, m := range PermissionModules {
		if strings.EqualFold(trimmed, string(m)) || strings.EqualFold(trimmed, m.DisplayName()) {
			return m
		}
	}

	return Module(strings.ToLower(trimmed))
}

// ModuleInfo is a catalogue entry served to the frontend.
type ModuleInfo struct {
	Key                 Module `json:"key"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Icon                string `json:"icon"`
	Color               string `json:"color"`
	Status              string `json:"status"`
	HasManagerDashboard bool   `json:"hasManagerDashboard"`
	DisplayOrder        int    `json:"displayOrder"`
}

var moduleCatalogue = map[Module]struct{ description, icon, color string }{
	ModuleAdoption:      {"Find and adopt pets in need of a home", "Pets", "#10b981"},
	ModulePetShop:       {"Pets available from partner shops", "ShoppingCart", "#3b82f6"},
	ModuleVeterinary:    {"Book veterinary appointments", "LocalHospital", "#64748b"},
	ModulePharmacy:      {"Pet medicines with prescription support", "LocalPharmacy", "#f59e0b"},
	ModuleRescue:        {"Report and track animal rescues", "Emergency", "#dc2626"},
	ModuleShelter:       {"Shelter intake and kennel management", "House", "#8b5cf6"},
	ModuleTemporaryCare: {"Pet boarding and daycare services", "Home", "#06b6d4"},
	ModuleEcommerce:     {"Pet supplies and accessories shopping", "ShoppingCart", "#ef4444"},
}

// ModuleCatalogue lists the service modules in display order.
func ModuleCatalogue() []ModuleInfo {
	items := make([]ModuleInfo, 0, len(ServiceModules))
	for idx, m := range ServiceModules {
		meta := moduleCatalogue[m]
		items = append(items, ModuleInfo{
			Key:                 m,
			Name:                m.DisplayName(),
			Description:         meta.description,
			Icon:                meta.icon,
			Color:               meta.color,
			Status:              "active",
			HasManagerDashboard: true,
			DisplayOrder:        idx,
		})
	}

	return items
}
