package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// PermissionNamePattern constrains Permission.Name.
var PermissionNamePattern = regexp.MustCompile(`^[a-z_]+$`)

// ConditionOperator is the comparison applied by a permission condition.
type ConditionOperator string

const (
	OpEquals      ConditionOperator = "equals"
	OpNotEquals   ConditionOperator = "not_equals"
	OpContains    ConditionOperator = "contains"
	OpNotContains ConditionOperator = "not_contains"
	OpGreaterThan ConditionOperator = "greater_than"
	OpLessThan    ConditionOperator = "less_than"
	OpIn          ConditionOperator = "in"
	OpNotIn       ConditionOperator = "not_in"
	OpExists      ConditionOperator = "exists"
)

// Condition restricts a permission to attribute documents where Field (a dotted path)
// compares to Value with Operator.
type Condition struct {
	Field    string            `json:"field"`
	Operator ConditionOperator `json:"operator"`
	Value    any               `json:"value"`
}

// Permission is a named, optionally conditional grant of one action on one module.
type Permission struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Description string      `json:"description,omitempty"`
	Module      Module      `json:"module"`
	Action      string      `json:"action"`
	Resource    string      `json:"resource,omitempty"`
	Conditions  []Condition `json:"conditions,omitempty"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PermissionFilter narrows permission listings.
type PermissionFilter struct {
	Module   Module
	Action   string
	IsActive *bool
}

// UserFilter narrows user listings.
type UserFilter struct {
	Role     string
	Module   Module
	IsActive *bool
	Search   string
}
