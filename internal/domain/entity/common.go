// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	// TaxPercentage is the GST applied to e-commerce orders and care bookings.
	TaxPercentage = 18.0
)

// Pagination describes where a page sits in a list result.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count for total items split by limit.
func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// Page is one page of a list query.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// PageRequest is the normalised paging input shared by every list query.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps page to >= 1 and limit to 1..MaxPageLimit.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}

	return p
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	n := p.Normalize()

	return (n.Page - 1) * n.Limit
}

// Address is a postal address embedded in users, orders and bookings.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// TimelineEntry records a status change on an order-like document.
type TimelineEntry struct {
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
	At        time.Time `json:"at"`
}

// Percent returns pct percent of amount.
func Percent(amount, pct float64) float64 {
	return amount * pct / 100
}
