package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PetSource records how a pet entered the registry.
type PetSource string

const (
	PetSourceOwner    PetSource = "owner"
	PetSourceAdoption PetSource = "adoption"
	PetSourcePetShop  PetSource = "petshop"
)

type PetStatus string

const (
	PetOwned    PetStatus = "owned"
	PetDeceased PetStatus = "deceased"
)

// MedicalRecord is one visit or condition in a pet's history.
type MedicalRecord struct {
	Date         time.Time  `json:"date"`
	Condition    string     `json:"condition"`
	Diagnosis    string     `json:"diagnosis,omitempty"`
	Treatment    string     `json:"treatment,omitempty"`
	Veterinarian string     `json:"veterinarian,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	RecordedBy   uuid.UUID  `json:"recordedBy"`
	RecordedAt   time.Time  `json:"recordedAt"`
	FollowUpAt   *time.Time `json:"followUpAt,omitempty"`
}

// VaccinationRecord is one administered vaccine.
type VaccinationRecord struct {
	Name         string     `json:"name"`
	Date         time.Time  `json:"date"`
	NextDueDate  *time.Time `json:"nextDueDate,omitempty"`
	Veterinarian string     `json:"veterinarian,omitempty"`
	BatchNumber  string     `json:"batchNumber,omitempty"`
}

// OwnershipTransfer is one change of owner. EndedAt is set when the next transfer happens.
type OwnershipTransfer struct {
	PreviousOwnerID *uuid.UUID `json:"previousOwnerId,omitempty"`
	NewOwnerID      uuid.UUID  `json:"newOwnerId"`
	TransferType    PetSource  `json:"transferType"`
	TransferPrice   float64    `json:"transferPrice"`
	Reason          string     `json:"reason,omitempty"`
	TransferredAt   time.Time  `json:"transferredAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
}

// Pet is an owned animal in the central registry. Appointments and care bookings
// reference it by ID.
type Pet struct {
	ID               uuid.UUID           `json:"id"`
	PetCode          string              `json:"petCode"`
	OwnerID          uuid.UUID           `json:"ownerId"`
	Name             string              `json:"name"`
	Species          string              `json:"species"`
	Breed            string              `json:"breed,omitempty"`
	Gender           string              `json:"gender"`
	DateOfBirth      *time.Time          `json:"dateOfBirth,omitempty"`
	Color            string              `json:"color,omitempty"`
	WeightKg         float64             `json:"weightKg,omitempty"`
	MicrochipID      string              `json:"microchipId,omitempty"`
	Images           []string            `json:"images,omitempty"`
	Source           PetSource           `json:"source"`
	SourceRef        *uuid.UUID          `json:"sourceRef,omitempty"`
	Status           PetStatus           `json:"status"`
	MedicalHistory   []MedicalRecord     `json:"medicalHistory,omitempty"`
	Vaccinations     []VaccinationRecord `json:"vaccinations,omitempty"`
	OwnershipHistory []OwnershipTransfer `json:"ownershipHistory,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// TransferTo closes the current ownership record and opens one for newOwner.
func (p *Pet) TransferTo(newOwner uuid.UUID, kind PetSource, price float64, reason string, at time.Time) {
	var previous *uuid.UUID
	if p.OwnerID != uuid.Nil {
		owner := p.OwnerID
		previous = &owner
	}
	if n := len(p.OwnershipHistory); n > 0 && p.OwnershipHistory[n-1].EndedAt == nil {
		p.OwnershipHistory[n-1].EndedAt = &at
	}

	p.OwnershipHistory = append(p.OwnershipHistory, OwnershipTransfer{
		PreviousOwnerID: previous,
		NewOwnerID:      newOwner,
		TransferType:    kind,
		TransferPrice:   price,
		Reason:          reason,
		TransferredAt:   at,
	})
	p.OwnerID = newOwner
	p.Status = PetOwned
	p.UpdatedAt = at
}

// AgeMonths is the completed months since birth, or 0 when the birth date is unknown.
func (p *Pet) AgeMonths(now time.Time) int {
	if p.DateOfBirth == nil || now.Before(*p.DateOfBirth) {
		return 0
	}

	dob := *p.DateOfBirth
	months := (now.Year()-dob.Year())*12 + int(now.Month()-dob.Month())
	if now.Day() < dob.Day() {
		months--
	}

	return max(months, 0)
}

// PetFilter narrows an owner's pet list.
type PetFilter struct {
	OwnerID *uuid.UUID
	Species string
	Search  string
}

// Species is one entry of the species and breed lookup.
type Species struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"displayName"`
	Breeds      []string `json:"breeds"`
}

var speciesCatalog = []Species{
	{Key: "dog", Breeds: []string{"Beagle", "Boxer", "Dachshund", "German Shepherd", "Golden Retriever", "Indian Pariah", "Labrador Retriever", "Pug", "Rottweiler", "Shih Tzu", "Mixed"}},
	{Key: "cat", Breeds: []string{"Bengal", "British Shorthair", "Indian Domestic", "Maine Coon", "Persian", "Siamese", "Mixed"}},
	{Key: "bird", Breeds: []string{"Budgerigar", "Cockatiel", "Lovebird", "Parrot", "Other"}},
	{Key: "rabbit", Breeds: []string{"Dutch", "Holland Lop", "Lionhead", "New Zealand", "Mixed"}},
	{Key: "guinea pig", Breeds: []string{"Abyssinian", "American", "Peruvian", "Mixed"}},
	{Key: "hamster", Breeds: []string{"Dwarf", "Roborovski", "Syrian"}},
	{Key: "fish", Breeds: []string{"Betta", "Goldfish", "Guppy", "Other"}},
	{Key: "turtle", Breeds: []string{"Red-eared Slider", "Indian Flapshell", "Other"}},
	{Key: "other", Breeds: []string{"Other"}},
}

// SpeciesCatalog lists every species with its known breeds.
func SpeciesCatalog() []Species {
	title := cases.Title(language.English)
	out := make([]Species, 0, len(speciesCatalog))
	for _, species := range speciesCatalog {
		species.DisplayName = title.String(species.Key)
		species.Breeds = slices.Clone(species.Breeds)
		out = append(out, species)
	}

	return out
}

// LookupSpecies matches name against catalogue keys, ignoring case and surrounding space.
func LookupSpecies(name string) (Species, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, species := range SpeciesCatalog() {
		if species.Key == name {
			return species, true
		}
	}

	return Species{}, false
}
