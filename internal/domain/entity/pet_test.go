package entity

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPet_TransferTo(t *testing.T) {
	t.Parallel()

	first := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	second := first.AddDate(0, 6, 0)
	shopBuyer, adopter := uuid.New(), uuid.New()

	pet := &Pet{PetCode: "PET-20240601-0001"}
	pet.TransferTo(shopBuyer, PetSourcePetShop, 500, "bought", first)
	pet.TransferTo(adopter, PetSourceAdoption, 0, "rehomed", second)

	want := []OwnershipTransfer{
		{NewOwnerID: shopBuyer, TransferType: PetSourcePetShop, TransferPrice: 500, Reason: "bought", TransferredAt: first, EndedAt: &second},
		{PreviousOwnerID: &shopBuyer, NewOwnerID: adopter, TransferType: PetSourceAdoption, Reason: "rehomed", TransferredAt: second},
	}
	if diff := cmp.Diff(want, pet.OwnershipHistory); diff != "" {
		t.Errorf("ownership history mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, adopter, pet.OwnerID)
	assert.Equal(t, PetOwned, pet.Status)
	assert.Equal(t, second, pet.UpdatedAt)
}

func TestPet_AgeMonths(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dob := func(y int, m time.Month, d int) *time.Time {
		at := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &at
	}

	tests := []struct {
		name string
		dob  *time.Time
		want int
	}{
		{name: "unknown", want: 0},
		{name: "exact months", dob: dob(2024, 3, 10), want: 12},
		{name: "day not reached", dob: dob(2024, 3, 11), want: 11},
		{name: "newborn", dob: dob(2025, 3, 1), want: 0},
		{name: "future", dob: dob(2025, 4, 1), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pet := &Pet{DateOfBirth: tt.dob}
			assert.Equal(t, tt.want, pet.AgeMonths(now))
		})
	}
}

func TestLookupSpecies(t *testing.T) {
	t.Parallel()

	species, ok := LookupSpecies("  Guinea Pig ")
	require.True(t, ok)
	assert.Equal(t, "guinea pig", species.Key)
	assert.Equal(t, "Guinea Pig", species.DisplayName)
	assert.Contains(t, species.Breeds, "Peruvian")

	_, ok = LookupSpecies("griffin")
	assert.False(t, ok)

	catalog := SpeciesCatalog()
	catalog[0].Breeds[0] = "changed"
	assert.NotEqual(t, "changed", SpeciesCatalog()[0].Breeds[0])
}
