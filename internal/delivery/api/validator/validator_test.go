package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomValidator_CustomTags(t *testing.T) {
	type payload struct {
		Permission string `json:"permission" validate:"permname"`
		OTP        string `json:"otp" validate:"otp"`
		Slot       string `json:"timeSlot" validate:"timeslot"`
	}

	v := New()

	assert.NoError(t, v.Validate(payload{Permission: "adoption_read", OTP: "012345", Slot: "09:30"}))

	err := v.Validate(payload{Permission: "Adoption-Read", OTP: "12a456", Slot: "24:00"})
	assert.Equal(t, map[string]string{
		"permission": "permname",
		"otp":        "otp",
		"timeSlot":   "timeslot",
	}, FieldErrors(err))
}

func TestFieldErrors_IgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))
	assert.Nil(t, FieldErrors(assert.AnError))
}
