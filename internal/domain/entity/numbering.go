package entity

import (
	"fmt"
	"time"
)

// NumberPrefix identifies a family of human readable document numbers.
type NumberPrefix string

const (
	PrefixOrder         NumberPrefix = "ORD"
	PrefixPharmacyOrder NumberPrefix = "PHO"
	PrefixReservation   NumberPrefix = "RES"
	PrefixCareBooking   NumberPrefix = "TCB"
	PrefixAppointment   NumberPrefix = "VET"
	PrefixRescue        NumberPrefix = "RSC"
	PrefixShelterIntake NumberPrefix = "SHL"
	PrefixCertificate   NumberPrefix = "ADC"
	PrefixPetCode       NumberPrefix = "PET"
)

// FormatNumber renders prefix, date and sequence as PREFIX-YYYYMMDD-0001.
func FormatNumber(prefix NumberPrefix, at time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, at.Format("20060102"), seq)
}

// SequenceKey is the counter row backing numbers for prefix on the day of at.
func SequenceKey(prefix NumberPrefix, at time.Time) string {
	return string(prefix) + "-" + at.Format("20060102")
}
