package entity

import "time"

// Handover states shared by pet-shop pickups and adoption handovers.
const (
	HandoverScheduled = "scheduled"
	HandoverCompleted = "completed"
)

// HandoverOTP is one generated pickup code.
type HandoverOTP struct {
	OTP         string     `json:"otp"`
	GeneratedAt time.Time  `json:"generatedAt"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	Used        bool       `json:"used"`
	UsedAt      *time.Time `json:"usedAt,omitempty"`
}

// Handover tracks the pickup of a reserved or adopted pet.
type Handover struct {
	Status      string        `json:"status,omitempty"`
	ScheduledAt *time.Time    `json:"scheduledAt,omitempty"`
	Location    string        `json:"location,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	OTPHistory  []HandoverOTP `json:"otpHistory,omitempty"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

// IsScheduled reports whether a pickup is booked and not yet completed.
func (h *Handover) IsScheduled() bool {
	return h.Status == HandoverScheduled
}

// AppendOTP records a new code and keeps only the newest limit entries.
func (h *Handover) AppendOTP(otp HandoverOTP, limit int) {
	h.OTPHistory = append(h.OTPHistory, otp)
	if limit > 0 && len(h.OTPHistory) > limit {
		h.OTPHistory = append([]HandoverOTP(nil), h.OTPHistory[len(h.OTPHistory)-limit:]...)
	}
}

// LatestUnusedOTP returns the most recently generated code that has not been used.
func (h *Handover) LatestUnusedOTP() *HandoverOTP {
	for idx := len(h.OTPHistory) - 1; idx >= 0; idx-- {
		if !h.OTPHistory[idx].Used {
			return &h.OTPHistory[idx]
		}
	}

	return nil
}
