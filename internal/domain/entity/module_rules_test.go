package entity

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_Normalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PageRequest{Page: 1, Limit: DefaultPageLimit}, PageRequest{}.Normalize())
	assert.Equal(t, PageRequest{Page: 3, Limit: MaxPageLimit}, PageRequest{Page: 3, Limit: 500}.Normalize())
	assert.Equal(t, 20, PageRequest{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, Pagination{Total: 21, Page: 1, Limit: 10, Pages: 3}, NewPagination(21, 1, 10))
}

func TestDaySlots(t *testing.T) {
	t.Parallel()

	want := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	}
	if diff := cmp.Diff(want, DaySlots()); diff != "" {
		t.Errorf("DaySlots() mismatch (-want +got):\n%s", diff)
	}
}

func TestAppointmentTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, AppointmentPendingApproval.CanTransitionTo(AppointmentScheduled))
	assert.True(t, AppointmentScheduled.CanTransitionTo(AppointmentInProgress))
	assert.True(t, AppointmentInProgress.CanTransitionTo(AppointmentCompleted))
	assert.False(t, AppointmentCompleted.CanTransitionTo(AppointmentCancelled))
	assert.False(t, AppointmentConfirmed.CanTransitionTo(AppointmentScheduled))
}

func TestVetAppointment_HoldsSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		appt VetAppointment
		want bool
	}{
		{"scheduled routine", VetAppointment{TimeSlot: "10:00", Status: AppointmentScheduled}, true},
		{"in progress", VetAppointment{TimeSlot: "10:00", Status: AppointmentInProgress}, true},
		{"completed", VetAppointment{TimeSlot: "10:00", Status: AppointmentCompleted}, true},
		{"emergency awaiting approval", VetAppointment{TimeSlot: "10:00", Status: AppointmentPendingApproval, BookingType: BookingEmergency}, false},
		{"emergency without slot", VetAppointment{Status: AppointmentScheduled, BookingType: BookingEmergency}, false},
		{"cancelled", VetAppointment{TimeSlot: "10:00", Status: AppointmentCancelled}, false},
		{"rejected", VetAppointment{TimeSlot: "10:00", Status: AppointmentRejected}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.appt.HoldsSlot(), tt.name)
	}
}

func TestRescueTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, RescueReported.CanTransitionTo(RescueAssigned))
	assert.True(t, RescueFalseAlarm.CanTransitionTo(RescueClosed))
	assert.False(t, RescueReported.CanTransitionTo(RescueRescued))
	assert.False(t, RescueClosed.CanTransitionTo(RescueReported))
}

func TestHandover_OTPHistory(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	var h Handover
	for i := 0; i < 12; i++ {
		h.AppendOTP(HandoverOTP{OTP: string(rune('a' + i)), GeneratedAt: now, ExpiresAt: now.Add(time.Hour)}, 10)
	}

	require.Len(t, h.OTPHistory, 10)
	assert.Equal(t, "c", h.OTPHistory[0].OTP)
	assert.Equal(t, "l", h.LatestUnusedOTP().OTP)

	h.OTPHistory[9].Used = true
	assert.Equal(t, "k", h.LatestUnusedOTP().OTP)

	var empty Handover
	assert.Nil(t, empty.LatestUnusedOTP())
}

func TestCareDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, CareDuration{Value: 30, Unit: DurationHours}.Days())
	assert.Equal(t, 1, CareDuration{Value: 24, Unit: DurationHours}.Days())
	assert.Equal(t, 3, CareDuration{Value: 3, Unit: DurationDays}.Days())
	assert.Equal(t, 72, CareDuration{Value: 3, Unit: DurationDays}.Hours())

	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, CareDuration{Value: 2, Unit: DurationDays}, DurationBetween(start, start.Add(30*time.Hour)))
}

func TestQuoteCare(t *testing.T) {
	t.Parallel()

	svc := &CareService{BasePrice: 500, PriceUnit: PricePerDay}
	base := svc.BaseFor(CareDuration{Value: 2, Unit: DurationDays})
	assert.InDelta(t, 1000, base, 0.001)

	extras := []AdditionalCharge{{Name: "grooming", Amount: 10, IsPercentage: true}, {Name: "pickup", Amount: 100}}
	quote := QuoteCare(base, extras, 0)

	assert.InDelta(t, 200, quote.AdditionalAmount, 0.001)
	assert.InDelta(t, 216, quote.Tax, 0.001)
	assert.InDelta(t, 1416, quote.TotalAmount, 0.001)
	assert.InDelta(t, 708, quote.AdvanceAmount, 0.001)
	assert.InDelta(t, 708, quote.RemainingAmount, 0.001)

	fixed := &CareService{BasePrice: 300, PriceUnit: PriceFixed}
	assert.InDelta(t, 300, fixed.BaseFor(CareDuration{Value: 5, Unit: DurationDays}), 0.001)

	hourly := &CareService{BasePrice: 50, PriceUnit: PricePerHour}
	assert.InDelta(t, 300, hourly.BaseFor(CareDuration{Value: 6, Unit: DurationHours}), 0.001)
}

func TestCareBooking_CancelAndRefund(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	booking := &CareBooking{
		Status:        CareConfirmed,
		StartDate:     now.Add(72 * time.Hour),
		Pricing:       CarePricing{AdvanceAmount: 600},
		PaymentStatus: CarePaymentStatus{Advance: PaymentCompleted, Final: PaymentPending},
	}

	assert.True(t, booking.CanCancel(now))
	assert.InDelta(t, 600, booking.RefundAmount(now), 0.001)

	booking.StartDate = now.Add(36 * time.Hour)
	assert.True(t, booking.CanCancel(now))
	assert.InDelta(t, 300, booking.RefundAmount(now), 0.001)

	booking.StartDate = now.Add(12 * time.Hour)
	assert.False(t, booking.CanCancel(now))
	assert.Zero(t, booking.RefundAmount(now))

	booking.StartDate = now.Add(72 * time.Hour)
	booking.Status = CareInProgress
	assert.False(t, booking.CanCancel(now))

	unpaid := &CareBooking{Status: CarePendingPayment, StartDate: now.Add(72 * time.Hour), Pricing: CarePricing{AdvanceAmount: 600}}
	assert.Zero(t, unpaid.RefundAmount(now))
}

func TestCareOTP_Matches(t *testing.T) {
	t.Parallel()

	now := time.Now()
	expires := now.Add(time.Hour)
	otp := CareOTP{OTP: "123456", ExpiresAt: &expires}

	assert.True(t, otp.Matches("123456", now))
	assert.False(t, otp.Matches("654321", now))
	assert.False(t, otp.Matches("123456", now.Add(2*time.Hour)))

	otp.Verified = true
	assert.False(t, otp.Matches("123456", now))
}

func TestCart(t *testing.T) {
	t.Parallel()

	p1, p2 := uuid.New(), uuid.New()
	cart := &Cart{}
	cart.Add(CartItem{ProductID: p1, Quantity: 1, Price: 100})
	cart.Add(CartItem{ProductID: p1, Quantity: 2, Price: 90})
	cart.Add(CartItem{ProductID: p2, Quantity: 1, Price: 20})

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.QuantityOf(p1))
	assert.InDelta(t, 290, cart.Subtotal(), 0.001)

	assert.True(t, cart.SetQuantity(p2, 0))
	assert.Len(t, cart.Items, 1)
	assert.False(t, cart.SetQuantity(p2, 1))
}

func TestOrder_PriceOrder(t *testing.T) {
	t.Parallel()

	order := &Order{
		ShippingMethod: ShippingDelivery,
		Items:          []OrderItem{{Quantity: 2, UnitPrice: 250}, {Quantity: 1, UnitPrice: 100}},
	}
	order.PriceOrder()

	assert.InDelta(t, 600, order.Subtotal, 0.001)
	assert.InDelta(t, 108, order.Tax, 0.001)
	assert.InDelta(t, 50, order.ShippingCost, 0.001)
	assert.InDelta(t, 758, order.TotalAmount, 0.001)
	assert.InDelta(t, 500, order.Items[0].TotalPrice, 0.001)

	order.ShippingMethod = ShippingPickup
	order.PriceOrder()
	assert.InDelta(t, 708, order.TotalAmount, 0.001)
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 7, 4, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "ORD-20250704-0042", FormatNumber(PrefixOrder, at, 42))
	assert.Equal(t, "VET-20250704-12345", FormatNumber(PrefixAppointment, at, 12345))
	assert.Equal(t, "TCB-20250704", SequenceKey(PrefixCareBooking, at))
}
