package impl

import (
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPMatches(t *testing.T) {
	assert.True(t, otpMatches("123456", "123456"))
	assert.False(t, otpMatches("123456", "123457"))
	assert.False(t, otpMatches("123456", "12345"))
	assert.False(t, otpMatches("123456", ""))
}

func TestIssueHandoverOTP(t *testing.T) {
	var h entity.Handover
	for range 12 {
		_, err := issueHandoverOTP(&h, fixedNow, time.Hour, 10)
		require.NoError(t, err)
	}

	require.Len(t, h.OTPHistory, 10)
	latest := h.LatestUnusedOTP()
	require.NotNil(t, latest)
	assert.Len(t, latest.OTP, otpDigits)
	assert.Equal(t, fixedNow.Add(time.Hour), latest.ExpiresAt)
}

func TestRedeemHandoverOTP(t *testing.T) {
	history := func() *entity.Handover {
		return &entity.Handover{
			Status: entity.HandoverScheduled,
			OTPHistory: []entity.HandoverOTP{
				{OTP: "111111", GeneratedAt: fixedNow.Add(-2 * time.Hour), ExpiresAt: fixedNow.Add(time.Hour)},
				{OTP: "222222", GeneratedAt: fixedNow.Add(-time.Hour), ExpiresAt: fixedNow.Add(time.Hour)},
			},
		}
	}

	t.Run("latest code completes", func(t *testing.T) {
		h := history()

		require.NoError(t, redeemHandoverOTP(h, "222222", fixedNow))
		assert.True(t, h.OTPHistory[1].Used)
		assert.Equal(t, entity.HandoverCompleted, h.Status)
		assert.Equal(t, fixedNow, *h.CompletedAt)
	})

	t.Run("superseded code rejected", func(t *testing.T) {
		h := history()

		require.ErrorIs(t, redeemHandoverOTP(h, "111111", fixedNow), domainerrors.ErrOTPInvalid)
		assert.False(t, h.OTPHistory[0].Used)
		assert.Equal(t, entity.HandoverScheduled, h.Status)
	})

	t.Run("expired", func(t *testing.T) {
		h := history()

		require.ErrorIs(t, redeemHandoverOTP(h, "222222", fixedNow.Add(2*time.Hour)), domainerrors.ErrOTPExpired)
	})

	t.Run("nothing issued", func(t *testing.T) {
		require.ErrorIs(t, redeemHandoverOTP(&entity.Handover{}, "222222", fixedNow), domainerrors.ErrOTPInvalid)
	})
}
