package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"strings"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"

	"github.com/pkg/errors"
)

const otpDigits = 6

// generateOTP returns a zero padded numeric code of otpDigits digits.
func generateOTP() (string, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp")
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

// otpMatches compares codes in constant time.
func otpMatches(want, got string) bool {
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

// issueHandoverOTP appends a fresh code to h that expires ttl after now.
func issueHandoverOTP(h *entity.Handover, now time.Time, ttl time.Duration, limit int) (string, error) {
	code, err := generateOTP()
	if err != nil {
		return "", err
	}

	h.AppendOTP(entity.HandoverOTP{
		OTP:         code,
		GeneratedAt: now,
		ExpiresAt:   now.Add(ttl),
	}, limit)

	return code, nil
}

// redeemHandoverOTP consumes the newest unused code on h and completes the handover.
// Older codes are never accepted, and a failed attempt leaves h untouched.
func redeemHandoverOTP(h *entity.Handover, otp string, now time.Time) error {
	latest := h.LatestUnusedOTP()
	if latest == nil {
		return domainerrors.ErrOTPInvalid.WithDetails("no active handover code, generate a new one")
	}
	if !now.Before(latest.ExpiresAt) {
		return domainerrors.ErrOTPExpired
	}
	if !otpMatches(latest.OTP, otp) {
		return domainerrors.ErrOTPInvalid
	}

	latest.Used = true
	latest.UsedAt = &now
	h.Status = entity.HandoverCompleted
	h.CompletedAt = &now

	return nil
}

// nextNumber allocates the next document number for prefix on the day of at.
func nextNumber(ctx context.Context, seqRepo repository.SequenceRepository, prefix entity.NumberPrefix, at time.Time) (string, error) {
	seq, err := seqRepo.Next(ctx, entity.SequenceKey(prefix, at))
	if err != nil {
		return "", errors.Wrapf(err, "failed to allocate %s number", prefix)
	}

	return entity.FormatNumber(prefix, at, seq), nil
}

func newPage[T any](items []T, total int64, page entity.PageRequest) *entity.Page[T] {
	if items == nil {
		items = []T{}
	}

	return &entity.Page[T]{
		Items:      items,
		Pagination: entity.NewPagination(total, page.Page, page.Limit),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func errAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

// compactStrings trims values and drops the empty ones.
func compactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
