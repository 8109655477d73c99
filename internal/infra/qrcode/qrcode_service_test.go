package qrcode

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petwelfare/config"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestRecoveryLevel(t *testing.T) {
	tests := map[string]qrcode.RecoveryLevel{
		"L":       qrcode.Low,
		"m":       qrcode.Medium,
		"Q":       qrcode.High,
		"H":       qrcode.Highest,
		"invalid": qrcode.Medium,
	}
	for input, want := range tests {
		assert.Equal(t, want, recoveryLevel(input), input)
	}
}

func TestQRCodeService_Encode(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "")

		png, err := service.Encode("ADC-20260101-0001")
		require.NoError(t, err)
		assert.Equal(t, pngMagic, png[:4])
	}
}

func TestQRCodeService_EncodeEmpty(t *testing.T) {
	_, err := NewQRCodeService(256, "M", "").Encode("")
	assert.Error(t, err)
}

func TestQRCodeService_Link(t *testing.T) {
	withBase := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 200, BaseURL: "https://pets.example.com/"}})
	assert.Equal(t, "https://pets.example.com/verify/ADC-1", withBase.Link("/verify/ADC-1"))

	withoutBase := New(&config.Config{})
	assert.Equal(t, "RES-20260101-0003", withoutBase.Link("RES-20260101-0003"))
}
