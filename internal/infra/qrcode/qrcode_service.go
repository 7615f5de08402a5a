// Package qrcode renders sign-in links as QR codes for cross-device flows:
// the link arrives by email on one device and is scanned on another.
package qrcode

import (
	"fmt"

	"beacon/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateSignInLinkQR renders a sign-in link as a PNG QR code. The link must
// carry an oobCode; rendering a dead link helps nobody.
func (s *qrcodeService) GenerateSignInLinkQR(signInLink string) ([]byte, error) {
	if _, err := service.ExtractOOBCode(signInLink); err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(signInLink, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseSignInLinkQR validates scanned QR data as a sign-in link and returns
// it for redemption.
func (s *qrcodeService) ParseSignInLinkQR(qrData string) (string, error) {
	if _, err := service.ExtractOOBCode(qrData); err != nil {
		return "", err
	}

	return qrData, nil
}
