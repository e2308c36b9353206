// Package qrcode renders topic share codes.
package qrcode

import (
	"net/url"
	"strings"

	"bookclub/config"
	"bookclub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// New builds the service from the share section of the config.
func New(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.Share.BaseURL, cfg.Share.Size, cfg.Share.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
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
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// TopicLink joins the base URL and the escaped topic id.
func (s *qrcodeService) TopicLink(topicID string) string {
	return s.baseURL + "/" + url.PathEscape(topicID)
}

// GenerateTopicQR renders the topic link as a PNG.
func (s *qrcodeService) GenerateTopicQR(topicID string) ([]byte, error) {
	if topicID == "" {
		return nil, errors.New("topic id is required")
	}

	qrCode, err := qrcode.New(s.TopicLink(topicID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseTopicLink accepts only links under the configured base URL.
func (s *qrcodeService) ParseTopicLink(link string) (string, error) {
	rest, found := strings.CutPrefix(strings.TrimSpace(link), s.baseURL+"/")
	if !found {
		return "", errors.Errorf("link is not a topic link: %s", link)
	}

	rest, _, _ = strings.Cut(rest, "?")
	if rest == "" || strings.Contains(rest, "/") {
		return "", errors.Errorf("invalid topic link: %s", link)
	}

	topicID, err := url.PathUnescape(rest)
	if err != nil {
		return "", errors.Wrap(err, "failed to unescape topic id")
	}

	return topicID, nil
}
