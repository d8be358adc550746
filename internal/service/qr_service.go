package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Fakedev-cmd/botforge-services.it/internal/config"
)

const (
	defaultQRSize   = "300"
	defaultQRFormat = "png"
)

// QRService builds image URLs against the third-party QR service. No image
// work happens locally; the client follows the returned URL.
type QRService struct {
	baseURL string
}

// NewQRService constructs the service.
func NewQRService(cfg config.QRConfig) *QRService {
	return &QRService{baseURL: strings.TrimRight(cfg.BaseURL, "?")}
}

// QRResult carries the delegated URL and the resolved parameters.
type QRResult struct {
	URL     string
	Content string
	Size    string
	Format  string
}

// Generate resolves defaults and assembles the delegation URL.
func (s *QRService) Generate(content, size, format string) QRResult {
	if size == "" {
		size = defaultQRSize
	}
	if format == "" {
		format = defaultQRFormat
	}
	qrURL := fmt.Sprintf("%s?size=%sx%s&data=%s&format=%s",
		s.baseURL, size, size, url.QueryEscape(content), format)
	return QRResult{URL: qrURL, Content: content, Size: size, Format: format}
}
