package dto

// QRGenerateRequest payload.
type QRGenerateRequest struct {
	Content string `json:"content" validate:"required"`
	Size    string `json:"size" validate:"omitempty,numeric"`
	Format  string `json:"format" validate:"omitempty,oneof=png svg eps jpeg gif"`
}

// QRGenerateResponse echoes the resolved parameters with the delegated URL.
type QRGenerateResponse struct {
	QRUrl   string `json:"qrUrl"`
	Content string `json:"content"`
	Size    string `json:"size"`
	Format  string `json:"format"`
}
