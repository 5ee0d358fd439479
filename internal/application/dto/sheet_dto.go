package dto

import "github.com/shopspring/decimal"

// ReceiveRequest body para POST /api/sheets/receive (alta de mercancía).
type ReceiveRequest struct {
	Type      string          `json:"type"`
	Thickness decimal.Decimal `json:"thickness"` // mm
	Size      string          `json:"size"`
	Location  string          `json:"location"`
	Quantity  int64           `json:"quantity"`
}

// AdjustRequest body para POST /api/sheets/:id/adjust (ajuste manual o retiro).
type AdjustRequest struct {
	Kind     string `json:"kind"` // INPUT | OUTPUT
	Quantity int64  `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// UpdateLocationRequest body para PUT /api/sheets/:id/location.
type UpdateLocationRequest struct {
	Location string `json:"location"`
}
