package packets

import (
	"github.com/masjid-labs/muadhin/internal/model"
)

// SettingsResponse returns the committed configuration plus warnings
// for any field that could not be applied (for example an oversized
// asset upload).
type SettingsResponse struct {
	Settings model.Settings `json:"settings"`
	Warnings []string       `json:"warnings,omitempty"`
}
