package packets

import (
	"github.com/masjid-labs/muadhin/internal/model"
)

// UpdateSettingsRequest replaces the whole configuration blob. Partial
// updates are not supported; the panel always submits the full form.
type UpdateSettingsRequest struct {
	Settings model.Settings `json:"settings" binding:"required"`
}
