package entity

import "time"

// Estados válidos de un Pallet.
const (
	PalletAvailable = "AVAILABLE"
	PalletStored    = "STORED"
	PalletInTransit = "IN_TRANSIT"
	PalletDamaged   = "DAMAGED"
)

// PalletStatuses lista los estados en el orden en que se muestran.
var PalletStatuses = []string{PalletAvailable, PalletStored, PalletInTransit, PalletDamaged}

// Pallet es una unidad física movible identificada por código (ej. PAL-001), asignado por el backend.
type Pallet struct {
	Code        string    `json:"code"`
	StackID     int64     `json:"stackId"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
