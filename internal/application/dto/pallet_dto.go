package dto

// PalletRequest entrada para crear o actualizar un pallet. El código lo asigna el backend.
type PalletRequest struct {
	StackID     int64  `json:"stackId" form:"stack_id" validate:"required,min=1"`
	Location    string `json:"location" form:"location" validate:"required,max=100"`
	Status      string `json:"status" form:"status" validate:"required,oneof=AVAILABLE STORED IN_TRANSIT DAMAGED"`
	Description string `json:"description" form:"description" validate:"max=255"`
}
