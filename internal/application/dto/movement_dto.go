package dto

// MovementRequest entrada para registrar el traslado de un pallet entre stacks.
type MovementRequest struct {
	PalletCode  string `json:"palletCode" form:"pallet_code" validate:"required,max=30"`
	FromStackID int64  `json:"fromStackId" form:"from_stack_id" validate:"required,min=1"`
	ToStackID   int64  `json:"toStackId" form:"to_stack_id" validate:"required,min=1,nefield=FromStackID"`
	Operator    string `json:"operator" form:"operator" validate:"required,max=100"`
	Notes       string `json:"notes" form:"notes" validate:"max=500"`
}
