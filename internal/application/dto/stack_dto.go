package dto

// StackRequest entrada para crear o actualizar un stack.
type StackRequest struct {
	Warehouse   string `json:"warehouse" form:"warehouse" validate:"required,max=50"`
	Zone        string `json:"zone" form:"zone" validate:"required,max=20"`
	Capacity    int    `json:"capacity" form:"capacity" validate:"required,min=1,max=100000"`
	Description string `json:"description" form:"description" validate:"max=255"`
}
