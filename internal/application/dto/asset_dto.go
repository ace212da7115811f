package dto

import "github.com/shopspring/decimal"

// AssetRequest entrada para crear o actualizar un asset. El código lo asigna el backend.
type AssetRequest struct {
	Name           string          `json:"name" form:"name" validate:"required,max=120"`
	SerialNumber   string          `json:"serialNumber" form:"serial_number" validate:"max=80"`
	CategoryID     int64           `json:"categoryId" form:"category_id" validate:"required,min=1"`
	SubCategoryID  int64           `json:"subCategoryId" form:"sub_category_id" validate:"required,min=1"`
	AssignedUserID int64           `json:"assignedUserId,omitempty" form:"assigned_user_id" validate:"omitempty,min=1"`
	Location       string          `json:"location" form:"location" validate:"required,max=100"`
	Status         string          `json:"status" form:"status" validate:"required,oneof=ACTIVE IN_REPAIR RETIRED LOST"`
	PurchaseCost   decimal.Decimal `json:"purchaseCost" form:"purchase_cost" validate:"min=0"`
	LastInspection string          `json:"lastInspection,omitempty" form:"last_inspection" validate:"omitempty,datetime=2006-01-02"`
	NextInspection string          `json:"nextInspection,omitempty" form:"next_inspection" validate:"omitempty,datetime=2006-01-02"`
	ComplianceDue  string          `json:"complianceDue,omitempty" form:"compliance_due" validate:"omitempty,datetime=2006-01-02"`
}
