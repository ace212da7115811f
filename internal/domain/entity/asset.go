package entity

import "github.com/shopspring/decimal"

// Estados válidos de un Asset.
const (
	AssetActive   = "ACTIVE"
	AssetInRepair = "IN_REPAIR"
	AssetRetired  = "RETIRED"
	AssetLost     = "LOST"
)

// AssetStatuses lista los estados en el orden en que se muestran.
var AssetStatuses = []string{AssetActive, AssetInRepair, AssetRetired, AssetLost}

// DateLayout formato de las fechas de calendario que intercambia el backend (inspecciones, cumplimiento).
const DateLayout = "2006-01-02"

// Asset es un equipo trazable con fechas de inspección y cumplimiento, asignado a un usuario y ubicación.
// Las fechas viajan como texto YYYY-MM-DD; vacío significa sin fecha.
type Asset struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	SerialNumber   string          `json:"serialNumber"`
	CategoryID     int64           `json:"categoryId"`
	SubCategoryID  int64           `json:"subCategoryId"`
	AssignedUserID int64           `json:"assignedUserId"`
	Location       string          `json:"location"`
	Status         string          `json:"status"`
	PurchaseCost   decimal.Decimal `json:"purchaseCost"`
	LastInspection string          `json:"lastInspection"`
	NextInspection string          `json:"nextInspection"`
	ComplianceDue  string          `json:"complianceDue"`
}
