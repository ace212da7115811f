package entity

import "time"

// Movement registra el traslado de un pallet de un stack a otro.
type Movement struct {
	ID          int64     `json:"id"`
	PalletCode  string    `json:"palletCode"`
	FromStackID int64     `json:"fromStackId"`
	ToStackID   int64     `json:"toStackId"`
	Operator    string    `json:"operator"`
	Notes       string    `json:"notes"`
	MovedAt     time.Time `json:"movedAt"`
}
