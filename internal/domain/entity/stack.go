package entity

import "time"

// Stack representa un espacio (slot/zona) de almacenamiento con capacidad, independiente de los pallets que contiene.
type Stack struct {
	ID          int64     `json:"id"`
	Warehouse   string    `json:"warehouse"`
	Zone        string    `json:"zone"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
