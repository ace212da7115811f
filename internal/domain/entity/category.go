package entity

// Category agrupa assets; las subcategorías cuelgan de una categoría.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SubCategory pertenece a una Category.
type SubCategory struct {
	ID           int64  `json:"id"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}
