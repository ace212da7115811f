package dto

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=80"`
	Description string `json:"description" form:"description" validate:"max=255"`
}

// SubCategoryRequest entrada para crear o actualizar una subcategoría.
type SubCategoryRequest struct {
	CategoryID  int64  `json:"categoryId" form:"category_id" validate:"required,min=1"`
	Name        string `json:"name" form:"name" validate:"required,max=80"`
	Description string `json:"description" form:"description" validate:"max=255"`
}
