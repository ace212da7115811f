package entity

// Role agrega un conjunto de Permissions; los usuarios referencian un Role.
type Role struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PermissionIDs []int64 `json:"permissionIds"`
}

// Permission es un permiso atómico que se asigna a roles.
type Permission struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
