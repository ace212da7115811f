package dto

// UserRequest entrada para crear o actualizar un usuario desde administración.
// No lleva contraseña: las credenciales las emite el backend.
type UserRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	FullName string `json:"fullName" form:"full_name" validate:"required,max=120"`
	RoleID   int64  `json:"roleId" form:"role_id" validate:"required,min=1"`
	Status   string `json:"status" form:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// RoleRequest entrada para crear o actualizar un rol con su conjunto de permisos.
type RoleRequest struct {
	Name          string  `json:"name" form:"name" validate:"required,max=50"`
	Description   string  `json:"description" form:"description" validate:"max=255"`
	PermissionIDs []int64 `json:"permissionIds" form:"permission_ids" validate:"required,min=1,dive,min=1"`
}

// PermissionRequest entrada para crear o actualizar un permiso.
type PermissionRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=80"`
	Description string `json:"description" form:"description" validate:"max=255"`
}
