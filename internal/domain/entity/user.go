package entity

// Roles que emite el backend en el claim "role".
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
	RoleViewer   = "VIEWER"
)

// Estados válidos para User.
const (
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
)

// UserStatuses lista los estados en el orden en que se muestran.
var UserStatuses = []string{UserActive, UserInactive}

// User representa un usuario de la consola; referencia un Role por id.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	RoleID   int64  `json:"roleId"`
	RoleName string `json:"roleName,omitempty"`
	Status   string `json:"status"`
}
