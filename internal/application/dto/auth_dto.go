package dto

// SignInRequest credenciales de inicio de sesión.
type SignInRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SignUpRequest alta de cuenta desde /create-account. La contraseña la elige la persona.
type SignUpRequest struct {
	Username        string `json:"username" form:"username" validate:"required,min=3,max=50,alphanum"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	FullName        string `json:"fullName" form:"full_name" validate:"required,max=120"`
	Password        string `json:"password" form:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"-" form:"confirm_password" validate:"required,eqfield=Password"`
}

// TokenPair tokens que devuelve el backend tras el inicio de sesión.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
