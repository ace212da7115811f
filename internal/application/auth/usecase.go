package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/application/ports"
	"github.com/jhoicas/assettrack-console/internal/application/service"
	"github.com/jhoicas/assettrack-console/internal/application/session"
	"github.com/jhoicas/assettrack-console/internal/domain"
	"github.com/jhoicas/assettrack-console/internal/domain/entity"
	"github.com/jhoicas/assettrack-console/pkg/jwt"
	"github.com/jhoicas/assettrack-console/pkg/logger"
)

// Rutas de autenticación del backend.
const (
	PathSignIn = "/auth/signin"
	PathSignUp = "/auth/signup"
)

// ProfileReader obtiene el perfil completo del usuario conectado.
type ProfileReader interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

// AuthUseCase casos de uso de autenticación: inicio de sesión, alta de cuenta y restauración
// de la sesión desde las cookies. No hay lógica de refresco.
type AuthUseCase struct {
	gw       ports.Gateway
	profiles ProfileReader
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gw ports.Gateway, profiles ProfileReader, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{gw: gw, profiles: profiles, log: log.Named("auth"), now: time.Now}
}

// SignIn envía las credenciales, decodifica el token de acceso (sin verificar la firma) y carga el perfil.
// Si el perfil falla la sesión sigue sin él.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*session.Session, error) {
	resp, err := uc.gw.Do(ctx, ports.Request{Method: http.MethodPost, Path: PathSignIn, Body: in})
	if err != nil {
		return nil, err
	}
	pair, err := service.DecodeItem[dto.TokenPair](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("auth: respuesta de signin: %w", err)
	}
	if pair == nil || pair.AccessToken == "" {
		return nil, fmt.Errorf("auth: signin sin token: %w", domain.ErrUnauthorized)
	}

	s, err := uc.Restore(pair.AccessToken, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	s.SignedInAt = uc.now()

	if uc.profiles != nil && s.UserID != "" {
		profile, err := uc.profiles.Get(s.Attach(ctx), s.UserID)
		if err != nil {
			uc.log.Warn().Err(err).Str("user_id", s.UserID).Msg("no se pudo cargar el perfil")
		} else {
			s.Profile = profile
			if s.Username == "" && profile != nil {
				s.Username = profile.Username
			}
		}
	}
	uc.log.Info().Str("user_id", s.UserID).Str("role", s.Role).Msg("inicio de sesión")
	return s, nil
}

// Restore reconstruye la sesión a partir de los tokens de las cookies.
func (uc *AuthUseCase) Restore(accessToken, refreshToken string) (*session.Session, error) {
	claims, err := jwt.Decode(accessToken, uc.now())
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, fmt.Errorf("auth: token vencido: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth: token inválido: %w", domain.ErrUnauthorized)
	}
	s := &session.Session{
		UserID:       claims.UserID,
		Username:     claims.Username,
		Role:         claims.Role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		s.SignedInAt = claims.IssuedAt.Time
	}
	return s, nil
}

// SignUp crea la cuenta con la contraseña elegida por la persona.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) error {
	_, err := uc.gw.Do(ctx, ports.Request{Method: http.MethodPost, Path: PathSignUp, Body: in})
	if err != nil {
		return err
	}
	uc.log.Info().Str("username", in.Username).Msg("cuenta creada")
	return nil
}
