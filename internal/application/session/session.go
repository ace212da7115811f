// Package session define el contexto explícito de la sesión: quién está conectado,
// con qué rol y con qué tokens. Se crea al iniciar sesión y se descarta al cerrarla.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/assettrack-console/internal/application/ports"
	"github.com/jhoicas/assettrack-console/internal/domain/entity"
)

// Session datos de la sesión que se pasan a controladores y handlers.
type Session struct {
	UserID       string
	Username     string
	Role         string
	Profile      *entity.User // nil si el perfil no pudo cargarse
	AccessToken  string
	RefreshToken string
	SignedInAt   time.Time
	ExpiresAt    time.Time
}

// Can indica si el rol de la sesión está entre roles.
func (s *Session) Can(roles ...string) bool {
	if s == nil {
		return false
	}
	for _, r := range roles {
		if strings.EqualFold(s.Role, r) {
			return true
		}
	}
	return false
}

// IsAdmin atajo para Can(entity.RoleAdmin).
func (s *Session) IsAdmin() bool { return s.Can(entity.RoleAdmin) }

// Expired indica si el token de acceso ya venció en now.
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// DisplayName nombre visible en la cabecera.
func (s *Session) DisplayName() string {
	if s == nil {
		return ""
	}
	if s.Profile != nil && s.Profile.FullName != "" {
		return s.Profile.FullName
	}
	return s.Username
}

// Credentials tokens que se reenvían al backend.
func (s *Session) Credentials() ports.Credentials {
	if s == nil {
		return ports.Credentials{}
	}
	return ports.Credentials{AccessToken: s.AccessToken, RefreshToken: s.RefreshToken}
}

// Attach adjunta las credenciales de la sesión a ctx para las llamadas al backend.
func (s *Session) Attach(ctx context.Context) context.Context {
	return ports.WithCredentials(ctx, s.Credentials())
}
