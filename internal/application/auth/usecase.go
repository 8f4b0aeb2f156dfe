// Package auth implementa el inicio de sesión del panel. El login no pide
// contraseña: identifica al usuario por username y rol, y el rol solo decide
// qué pestañas del panel puede ver. La "sesión" es el usuario actual
// persistido en el almacén, más un JWT para las peticiones del API.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/domain"
	"github.com/khakhra/business-manager/internal/domain/access"
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/repository"
	"github.com/khakhra/business-manager/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, logout y restauración
// de sesión.
type AuthUseCase struct {
	store  repository.RecordStore
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store repository.RecordStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: store, jwtCfg: jwtCfg}
}

// Login identifica al usuario por username y rol. Si el username no existe
// se crea un usuario nuevo con ese rol al vuelo: no hay registro previo.
// Un username conocido con un rol distinto al registrado es rechazado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}

	var user *entity.User
	for _, u := range uc.store.Users(ctx) {
		if u.Username == in.Username {
			if u.Role != in.Role {
				return nil, domain.ErrUnauthorized
			}
			found := u
			user = &found
			break
		}
	}
	if user == nil {
		user = &entity.User{
			ID:       uuid.New().String(),
			Username: in.Username,
			Role:     in.Role,
			Name:     in.Username,
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.store.SaveSession(ctx, *user); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
		Tabs:  tabLabels(user.Role),
	}, nil
}

// Logout borra el marcador de sesión persistido.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.store.ClearSession(ctx)
}

// Session restaura la sesión persistida. Sin sesión vigente devuelve
// domain.ErrNoSession.
func (uc *AuthUseCase) Session(ctx context.Context) (*dto.SessionResponse, error) {
	user, err := uc.store.Session(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNoSession
	}
	return &dto.SessionResponse{
		User: toUserResponse(user),
		Tabs: tabLabels(user.Role),
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}

// tabLabels convierte las pestañas permitidas del rol a strings para el API.
func tabLabels(role string) []string {
	tabs := access.TabsFor(role)
	out := make([]string, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, string(t))
	}
	return out
}
