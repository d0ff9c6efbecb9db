package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// SessionConfig parámetros de las sesiones emitidas por el use case.
type SessionConfig struct {
	TTLMinutes int
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y usuario actual.
// El registro y el login emiten una sesión persistida (token opaco para la cookie).
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	sessionCfg  SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, sessionCfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessionRepo: sessionRepo, sessionCfg: sessionCfg}
}

// Register crea un usuario (password hasheado con bcrypt) y abre sesión de inmediato.
// Devuelve domain.ErrUsernameAlreadyExists si el username ya está tomado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, *entity.Session, error) {
	if in.Username == "" || in.Password == "" {
		return nil, nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrInvalidInput)
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrUsernameAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	// El unique de la base cubre la carrera entre el pre-chequeo y el insert.
	if err := uc.userRepo.Create(user); err != nil {
		return nil, nil, err
	}
	session, err := uc.openSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return toUserResponse(user), session, nil
}

// Login verifica username/password y abre una sesión nueva.
// Username desconocido y password incorrecto responden igual (ErrUnauthorized).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UserResponse, *entity.Session, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, domain.ErrUnauthorized
	}
	session, err := uc.openSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return toUserResponse(user), session, nil
}

// Logout invalida la sesión. Un token ya inexistente no es error.
func (uc *AuthUseCase) Logout(sessionID string) error {
	return uc.sessionRepo.Delete(sessionID)
}

// CurrentUser devuelve el usuario de la sesión autenticada.
func (uc *AuthUseCase) CurrentUser(userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) openSession(userID int64) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(time.Duration(uc.sessionCfg.TTLMinutes) * time.Minute),
		CreatedAt: now,
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
