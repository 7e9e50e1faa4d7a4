package service

import (
	"context"
	"educonexa_backend/internal/config"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/util"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SessionUser is the user shape returned by the auth endpoints.
type SessionUser struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  model.UserRole `json:"role"`
}

func NewSessionUser(u *model.User) *SessionUser {
	if u == nil {
		return nil
	}
	return &SessionUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)
	exists, err := s.UserRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleUser,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailRegistered
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) IssueSession(userID string) (string, error) {
	return util.GenerateSessionToken(userID, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) VerifySession(token string) (string, bool) {
	return util.ParseSessionToken(token, s.Cfg.JWT.Secret)
}

// CurrentUser resolves the session token to a user. A missing or invalid
// token and a deleted user all give nil.
func (s *AuthService) CurrentUser(ctx context.Context, token string) *model.User {
	userID, ok := s.VerifySession(token)
	if !ok {
		return nil
	}
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil
	}
	return user
}
