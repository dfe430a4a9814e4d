package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "go-payledger/internal/auth/errors"
	"go-payledger/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (AuthResponse, error)
	RegisterStaff(ctx context.Context, businessID string, req RegisterStaffRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RegisterOwner creates the business root: the owner's user ID doubles as
// the business ID every other record in the tenant is scoped by.
func (s *service) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (AuthResponse, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	id := uuid.New()
	user := &User{
		ID:         id,
		BusinessID: id,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hash),
		Role:       rbac.RoleOwner,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResponse{}, err
	}

	return mapToAuthResponse(*user), nil
}

func (s *service) RegisterStaff(ctx context.Context, businessID string, req RegisterStaffRequest) (AuthResponse, error) {
	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrForbidden
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		BusinessID: businessUUID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hash),
		Role:       req.Role,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResponse{}, err
	}

	return mapToAuthResponse(*user), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := generateToken(user, 15*time.Minute)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := generateToken(user, 7*24*time.Hour)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         mapToAuthResponse(*user),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrUserNotFound
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AuthResponse{}, autherrors.ErrUserNotFound
	}

	return mapToAuthResponse(*user), nil
}

func generateToken(user *User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"business_id": user.BusinessID.String(),
		"role":        user.Role,
		"exp":         time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthResponse(user User) AuthResponse {
	return AuthResponse{
		ID:         user.ID.String(),
		BusinessID: user.BusinessID.String(),
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
	}
}
