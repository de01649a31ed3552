package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pricepal/pricepal-server/internal/domain/entity"
	"github.com/pricepal/pricepal-server/internal/domain/repository"
	"github.com/pricepal/pricepal-server/internal/infrastructure/logger"
	"golang.org/x/crypto/bcrypt"
)

// Auth failure modes surfaced to the HTTP layer.
var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles account creation and credential checking.
type AuthService struct {
	users         repository.UserRepository
	jwtSecret     []byte
	tokenDuration time.Duration
	logger        logger.Logger
	now           func() time.Time
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, jwtSecret string, log logger.Logger) *AuthService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &AuthService{
		users:         users,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour,
		logger:        log,
		now:           time.Now,
	}
}

// SignUp registers a new account with a bcrypt-hashed password.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*entity.User, error) {
	if email == "" {
		return nil, &entity.ValidationError{Field: "email", Reason: "email must not be blank"}
	}
	if password == "" {
		return nil, &entity.ValidationError{Field: "password", Reason: "password must not be blank"}
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking user existence: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
		CreatedAt:    s.now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info("User signed up", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}

// Login verifies credentials and issues an HS256 JWT. The returned expiry
// is in seconds.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, int, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error getting user: %w", err)
	}
	if user == nil {
		return nil, "", 0, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", 0, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error generating token: %w", err)
	}

	return user, token, int(s.tokenDuration.Seconds()), nil
}

func (s *AuthService) generateJWT(user *entity.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": now.Add(s.tokenDuration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
