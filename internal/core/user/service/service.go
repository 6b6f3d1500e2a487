package userapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yatube/internal/core/apperror"
	userEntity "yatube/internal/core/user"
	userPort "yatube/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles signup, login and session tokens.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		logger:         logger,
	}
}

// LoginUser checks the password and issues a JWT.
func (s *UserService) LoginUser(ctx context.Context, username string, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Info("Login for unknown user", zap.String("username", username), zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Info("Invalid password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    "yatube",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// ParseToken validates a token and returns the user id it was issued for.
func (s *UserService) ParseToken(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

// RegisterUser creates an account; a taken username is a validation error.
func (s *UserService) RegisterUser(ctx context.Context, firstName, lastName, username, password string) (*userPort.UserDTO, error) {
	existingUser, err := s.UserRepository.FindByUsername(ctx, username)
	if err == nil && existingUser != nil {
		return nil, apperror.NewValidationError("username", "a user with that username already exists")
	}
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Password:  string(hashedPassword),
	}

	u, err := s.UserRepository.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("👤 User registered", zap.String("username", u.Username))
	return userPort.ToDTO(u), nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}
