package auth

import (
	"errors"

	"StuntingCare_Backend/internal/models"
	"StuntingCare_Backend/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user no longer exists")
)

// UserFinder is the slice of the storage facade the auth flow needs.
type UserFinder interface {
	GetUserByEmail(email string) (models.User, error)
}

type Service struct {
	users  UserFinder
	secret []byte
}

func NewService(users UserFinder, secret []byte) *Service {
	return &Service{users: users, secret: secret}
}

// Login verifies the password against the stored bcrypt hash and issues a
// signed token. Lookup misses and bad passwords are indistinguishable to the
// caller.
func (s *Service) Login(email, password string) (string, models.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID, user.Email)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// Authenticate verifies the token signature and re-resolves the user, so a
// deleted account invalidates its outstanding tokens.
func (s *Service) Authenticate(tokenString string) (models.User, error) {
	claims, err := s.validateToken(tokenString)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}

	user, err := s.users.GetUserByEmail(claims.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
