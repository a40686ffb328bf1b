package auth

import (
	"errors"
	"testing"

	"StuntingCare_Backend/internal/models"
	"StuntingCare_Backend/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserFinder struct {
	users map[string]models.User
}

func (f fakeUserFinder) GetUserByEmail(email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, storage.ErrUserNotFound
	}
	return user, nil
}

const (
	testEmail    = "ibu@example.com"
	testPassword = "rahasia123"
)

func testFinder(t *testing.T) fakeUserFinder {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return fakeUserFinder{users: map[string]models.User{
		testEmail: {ID: "u-1", Email: testEmail, PasswordHash: string(hash), Role: "parent"},
	}}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(testFinder(t), []byte("secret-a"))

	token, _, err := svc.Login(testEmail, "salah")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatal("no token may be issued for a wrong password")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(testFinder(t), []byte("secret-a"))

	_, _, err := svc.Login("tidak-ada@example.com", testPassword)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginAuthenticateRoundTrip(t *testing.T) {
	svc := NewService(testFinder(t), []byte("secret-a"))

	token, user, err := svc.Login(testEmail, testPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != testEmail || user.ID != "u-1" {
		t.Fatalf("unexpected user from login: %+v", user)
	}

	resolved, err := svc.Authenticate(token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if resolved.ID != user.ID || resolved.Email != user.Email {
		t.Fatalf("round trip resolved a different identity: %+v", resolved)
	}
}

func TestAuthenticateWrongSecret(t *testing.T) {
	finder := testFinder(t)
	issuer := NewService(finder, []byte("secret-a"))
	verifier := NewService(finder, []byte("secret-b"))

	token, _, err := issuer.Login(testEmail, testPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := verifier.Authenticate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticateMalformedToken(t *testing.T) {
	svc := NewService(testFinder(t), []byte("secret-a"))

	if _, err := svc.Authenticate("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticateDeletedUser(t *testing.T) {
	secret := []byte("secret-a")
	issuer := NewService(testFinder(t), secret)
	verifier := NewService(fakeUserFinder{users: map[string]models.User{}}, secret)

	token, _, err := issuer.Login(testEmail, testPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := verifier.Authenticate(token); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
