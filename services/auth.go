package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/masalamart/masalamart-api/models"
)

// UserStore persists customer accounts.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
}

// Mailer sends transactional email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// CredentialCache is a time-boxed key-value store for one-time credentials.
// Entries expire independently and may be lost on restart; in multi-process
// deployments a shared store replaces the in-process implementation.
type CredentialCache interface {
	Set(key, value string, ttl time.Duration)
	Get(key string) (string, bool)
	Delete(key string)
}

// AuthService handles registration, password login and the OTP handshake.
type AuthService struct {
	users  UserStore
	mailer Mailer
	otp    CredentialCache
	otpTTL time.Duration
}

// NewAuthService creates an AuthService. The mailer may be nil; emails are
// then skipped.
func NewAuthService(users UserStore, mailer Mailer, otp CredentialCache, otpTTL time.Duration) *AuthService {
	return &AuthService{users: users, mailer: mailer, otp: otp, otpTTL: otpTTL}
}

// Register creates a new account with a bcrypt-hashed password and the
// default "user" role, then sends a welcome email best-effort.
func (s *AuthService) Register(ctx context.Context, name, email, password string, address models.Address) (*models.User, error) {
	if name == "" || email == "" {
		return nil, NewValidationError("name and email are required")
	}
	if len(password) < 8 {
		return nil, NewValidationError("password must be at least 8 characters")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, NewValidationError("an account with this email already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "check existing account")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &models.User{
		UserID:    uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Address:   address,
		Role:      "user",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "insert user")
	}

	if s.mailer != nil {
		body := fmt.Sprintf("<strong>Welcome to Masala Mart, %s!</strong><br>Your spice journey starts here.", name)
		if err := s.mailer.Send(email, "Welcome to Masala Mart", body); err != nil {
			log.WithError(err).WithField("email", email).Warn("failed to send welcome email")
		}
	}
	return user, nil
}

// Login verifies the password and returns the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewAuthError("invalid email or password")
		}
		return nil, errors.Wrap(err, "find user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, NewAuthError("invalid email or password")
	}
	return user, nil
}

// RequestOTP generates a six-digit one-time code for an existing account,
// caches it under the email for the configured TTL and mails it out.
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	if email == "" {
		return NewValidationError("email is required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError("account")
		}
		return errors.Wrap(err, "find user")
	}

	code, err := generateOTP()
	if err != nil {
		return errors.Wrap(err, "generate otp")
	}
	s.otp.Set(otpKey(email), code, s.otpTTL)

	if s.mailer != nil {
		body := fmt.Sprintf("<strong>Your Masala Mart sign-in code is %s.</strong><br>It expires in %s.", code, s.otpTTL)
		if err := s.mailer.Send(email, "Your sign-in code", body); err != nil {
			return errors.Wrap(err, "send otp email")
		}
	}
	return nil
}

// VerifyOTP checks a one-time code and consumes it. A code verifies at most
// once; expired or wrong codes fail with an auth error.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*models.User, error) {
	if email == "" || code == "" {
		return nil, NewValidationError("email and code are required")
	}

	cached, ok := s.otp.Get(otpKey(email))
	if !ok || subtle.ConstantTimeCompare([]byte(cached), []byte(code)) != 1 {
		return nil, NewAuthError("credential invalid or expired")
	}
	s.otp.Delete(otpKey(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("account")
		}
		return nil, errors.Wrap(err, "find user")
	}
	return user, nil
}

func otpKey(email string) string { return "otp:" + email }

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
