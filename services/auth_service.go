package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jordan10001/soramatcha-admin/pkg/sessionstore"
	"github.com/Jordan10001/soramatcha-admin/repository"
	"github.com/Jordan10001/soramatcha-admin/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// codeTTL bounds how long an authorization code issued for the callback
// exchange stays valid.
const codeTTL = 5 * time.Minute

type AuthService struct {
	admins    *repository.AdminRepository
	sessions  sessionstore.Store
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(admins *repository.AdminRepository, sessions sessionstore.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{admins: admins, sessions: sessions, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Configured() bool {
	return s.jwtSecret != "" && s.admins != nil
}

// Session is what a successful login hands back: the signed token plus its
// expiry so clients can arm their own expiry timer.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Email     string    `json:"email"`
}

// Login validates inputs before touching the gateway so predictable failures
// come back as structured results, then verifies the password and issues a
// session.
func (s *AuthService) Login(email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Message: "Invalid email format"}
	}
	if len(password) < 6 {
		return nil, &ValidationError{Message: "Password must be at least 6 characters"}
	}
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.admins.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, expiresAt, err := utils.GenerateToken(admin.ID, admin.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt, Email: admin.Email}, nil
}

// Verify checks signature, expiry and revocation.
func (s *AuthService) Verify(ctx context.Context, token string) (*utils.SessionClaims, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	claims, err := utils.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidCredential
	}
	return claims, nil
}

// SignOut revokes the session until its natural expiry. An unparseable
// token is already useless, so that case is a no-op.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	claims, err := utils.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil
	}
	return s.sessions.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// IssueCode mints a one-time authorization code for the callback exchange.
func (s *AuthService) IssueCode(ctx context.Context, token string) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	if _, err := utils.ParseToken(token, s.jwtSecret); err != nil {
		return "", err
	}
	code := uuid.NewString()
	if err := s.sessions.SaveCode(ctx, code, token, codeTTL); err != nil {
		return "", err
	}
	return code, nil
}

// ExchangeCode swaps a one-time code for its session token. A second
// exchange of the same code fails.
func (s *AuthService) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	token, err := s.sessions.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	claims, err := s.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, Email: claims.Email}, nil
}
