package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frahmantamala/smart-records/internal"
	userDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/user"
)

type Repository interface {
	GetByUsername(username string) (*userDatamodel.User, error)
	UsernameExists(username string) (bool, error)
	CreateUser(username, passwordHash string) (int64, error)
}

type TokenGenerator interface {
	GenerateToken(session *Session) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Service verifies credentials, registers accounts and tracks the single
// currently-authenticated session. The session field mirrors the one-user
// desktop semantics; the mutex is only there because the HTTP layer may
// call in concurrently.
type Service struct {
	repo     Repository
	tokenGen TokenGenerator
	logger   *slog.Logger

	mu             sync.Mutex
	currentSession *Session
}

func NewService(repo Repository, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		tokenGen: tokenGen,
		logger:   logger,
	}
}

// Register creates a new account. The username is trimmed and checked for
// existence before the insert so a duplicate surfaces as a clean conflict,
// not a raw constraint violation. Persistence failures are caught and
// returned; registration never panics past this boundary.
func (s *Service) Register(username, password string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return internal.NewValidationError("Username is required", internal.ErrCodeFieldRequired)
	}
	if len(password) < 8 {
		return internal.NewValidationError("Password must be at least 8 characters long", internal.ErrCodePasswordTooShort)
	}

	exists, err := s.repo.UsernameExists(trimmed)
	if err != nil {
		s.logger.Error("registration lookup failed", "error", err)
		return internal.NewQueryError("Registration failed", err)
	}
	if exists {
		return internal.ErrUsernameTaken
	}

	if _, err := s.repo.CreateUser(trimmed, HashPassword(password)); err != nil {
		s.logger.Error("registration insert failed", "username", trimmed, "error", err)
		return internal.NewQueryError("Registration failed", err)
	}

	s.logger.Info("user registered", "username", trimmed)
	return nil
}

// Login verifies credentials and establishes the current session. Unknown
// username and wrong password return the same generic failure so callers
// cannot enumerate accounts.
func (s *Service) Login(username, password string) (*Session, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, "", internal.NewValidationError("Username and password are required", internal.ErrCodeFieldRequired)
	}

	u, err := s.repo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		s.logger.Error("login lookup failed", "error", err)
		return nil, "", internal.ErrInvalidCredentials
	}
	if u == nil || u.PasswordHash != HashPassword(password) {
		return nil, "", internal.ErrInvalidCredentials
	}

	session := &Session{UserID: u.ID, Username: u.Username}

	s.mu.Lock()
	s.currentSession = session
	s.mu.Unlock()

	token, err := s.tokenGen.GenerateToken(session)
	if err != nil {
		s.logger.Error("token generation failed", "error", err)
		return nil, "", internal.NewInternalError("Login failed", err)
	}

	s.logger.Info("user logged in", "username", u.Username)
	return session, token, nil
}

// Logout clears the current session unconditionally.
func (s *Service) Logout() {
	s.mu.Lock()
	s.currentSession = nil
	s.mu.Unlock()
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentSession != nil
}

// CurrentUser returns the active session, or nil when no one is logged in.
func (s *Service) CurrentUser() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentSession
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateToken(tokenString)
}

type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTTokenGenerator issues HS256 access tokens for the REST consumers of
// the core. The core session itself lives in Service.currentSession.
type JWTTokenGenerator struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (j *JWTTokenGenerator) GenerateToken(session *Session) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   session.UserID,
		Username: session.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", session.UserID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, internal.ErrInvalidToken
}
