package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountSuspended     = errors.New("account is suspended")
	ErrSessionAlreadyActive = errors.New("another session is already active")
)

// Claims extends JWT standard claims with app-specific fields. Anything
// beyond identity, like the student's class, is resolved from the roster
// per request rather than baked into the token.
type Claims struct {
	jwt.RegisteredClaims
	Role      model.Role `json:"role"`
	AccountID int        `json:"account_id"`
}

// AuthService handles authentication, JWT issuance, and identity resolution.
// Resolution is parameterized by the role carried in the token: exactly one
// roster is consulted, never a fallback chain across all three.
type AuthService struct {
	cfg         *config.Config
	rdb         *redis.Client
	adminRepo   *repository.AdminRepository
	teacherRepo *repository.TeacherRepository
	studentRepo *repository.StudentRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	cfg *config.Config,
	rdb *redis.Client,
	adminRepo *repository.AdminRepository,
	teacherRepo *repository.TeacherRepository,
	studentRepo *repository.StudentRepository,
) *AuthService {
	return &AuthService{
		cfg:         cfg,
		rdb:         rdb,
		adminRepo:   adminRepo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login verifies credentials against the roster matching the requested role
// and returns a signed token plus the resolved account. Suspended accounts
// are rejected only after the password check succeeds.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, *model.Account, error) {
	var (
		account *model.Account
		hash    string
	)

	switch req.Role {
	case model.RoleAdmin:
		a, err := s.adminRepo.GetByEmail(ctx, normalizeEmail(req.Email))
		if err != nil {
			return "", nil, ErrInvalidCredentials
		}
		hash = a.PasswordHash
		account = &model.Account{ID: a.ID, Role: model.RoleAdmin, Name: a.Name, Email: a.Email, ProfileImage: a.ProfileImage, IsSuspended: a.IsSuspended}
	case model.RoleTeacher:
		t, err := s.teacherRepo.GetByEmail(ctx, normalizeEmail(req.Email))
		if err != nil {
			return "", nil, ErrInvalidCredentials
		}
		hash = t.PasswordHash
		account = &model.Account{ID: t.ID, Role: model.RoleTeacher, Name: t.Name, Email: t.Email, ProfileImage: t.ProfileImage, IsSuspended: t.IsSuspended}
	case model.RoleStudent:
		st, err := s.studentRepo.GetByEmail(ctx, normalizeEmail(req.Email))
		if err != nil {
			return "", nil, ErrInvalidCredentials
		}
		hash = st.PasswordHash
		account = &model.Account{ID: st.ID, Role: model.RoleStudent, Name: st.Name, Email: st.Email, ProfileImage: st.ProfileImage, IsSuspended: st.IsSuspended}
	default:
		return "", nil, ErrInvalidCredentials
	}

	if err := s.CheckPassword(hash, req.Password); err != nil {
		return "", nil, err
	}
	if account.IsSuspended {
		return "", nil, ErrAccountSuspended
	}

	token, err := s.generateToken(ctx, account.Role, account.ID)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// ResolveAccount resolves (role, id) to an account using the single roster
// that role names. Used by middleware on every authenticated request so a
// suspension takes effect immediately, not just at next login.
func (s *AuthService) ResolveAccount(ctx context.Context, role model.Role, id int) (*model.Account, error) {
	switch role {
	case model.RoleAdmin:
		a, err := s.adminRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &model.Account{ID: a.ID, Role: role, Name: a.Name, Email: a.Email, ProfileImage: a.ProfileImage, IsSuspended: a.IsSuspended}, nil
	case model.RoleTeacher:
		t, err := s.teacherRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &model.Account{ID: t.ID, Role: role, Name: t.Name, Email: t.Email, ProfileImage: t.ProfileImage, IsSuspended: t.IsSuspended}, nil
	case model.RoleStudent:
		st, err := s.studentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &model.Account{ID: st.ID, Role: role, Name: st.Name, Email: st.Email, ProfileImage: st.ProfileImage, IsSuspended: st.IsSuspended}, nil
	}
	return nil, fmt.Errorf("unknown role %q", role)
}

// generateToken creates a signed JWT. Students additionally get a
// single-device session registered in Redis; a second login while a
// session is active is rejected.
func (s *AuthService) generateToken(ctx context.Context, role model.Role, accountID int) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	if role == model.RoleStudent {
		// SetNX makes claiming the session a single atomic step, so two
		// concurrent logins cannot both get a token.
		sessionKey := config.CacheKey.StudentSessionKey(accountID)
		claimed, err := s.rdb.SetNX(ctx, sessionKey, jti, s.cfg.JWTExpiry).Result()
		if err != nil {
			return "", fmt.Errorf("claim session: %w", err)
		}
		if !claimed {
			return "", ErrSessionAlreadyActive
		}
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(accountID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		Role:      role,
		AccountID: accountID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("invalid role in token: %q", claims.Role)
	}
	return claims, nil
}

// ClearStudentSession removes a student's active session, used on logout
// and by the admin session-reset endpoint.
func (s *AuthService) ClearStudentSession(ctx context.Context, studentID int) error {
	return s.rdb.Del(ctx, config.CacheKey.StudentSessionKey(studentID)).Err()
}
