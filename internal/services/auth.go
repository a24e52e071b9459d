package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fitness-tracker/internal/logger"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
	"github.com/sbilibin2017/fitness-tracker/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, username, email, passwordHash string) (*models.UserDB, error)
}

// UserCache caches users looked up by ID.
type UserCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(digest, password string) bool
}

// AuthService handles registration, login and resolving token identities.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	cache     UserCache
	jwt       JWTGenerator
	hasher    PasswordHasher
	dummyHash string
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(reader UserReader, writer UserWriter, cache UserCache, jwt JWTGenerator, hasher PasswordHasher) *AuthService {
	// compared against on unknown emails so both login failures cost the same
	dummyHash, _ := hasher.Hash(uuid.NewString())

	return &AuthService{
		reader:    reader,
		writer:    writer,
		cache:     cache,
		jwt:       jwt,
		hasher:    hasher,
		dummyHash: dummyHash,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and returns it together with a fresh token.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, string, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	username = strings.TrimSpace(username)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		log.Infow("user already exists", "email", email)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, uuid.New(), username, email, hashedPassword)
	if errors.Is(err, repositories.ErrDuplicateEmail) {
		return nil, "", ErrUserAlreadyExists
	}
	if err != nil {
		log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login checks credentials and returns the user with a fresh token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		svc.hasher.Compare(svc.dummyHash, password)
		log.Infow("login failed", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if !svc.hasher.Compare(user.PasswordHash, password) {
		log.Infow("login failed", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate resolves a verified token identity to a stored user.
func (svc *AuthService) Authenticate(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, userID)
		if err != nil {
			log.Warnw("user cache read failed", "userID", userID, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			log.Warnw("user cache write failed", "userID", userID, "err", err)
		}
	}

	return user, nil
}
