package service

import (
	"context"
	stderrors "errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"peerswipe/internal/auth"
	"peerswipe/internal/errors"
	"peerswipe/internal/model"
	"peerswipe/internal/pseudonym"
	"peerswipe/internal/repository"
)

const (
	bcryptCost = 10
	// maxPseudonymAttempts bounds the retry loop for a free pseudonym. The
	// generator draws from about half a million names, so a miss this long
	// only happens once the table is close to full.
	maxPseudonymAttempts = 20
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.Unauthenticated("Invalid credentials")
	// ErrUserAlreadyExists is returned when trying to register an existing email.
	ErrUserAlreadyExists = errors.Validation("Email already used")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.Unauthenticated("Invalid or expired refresh token")
	// ErrUnauthenticated is returned when an access token no longer maps to a user.
	ErrUnauthenticated = errors.Unauthenticated("Unauthenticated")
)

// TokenPair is issued on register and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string, access *auth.Claims) error
	// Authenticate turns validated access-token claims into the caller's principal.
	Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	users      UserService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	names      pseudonym.Generator
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	users UserService,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	names pseudonym.Generator,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		names:      names,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with hashed password and a fresh pseudonym.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, *TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, nil, errors.Validation("Email and password required")
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, nil, ErrUserAlreadyExists
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, errors.Unexpected("check user existence", err)
	}

	name, err := s.freePseudonym(ctx)
	if err != nil {
		return nil, nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, nil, errors.Unexpected("hash password", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Pseudonym:    name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race on the email or pseudonym index
			return nil, nil, ErrUserAlreadyExists
		}
		return nil, nil, errors.Unexpected("create user", err)
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *authService) freePseudonym(ctx context.Context) (string, error) {
	for i := 0; i < maxPseudonymAttempts; i++ {
		name := s.names.Generate()
		taken, err := s.userRepo.PseudonymExists(ctx, name)
		if err != nil {
			return "", errors.Unexpected("check pseudonym", err)
		}
		if !taken {
			return name, nil
		}
	}
	return "", errors.Unexpected("generate pseudonym", stderrors.New("no free pseudonym"))
}

// Login authenticates a user and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, nil, errors.Validation("Email and password required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, errors.Unexpected("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *authService) issueTokens(ctx context.Context, user *model.User) (*TokenPair, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Unexpected("generate access token", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.Unexpected("generate refresh token", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, auth.RefreshTokenExpiry); err != nil {
		return nil, errors.Unexpected("store refresh token", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	storedUserID, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil || storedUserID != claims.UserID {
		return "", ErrInvalidRefreshToken
	}

	if _, err := s.users.GetUser(ctx, claims.UserID); err != nil {
		if errors.Is(err, errors.KindNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return "", errors.Unexpected("generate access token", err)
	}
	return accessToken, nil
}

// Logout revokes the refresh token and, when known, blacklists the access
// token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, refreshToken string, access *auth.Claims) error {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}

	if err := s.tokenStore.DeleteRefreshToken(ctx, claims.ID); err != nil {
		return errors.Unexpected("delete refresh token", err)
	}

	if access != nil && access.ID != "" {
		if err := s.tokenStore.BlacklistAccessToken(ctx, access.ID, s.jwtService.RemainingTTL(access)); err != nil {
			return errors.Unexpected("blacklist access token", err)
		}
	}
	return nil
}

// Authenticate resolves access-token claims to a live user. Blacklisted
// tokens and deleted users are unauthenticated.
func (s *authService) Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	if claims == nil {
		return nil, ErrUnauthenticated
	}

	blacklisted, err := s.tokenStore.IsAccessTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, errors.Unexpected("check token blacklist", err)
	}
	if blacklisted {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errors.KindNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
