// Package auth implements the account and session orchestrator
package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hearthforge/sheet-api/internal/errors"
	"github.com/hearthforge/sheet-api/internal/pkg/clock"
	usersrepo "github.com/hearthforge/sheet-api/internal/repositories/users"
	"github.com/hearthforge/sheet-api/internal/services/auth"
)

const (
	defaultTokenTTL = 24 * time.Hour

	minPasswordLength = 8
	maxUsernameLength = 64

	// Login failures collapse to one message so usernames cannot be
	// probed.
	errBadCredentials = "invalid username or password"
)

// Config holds the dependencies for the auth orchestrator
type Config struct {
	UsersRepo usersrepo.Repository
	JWTSecret []byte
	TokenTTL  time.Duration
	Clock     clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.UsersRepo == nil {
		vb.RequiredField("UsersRepo")
	}
	if len(c.JWTSecret) == 0 {
		vb.RequiredField("JWTSecret")
	}

	return vb.Build()
}

// Orchestrator implements the auth.Service interface
type Orchestrator struct {
	usersRepo usersrepo.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
	clock     clock.Clock
}

// New creates a new auth orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		usersRepo: cfg.UsersRepo,
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  ttl,
		clock:     c,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ auth.Service = (*Orchestrator)(nil)

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Register creates an account with a bcrypt-hashed credential
func (o *Orchestrator) Register(ctx context.Context, input *auth.RegisterInput) (*auth.RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	username := strings.TrimSpace(input.Username)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("username", username, vb)
	errors.ValidateMaxLength("username", username, maxUsernameLength, vb)
	errors.ValidateMinLength("password", input.Password, minPasswordLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to hash password")
	}

	_, err = o.usersRepo.Create(ctx, usersrepo.CreateInput{
		User: &usersrepo.User{
			Username:     username,
			PasswordHash: string(hash),
		},
	})
	if err != nil {
		return nil, err
	}

	token, err := o.issueToken(username)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "registered user", "username", username)

	return &auth.RegisterOutput{Username: username, Token: token}, nil
}

// Login verifies credentials and issues a session token
func (o *Orchestrator) Login(ctx context.Context, input *auth.LoginInput) (*auth.LoginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, errors.Unauthenticated(errBadCredentials)
	}

	out, err := o.usersRepo.Get(ctx, usersrepo.GetInput{Username: username})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthenticated(errBadCredentials)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(out.User.PasswordHash), []byte(input.Password)) != nil {
		return nil, errors.Unauthenticated(errBadCredentials)
	}

	token, err := o.issueToken(username)
	if err != nil {
		return nil, err
	}

	return &auth.LoginOutput{Username: username, Token: token}, nil
}

// VerifyToken checks a session token and resolves its username
func (o *Orchestrator) VerifyToken(_ context.Context, input *auth.VerifyTokenInput) (*auth.VerifyTokenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	raw := strings.TrimSpace(input.Token)
	if raw == "" {
		return nil, errors.Unauthenticated("token is required")
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return o.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(o.clock.Now),
	)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnauthenticated, "invalid session token")
	}
	if claims.Username == "" {
		return nil, errors.Unauthenticated("invalid session token")
	}

	return &auth.VerifyTokenOutput{Username: claims.Username}, nil
}

func (o *Orchestrator) issueToken(username string) (string, error) {
	now := o.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(o.tokenTTL)),
		},
		Username: username,
	})

	signed, err := token.SignedString(o.jwtSecret)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign session token")
	}
	return signed, nil
}
