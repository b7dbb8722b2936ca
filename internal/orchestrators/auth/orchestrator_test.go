package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hearthforge/sheet-api/internal/errors"
	authorch "github.com/hearthforge/sheet-api/internal/orchestrators/auth"
	"github.com/hearthforge/sheet-api/internal/pkg/clock"
	redisclient "github.com/hearthforge/sheet-api/internal/redis"
	usersrepo "github.com/hearthforge/sheet-api/internal/repositories/users"
	authsvc "github.com/hearthforge/sheet-api/internal/services/auth"
	"github.com/hearthforge/sheet-api/internal/testutils"
)

type AuthOrchestratorTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    usersrepo.Repository
	orch    *authorch.Orchestrator
	ctx     context.Context
}

func (s *AuthOrchestratorTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())

	repo, err := usersrepo.NewRedis(&usersrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo

	orch, err := authorch.New(&authorch.Config{
		UsersRepo: repo,
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	})
	s.Require().NoError(err)
	s.orch = orch

	s.ctx = context.Background()
}

func (s *AuthOrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *AuthOrchestratorTestSuite) TestRegisterLoginRoundTrip() {
	reg, err := s.orch.Register(s.ctx, &authsvc.RegisterInput{
		Username: "alice",
		Password: "correct horse battery",
	})
	s.Require().NoError(err)
	s.Equal("alice", reg.Username)
	s.NotEmpty(reg.Token)

	login, err := s.orch.Login(s.ctx, &authsvc.LoginInput{
		Username: "alice",
		Password: "correct horse battery",
	})
	s.Require().NoError(err)
	s.NotEmpty(login.Token)

	verified, err := s.orch.VerifyToken(s.ctx, &authsvc.VerifyTokenInput{Token: login.Token})
	s.Require().NoError(err)
	s.Equal("alice", verified.Username)
}

func (s *AuthOrchestratorTestSuite) TestRegisterStoresHashNotPassword() {
	_, err := s.orch.Register(s.ctx, &authsvc.RegisterInput{
		Username: "alice",
		Password: "correct horse battery",
	})
	s.Require().NoError(err)

	stored, err := s.repo.Get(s.ctx, usersrepo.GetInput{Username: "alice"})
	s.Require().NoError(err)
	s.NotEqual("correct horse battery", stored.User.PasswordHash)
	s.Contains(stored.User.PasswordHash, "$2")
}

func (s *AuthOrchestratorTestSuite) TestRegisterDuplicate() {
	input := &authsvc.RegisterInput{Username: "alice", Password: "correct horse battery"}
	_, err := s.orch.Register(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.orch.Register(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *AuthOrchestratorTestSuite) TestRegisterValidation() {
	_, err := s.orch.Register(s.ctx, &authsvc.RegisterInput{Username: "", Password: "correct horse battery"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.Register(s.ctx, &authsvc.RegisterInput{Username: "alice", Password: "short"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *AuthOrchestratorTestSuite) TestLoginWrongPassword() {
	_, err := s.orch.Register(s.ctx, &authsvc.RegisterInput{
		Username: "alice",
		Password: "correct horse battery",
	})
	s.Require().NoError(err)

	_, err = s.orch.Login(s.ctx, &authsvc.LoginInput{Username: "alice", Password: "wrong"})
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
}

func (s *AuthOrchestratorTestSuite) TestLoginUnknownUserIndistinguishable() {
	_, err := s.orch.Login(s.ctx, &authsvc.LoginInput{Username: "nobody", Password: "whatever"})
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
	s.Equal("invalid username or password", errors.GetMessage(err))
}

func (s *AuthOrchestratorTestSuite) TestVerifyTokenGarbage() {
	_, err := s.orch.VerifyToken(s.ctx, &authsvc.VerifyTokenInput{Token: "not.a.jwt"})
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
}

func (s *AuthOrchestratorTestSuite) TestVerifyTokenWrongSecret() {
	other, err := authorch.New(&authorch.Config{
		UsersRepo: s.repo,
		JWTSecret: []byte("different-secret"),
	})
	s.Require().NoError(err)

	reg, err := s.orch.Register(s.ctx, &authsvc.RegisterInput{
		Username: "alice",
		Password: "correct horse battery",
	})
	s.Require().NoError(err)

	_, err = other.VerifyToken(s.ctx, &authsvc.VerifyTokenInput{Token: reg.Token})
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
}

func (s *AuthOrchestratorTestSuite) TestVerifyTokenExpired() {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	issuer, err := authorch.New(&authorch.Config{
		UsersRepo: s.repo,
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
		Clock:     &clock.Fixed{T: issued},
	})
	s.Require().NoError(err)

	reg, err := issuer.Register(s.ctx, &authsvc.RegisterInput{
		Username: "alice",
		Password: "correct horse battery",
	})
	s.Require().NoError(err)

	verifier, err := authorch.New(&authorch.Config{
		UsersRepo: s.repo,
		JWTSecret: []byte("test-secret"),
		Clock:     &clock.Fixed{T: issued.Add(2 * time.Hour)},
	})
	s.Require().NoError(err)

	_, err = verifier.VerifyToken(s.ctx, &authsvc.VerifyTokenInput{Token: reg.Token})
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
}

func (s *AuthOrchestratorTestSuite) TestConfigValidation() {
	_, err := authorch.New(&authorch.Config{JWTSecret: []byte("x")})
	s.True(errors.IsInvalidArgument(err))

	_, err = authorch.New(&authorch.Config{UsersRepo: s.repo})
	s.True(errors.IsInvalidArgument(err))
}

func TestAuthOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(AuthOrchestratorTestSuite))
}
