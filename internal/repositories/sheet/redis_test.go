package sheet_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	entities "github.com/hearthforge/sheet-api/internal/entities/sheet"
	"github.com/hearthforge/sheet-api/internal/errors"
	redisclient "github.com/hearthforge/sheet-api/internal/redis"
	"github.com/hearthforge/sheet-api/internal/repositories/sheet"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client redisclient.Client
	repo   sheet.Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client, err := redisclient.NewClient(mini.Addr(), nil)
	s.Require().NoError(err)
	s.client = client

	repo, err := sheet.NewRedis(&sheet.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.mini.Close()
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoad() {
	char := entities.NewDefault()
	char.Name = "Mirabel"
	char.Abilities.DEX = 16

	_, err := s.repo.Save(s.ctx, sheet.SaveInput{Username: "alice", Character: char})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, sheet.LoadInput{Username: "alice"})
	s.Require().NoError(err)
	s.Equal("Mirabel", out.Character.Name)
	s.Equal(16, out.Character.Abilities.DEX)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	first := entities.NewDefault()
	first.Name = "First"
	_, err := s.repo.Save(s.ctx, sheet.SaveInput{Username: "alice", Character: first})
	s.Require().NoError(err)

	second := entities.NewDefault()
	second.Name = "Second"
	_, err = s.repo.Save(s.ctx, sheet.SaveInput{Username: "alice", Character: second})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, sheet.LoadInput{Username: "alice"})
	s.Require().NoError(err)
	s.Equal("Second", out.Character.Name)
}

func (s *RedisRepositoryTestSuite) TestUsersAreIsolated() {
	alice := entities.NewDefault()
	alice.Name = "Alice's Hero"
	_, err := s.repo.Save(s.ctx, sheet.SaveInput{Username: "alice", Character: alice})
	s.Require().NoError(err)

	_, err = s.repo.Load(s.ctx, sheet.LoadInput{Username: "bob"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestLoadMissing() {
	_, err := s.repo.Load(s.ctx, sheet.LoadInput{Username: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestLoadNormalizesLegacyDocument() {
	// A document written by an older build: scalar class fields and a
	// plain spells string instead of the spellcasting block.
	legacy := `{"name":"Old Timer","class":"Wizard","subclass":"Evocation","level":5,"spells":"fireball, shield"}`
	s.Require().NoError(s.mini.Set("dnd_data_alice", legacy))

	out, err := s.repo.Load(s.ctx, sheet.LoadInput{Username: "alice"})
	s.Require().NoError(err)
	s.Equal("Old Timer", out.Character.Name)
	s.Require().Len(out.Character.Classes, 1)
	s.Equal("Wizard", out.Character.Classes[0].Name)
	s.Equal(5, out.Character.Classes[0].Level)
	s.Len(out.Character.Spellcasting.Slots, 9)
}

func (s *RedisRepositoryTestSuite) TestLoadCorruptDocument() {
	s.Require().NoError(s.mini.Set("dnd_data_alice", "not json at all"))

	_, err := s.repo.Load(s.ctx, sheet.LoadInput{Username: "alice"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, sheet.SaveInput{Username: "", Character: entities.NewDefault()})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, sheet.SaveInput{Username: "alice", Character: nil})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := sheet.NewRedis(&sheet.RedisConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
