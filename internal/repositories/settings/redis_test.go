package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	settingsrepo "github.com/The-Night7/bofuri-mj/internal/repositories/settings"
	"github.com/The-Night7/bofuri-mj/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    settingsrepo.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := settingsrepo.NewRedis(&settingsrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	_, err := s.repo.Save(s.ctx, settingsrepo.SaveInput{
		Settings: &entities.Settings{VITDivisor: 32},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, settingsrepo.GetInput{})
	s.Require().NoError(err)
	s.Equal(32.0, got.Settings.VITDivisor)
}

func (s *RedisRepositoryTestSuite) TestSaveReplaces() {
	_, err := s.repo.Save(s.ctx, settingsrepo.SaveInput{
		Settings: &entities.Settings{VITDivisor: 32},
	})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, settingsrepo.SaveInput{
		Settings: &entities.Settings{VITDivisor: 50},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, settingsrepo.GetInput{})
	s.Require().NoError(err)
	s.Equal(50.0, got.Settings.VITDivisor)
}

func (s *RedisRepositoryTestSuite) TestSaveNil() {
	_, err := s.repo.Save(s.ctx, settingsrepo.SaveInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetBeforeSave() {
	_, err := s.repo.Get(s.ctx, settingsrepo.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
