package compendium_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	compendiumrepo "github.com/The-Night7/bofuri-mj/internal/repositories/compendium"
	"github.com/The-Night7/bofuri-mj/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    compendiumrepo.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := compendiumrepo.NewRedis(&compendiumrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testCompendium() *entities.Compendium {
	c := entities.NewCompendium()
	c.Monsters["Lapin Cornu"] = &entities.Monster{
		Name: "Lapin Cornu",
		Variants: map[int]*entities.Variant{
			1: {Level: 1, HPMax: 10, STR: 3},
		},
	}
	c.Skills["Boule de Feu"] = &entities.Skill{Name: "Boule de Feu", Cost: "5"}
	return c
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	_, err := s.repo.Save(s.ctx, compendiumrepo.SaveInput{Compendium: s.testCompendium()})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, compendiumrepo.GetInput{})
	s.Require().NoError(err)
	s.Len(got.Compendium.Monsters, 1)
	s.Len(got.Compendium.Skills, 1)
	s.Equal(10.0, got.Compendium.Monsters["Lapin Cornu"].Variants[1].HPMax)
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesSnapshot() {
	_, err := s.repo.Save(s.ctx, compendiumrepo.SaveInput{Compendium: s.testCompendium()})
	s.Require().NoError(err)

	replacement := entities.NewCompendium()
	replacement.Monsters["Loup"] = &entities.Monster{Name: "Loup", Variants: map[int]*entities.Variant{}}
	_, err = s.repo.Save(s.ctx, compendiumrepo.SaveInput{Compendium: replacement})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, compendiumrepo.GetInput{})
	s.Require().NoError(err)
	s.NotContains(got.Compendium.Monsters, "Lapin Cornu")
	s.Contains(got.Compendium.Monsters, "Loup")
}

func (s *RedisRepositoryTestSuite) TestSaveNil() {
	_, err := s.repo.Save(s.ctx, compendiumrepo.SaveInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetBeforeImport() {
	_, err := s.repo.Get(s.ctx, compendiumrepo.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, compendiumrepo.SaveInput{Compendium: s.testCompendium()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, compendiumrepo.DeleteInput{})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, compendiumrepo.GetInput{})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
