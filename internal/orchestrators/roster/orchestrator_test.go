package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	"github.com/The-Night7/bofuri-mj/internal/orchestrators/roster"
	"github.com/The-Night7/bofuri-mj/internal/repositories/players"
	playersmock "github.com/The-Night7/bofuri-mj/internal/repositories/players/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *playersmock.MockRepository
	service  roster.Service
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = playersmock.NewMockRepository(s.ctrl)

	service, err := roster.NewOrchestrator(&roster.Config{PlayerRepo: s.mockRepo})
	s.Require().NoError(err)
	s.service = service
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := roster.NewOrchestrator(&roster.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreatePlayer() {
	p := &entities.Player{Name: "Maple", HPMax: 40, MPMax: 12}

	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input players.CreateInput) (*players.CreateOutput, error) {
			// Level defaults and current HP/MP are filled before the
			// repository sees the sheet.
			s.Equal(1, input.Player.Level)
			s.Require().NotNil(input.Player.HP)
			s.Equal(40.0, *input.Player.HP)
			return &players.CreateOutput{Player: input.Player}, nil
		})

	out, err := s.service.CreatePlayer(s.ctx, &roster.CreatePlayerInput{Player: p})
	s.Require().NoError(err)
	s.Equal("Maple", out.Player.Name)
}

func (s *OrchestratorTestSuite) TestCreatePlayerValidation() {
	_, err := s.service.CreatePlayer(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.CreatePlayer(s.ctx, &roster.CreatePlayerInput{Player: &entities.Player{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetPlayer() {
	s.mockRepo.EXPECT().
		Get(s.ctx, players.GetInput{Name: "Maple"}).
		Return(&players.GetOutput{Player: &entities.Player{Name: "Maple", HPMax: 40}}, nil)

	out, err := s.service.GetPlayer(s.ctx, &roster.GetPlayerInput{Name: "Maple"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Player.HP)
	s.Equal(40.0, *out.Player.HP)
}

func (s *OrchestratorTestSuite) TestGetPlayerNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, players.GetInput{Name: "Personne"}).
		Return(nil, errors.NotFound("player not found"))

	_, err := s.service.GetPlayer(s.ctx, &roster.GetPlayerInput{Name: "Personne"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListPlayers() {
	s.mockRepo.EXPECT().
		List(s.ctx, players.ListInput{}).
		Return(&players.ListOutput{Players: []*entities.Player{
			{Name: "Kanade", HPMax: 25},
			{Name: "Maple", HPMax: 40},
		}}, nil)

	out, err := s.service.ListPlayers(s.ctx, &roster.ListPlayersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 2)
	for _, p := range out.Players {
		s.NotNil(p.HP)
	}
}

func (s *OrchestratorTestSuite) TestRestPlayer() {
	hp := 3.0
	mp := 1.0
	stored := &entities.Player{Name: "Maple", HPMax: 40, MPMax: 12, HP: &hp, MP: &mp}

	s.mockRepo.EXPECT().
		Get(s.ctx, players.GetInput{Name: "Maple"}).
		Return(&players.GetOutput{Player: stored}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input players.UpdateInput) (*players.UpdateOutput, error) {
			s.Equal(40.0, *input.Player.HP)
			s.Equal(12.0, *input.Player.MP)
			return &players.UpdateOutput{Player: input.Player}, nil
		})

	out, err := s.service.RestPlayer(s.ctx, &roster.RestPlayerInput{Name: "Maple"})
	s.Require().NoError(err)
	s.Equal(40.0, *out.Player.HP)
}

func (s *OrchestratorTestSuite) TestDeletePlayer() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, players.DeleteInput{Name: "Maple"}).
		Return(&players.DeleteOutput{}, nil)

	_, err := s.service.DeletePlayer(s.ctx, &roster.DeletePlayerInput{Name: "Maple"})
	s.Require().NoError(err)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
