package encounters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	"github.com/The-Night7/bofuri-mj/internal/repositories/encounters"
)

func testEncounter(id string) *entities.Encounter {
	return &entities.Encounter{
		ID: id,
		Participants: []*entities.Participant{
			{Side: entities.SidePlayer, Entity: &entities.RuntimeEntity{Name: "Maple", HP: 40, HPMax: 40}},
			{Side: entities.SideMob, Entity: &entities.RuntimeEntity{Name: "Loup", HP: 24, HPMax: 24}},
		},
	}
}

func TestInMemorySaveAndGet(t *testing.T) {
	repo := encounters.NewInMemory()
	ctx := context.Background()

	_, err := repo.Save(ctx, &encounters.SaveInput{Encounter: testEncounter("enc_1")})
	require.NoError(t, err)

	got, err := repo.Get(ctx, &encounters.GetInput{EncounterID: "enc_1"})
	require.NoError(t, err)
	assert.Len(t, got.Encounter.Participants, 2)

	// The store hands out copies; mutating them changes nothing.
	got.Encounter.Participants[0].Entity.HP = 0
	again, err := repo.Get(ctx, &encounters.GetInput{EncounterID: "enc_1"})
	require.NoError(t, err)
	assert.Equal(t, 40.0, again.Encounter.Participants[0].Entity.HP)
}

func TestInMemorySaveDuplicate(t *testing.T) {
	repo := encounters.NewInMemory()
	ctx := context.Background()

	_, err := repo.Save(ctx, &encounters.SaveInput{Encounter: testEncounter("enc_1")})
	require.NoError(t, err)

	_, err = repo.Save(ctx, &encounters.SaveInput{Encounter: testEncounter("enc_1")})
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestInMemoryUpdate(t *testing.T) {
	repo := encounters.NewInMemory()
	ctx := context.Background()

	_, err := repo.Save(ctx, &encounters.SaveInput{Encounter: testEncounter("enc_1")})
	require.NoError(t, err)

	e := testEncounter("enc_1")
	e.Turn = 4
	_, err = repo.Update(ctx, &encounters.UpdateInput{Encounter: e})
	require.NoError(t, err)

	got, err := repo.Get(ctx, &encounters.GetInput{EncounterID: "enc_1"})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Encounter.Turn)
}

func TestInMemoryMissing(t *testing.T) {
	repo := encounters.NewInMemory()
	ctx := context.Background()

	_, err := repo.Get(ctx, &encounters.GetInput{EncounterID: "nope"})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.Update(ctx, &encounters.UpdateInput{Encounter: testEncounter("nope")})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.Delete(ctx, &encounters.DeleteInput{EncounterID: "nope"})
	assert.True(t, errors.IsNotFound(err))
}

func TestInMemoryDelete(t *testing.T) {
	repo := encounters.NewInMemory()
	ctx := context.Background()

	_, err := repo.Save(ctx, &encounters.SaveInput{Encounter: testEncounter("enc_1")})
	require.NoError(t, err)

	_, err = repo.Delete(ctx, &encounters.DeleteInput{EncounterID: "enc_1"})
	require.NoError(t, err)

	_, err = repo.Get(ctx, &encounters.GetInput{EncounterID: "enc_1"})
	assert.True(t, errors.IsNotFound(err))
}
