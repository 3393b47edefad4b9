package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-Night7/bofuri-mj/internal/engine"
	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
)

func fighter(name string, hp, str, vit float64) *entities.RuntimeEntity {
	return &entities.RuntimeEntity{
		Name:  name,
		Kind:  entities.KindPlayer,
		HPMax: hp,
		HP:    hp,
		STR:   str,
		VIT:   vit,
	}
}

func TestResolveHit(t *testing.T) {
	attacker := fighter("Maple", 100, 10, 50)
	defender := fighter("Loup", 100, 6, 80)

	out, err := engine.Resolve(attacker, defender, 50, 20, engine.Options{})
	require.NoError(t, err)

	// (50-20) + 10 - 80/100 = 39.2
	assert.True(t, out.Hit)
	assert.InDelta(t, 39.2, out.Damage, 1e-9)
	assert.Zero(t, out.Counter)
	assert.InDelta(t, 60.8, defender.HP, 1e-9)
	assert.Equal(t, 100.0, attacker.HP)
	require.Len(t, out.Effects, 2)
	assert.Contains(t, out.Effects[0], "hits")
}

func TestResolveCounter(t *testing.T) {
	attacker := fighter("Maple", 100, 10, 50)
	defender := fighter("Loup", 100, 6, 80)

	out, err := engine.Resolve(attacker, defender, 20, 50, engine.Options{})
	require.NoError(t, err)

	// (50-20) + 80/100 - 10 = 20.8 returned to the attacker
	assert.False(t, out.Hit)
	assert.Zero(t, out.Damage)
	assert.InDelta(t, 20.8, out.Counter, 1e-9)
	assert.InDelta(t, 79.2, attacker.HP, 1e-9)
	assert.Equal(t, 100.0, defender.HP)
}

func TestResolveTieFavorsDefender(t *testing.T) {
	attacker := fighter("Maple", 100, 10, 50)
	defender := fighter("Loup", 100, 6, 80)

	out, err := engine.Resolve(attacker, defender, 40, 40, engine.Options{})
	require.NoError(t, err)

	// Tie: no hit, and 0 + 0.8 - 10 is negative, so no counter either.
	assert.False(t, out.Hit)
	assert.Zero(t, out.Damage)
	assert.Zero(t, out.Counter)
	assert.Equal(t, 100.0, attacker.HP)
	assert.Equal(t, 100.0, defender.HP)
	require.Len(t, out.Effects, 1)
	assert.Contains(t, out.Effects[0], "holds")
}

func TestResolveTieWithWeakAttackerCounters(t *testing.T) {
	attacker := fighter("Gobelin", 100, 1, 10)
	defender := fighter("Maple", 100, 5, 400)

	out, err := engine.Resolve(attacker, defender, 40, 40, engine.Options{})
	require.NoError(t, err)

	// 0 + 400/100 - 1 = 3 returned even on an equal roll.
	assert.False(t, out.Hit)
	assert.InDelta(t, 3.0, out.Counter, 1e-9)
	assert.InDelta(t, 97.0, attacker.HP, 1e-9)
}

func TestResolveHPFloorsAtZero(t *testing.T) {
	attacker := fighter("Maple", 100, 50, 50)
	defender := fighter("Gobelin", 10, 1, 5)

	out, err := engine.Resolve(attacker, defender, 90, 10, engine.Options{})
	require.NoError(t, err)

	assert.True(t, out.Hit)
	assert.Equal(t, 0.0, defender.HP)
	assert.False(t, defender.Alive())
}

func TestResolveArmorPierce(t *testing.T) {
	attacker := fighter("Maple", 100, 10, 50)
	defender := fighter("Loup", 100, 6, 80)

	out, err := engine.Resolve(attacker, defender, 50, 20, engine.Options{ArmorPierce: true})
	require.NoError(t, err)

	// VIT term dropped: (50-20) + 10 = 40
	assert.InDelta(t, 40.0, out.Damage, 1e-9)
}

func TestResolveAttackKinds(t *testing.T) {
	attacker := &entities.RuntimeEntity{
		Name: "Sally", HPMax: 100, HP: 100,
		STR: 5, INT: 20, DEX: 12,
	}

	tests := []struct {
		kind engine.AttackKind
		want float64
	}{
		{engine.AttackMelee, 5},
		{engine.AttackMagic, 20},
		{engine.AttackRanged, 12},
	}
	for _, tt := range tests {
		defender := fighter("Cible", 100, 0, 0)
		out, err := engine.Resolve(attacker, defender, 30, 10, engine.Options{Kind: tt.kind})
		require.NoError(t, err)
		// (30-10) + attack stat, no VIT on the target
		assert.InDelta(t, 20+tt.want, out.Damage, 1e-9)
	}
}

func TestResolveCustomDivisor(t *testing.T) {
	attacker := fighter("Maple", 100, 10, 50)
	defender := fighter("Loup", 100, 6, 80)

	out, err := engine.Resolve(attacker, defender, 50, 20, engine.Options{VITDivisor: 10})
	require.NoError(t, err)

	// (50-20) + 10 - 80/10 = 32
	assert.InDelta(t, 32.0, out.Damage, 1e-9)
}

func TestResolveNilEntities(t *testing.T) {
	_, err := engine.Resolve(nil, fighter("Loup", 10, 1, 1), 30, 10, engine.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
