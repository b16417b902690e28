package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBossTierBreakpoints(t *testing.T) {
	// .5 averages round half away from zero, so 10.5 lands in the next band
	cases := []struct {
		avg  float64
		tier int
	}{
		{1, 1},
		{10, 1}, {10.4, 1}, {10.5, 2}, {11, 2},
		{20, 2}, {20.5, 3}, {21, 3},
		{30, 3}, {30.5, 4}, {31, 4},
		{40, 4}, {40.5, 5}, {41, 5},
		{50, 5}, {50.5, 6}, {51, 6},
		{60, 6}, {60.5, 7}, {61, 7},
		{70, 7}, {70.5, 8}, {71, 8},
		{99, 8}, {200, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, SelectBossTier(tc.avg), "average %v", tc.avg)
	}
}

func TestReevaluateSoloTeamHasNoBoss(t *testing.T) {
	db := newTestDB(t)
	seedBosses(t, db)
	owner := createUser(t, db, "solo", 5, 10)
	team := createTeam(t, db, owner)

	// plant a stale boss to prove it gets cleared
	require.NoError(t, db.Model(team).
		Updates(map[string]interface{}{"boss_id": 1, "boss_lives": 50}).Error)
	require.NoError(t, db.First(team, team.ID).Error)

	require.NoError(t, ReevaluateBoss(db, team, false))

	stored := reloadTeam(t, db, team.ID)
	assert.Nil(t, stored.BossID)
	assert.Equal(t, 0, stored.BossLives)
}

func TestReevaluateSecondMemberAssignsBoss(t *testing.T) {
	db := newTestDB(t)
	bosses := seedBosses(t, db)
	owner := createUser(t, db, "gina", 5, 10)
	buddy := createUser(t, db, "hank", 5, 10)
	team := createTeam(t, db, owner, buddy)

	stored := reloadTeam(t, db, team.ID)
	require.NotNil(t, stored.BossID)
	assert.Equal(t, bosses[0].ID, *stored.BossID)
	assert.Equal(t, bosses[0].BaseLives, stored.BossLives)
}

func TestReevaluateSameTierPreservesLives(t *testing.T) {
	db := newTestDB(t)
	seedBosses(t, db)
	owner := createUser(t, db, "iris", 5, 10)
	buddy := createUser(t, db, "jack", 5, 10)
	team := createTeam(t, db, owner, buddy)

	require.NoError(t, db.Model(team).Update("boss_lives", 42).Error)
	stored := reloadTeam(t, db, team.ID)

	require.NoError(t, ReevaluateBoss(db, stored, false))

	after := reloadTeam(t, db, team.ID)
	assert.Equal(t, 42, after.BossLives)
}

func TestReevaluateTierChangeResetsLives(t *testing.T) {
	db := newTestDB(t)
	bosses := seedBosses(t, db)
	owner := createUser(t, db, "kate", 5, 10)
	buddy := createUser(t, db, "liam", 5, 10)
	team := createTeam(t, db, owner, buddy)

	require.NoError(t, db.Model(team).Update("boss_lives", 42).Error)

	// joint level jump pushes the average into tier 2
	require.NoError(t, db.Model(owner).Update("level", 15).Error)
	require.NoError(t, db.Model(buddy).Update("level", 16).Error)

	stored := reloadTeam(t, db, team.ID)
	require.NoError(t, ReevaluateBoss(db, stored, false))

	after := reloadTeam(t, db, team.ID)
	require.NotNil(t, after.BossID)
	assert.Equal(t, bosses[1].ID, *after.BossID)
	assert.Equal(t, bosses[1].BaseLives, after.BossLives)
}

func TestReevaluateForceResetsSameTier(t *testing.T) {
	db := newTestDB(t)
	bosses := seedBosses(t, db)
	owner := createUser(t, db, "mia", 5, 10)
	buddy := createUser(t, db, "noah", 5, 10)
	team := createTeam(t, db, owner, buddy)

	require.NoError(t, db.Model(team).Update("boss_lives", 3).Error)
	stored := reloadTeam(t, db, team.ID)

	require.NoError(t, ReevaluateBoss(db, stored, true))

	after := reloadTeam(t, db, team.ID)
	assert.Equal(t, bosses[0].BaseLives, after.BossLives)
}

func TestReevaluateAverageRounding(t *testing.T) {
	db := newTestDB(t)
	bosses := seedBosses(t, db)
	// levels 10 and 11: mean 10.5 rounds to 11 -> tier 2
	owner := createUser(t, db, "olga", 10, 10)
	buddy := createUser(t, db, "pete", 11, 10)
	team := createTeam(t, db, owner, buddy)

	stored := reloadTeam(t, db, team.ID)
	require.NotNil(t, stored.BossID)
	assert.Equal(t, bosses[1].ID, *stored.BossID)
}
