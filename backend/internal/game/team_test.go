package game

import (
	"errors"
	"testing"

	"GamifyPlanner/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateTeamSetsOwnerMembership(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", 1, 10)

	team, err := CreateTeam(db, owner.ID, "night watch", "we guard")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, team.OwnerID)
	assert.Nil(t, team.BossID)

	stored := reloadUser(t, db, owner.ID)
	require.NotNil(t, stored.TeamID)
	assert.Equal(t, team.ID, *stored.TeamID)
}

func TestCreateTeamRejectsTeamedOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", 1, 10)
	_, err := CreateTeam(db, owner.ID, "first", "")
	require.NoError(t, err)

	_, err = CreateTeam(db, owner.ID, "second", "")
	assert.True(t, errors.Is(err, ErrAlreadyInTeam))
}

func TestJoinTeamRejectsTeamedUser(t *testing.T) {
	db := newTestDB(t)
	seedBosses(t, db)
	owner := createUser(t, db, "owner", 1, 10)
	other := createUser(t, db, "other", 1, 10)
	team := createTeam(t, db, owner)
	_ = createTeam(t, db, other)

	_, err := JoinTeam(db, team.ID, other.ID)
	assert.True(t, errors.Is(err, ErrAlreadyInTeam))
}

func TestJoinTeamSecondMemberGetsBoss(t *testing.T) {
	db := newTestDB(t)
	seedBosses(t, db)
	owner := createUser(t, db, "owner", 3, 10)
	buddy := createUser(t, db, "buddy", 5, 10)
	team := createTeam(t, db, owner)
	require.Nil(t, reloadTeam(t, db, team.ID).BossID)

	joined, err := JoinTeam(db, team.ID, buddy.ID)
	require.NoError(t, err)
	require.NotNil(t, joined.TeamID)

	stored := reloadTeam(t, db, team.ID)
	require.NotNil(t, stored.BossID)
	assert.Equal(t, 100, stored.BossLives)
}

func TestLeaveTeamNotInTeam(t *testing.T) {
	db := newTestDB(t)
	loner := createUser(t, db, "loner", 1, 10)

	_, err := LeaveTeam(db, loner.ID)
	assert.True(t, errors.Is(err, ErrNotInTeam))
}

func TestLeaveTeamLastMemberDissolves(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", 1, 10)
	team := createTeam(t, db, owner)
	require.NoError(t, db.Create(&models.ChatMessage{
		TeamID: team.ID, UserID: owner.ID, Nickname: owner.Nickname, Text: "hi",
	}).Error)

	left, err := LeaveTeam(db, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, left.TeamID)

	err = db.First(&models.Team{}, team.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var messages int64
	require.NoError(t, db.Model(&models.ChatMessage{}).
		Where("team_id = ?", team.ID).Count(&messages).Error)
	assert.EqualValues(t, 0, messages)
}

func TestLeaveTeamOwnerWithMembersMustDisband(t *testing.T) {
	db := newTestDB(t)
	seedBosses(t, db)
	owner := createUser(t, db, "owner", 1, 10)
	buddy := createUser(t, db, "buddy", 1, 10)
	team := createTeam(t, db, owner, buddy)

	_, err := LeaveTeam(db, owner.ID)
	assert.True(t, errors.Is(err, ErrOwnerMustDisband))

	// nothing moved
	stored := reloadUser(t, db, owner.ID)
	require.NotNil(t, stored.TeamID)
	assert.Equal(t, team.ID, *stored.TeamID)
}

func TestLeaveTeamMemberDropClearsBoss(t *testing.T) {
	db := newTestDB(t)
	seedBosses(t, db)
	owner := createUser(t, db, "owner", 1, 10)
	buddy := createUser(t, db, "buddy", 1, 10)
	team := createTeam(t, db, owner, buddy)
	require.NotNil(t, reloadTeam(t, db, team.ID).BossID)

	left, err := LeaveTeam(db, buddy.ID)
	require.NoError(t, err)
	assert.Nil(t, left.TeamID)

	// down to one member, so no fight stays assigned
	stored := reloadTeam(t, db, team.ID)
	assert.Nil(t, stored.BossID)
	assert.Equal(t, 0, stored.BossLives)
}

func TestRemoveMemberOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	seedBosses(t, db)
	owner := createUser(t, db, "owner", 1, 10)
	buddy := createUser(t, db, "buddy", 1, 10)
	third := createUser(t, db, "third", 1, 10)
	team := createTeam(t, db, owner, buddy, third)

	_, err := RemoveMember(db, team.ID, third.ID, buddy.ID)
	assert.True(t, errors.Is(err, ErrNotTeamOwner))

	removed, err := RemoveMember(db, team.ID, third.ID, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, removed.TeamID)
	assert.Nil(t, reloadUser(t, db, third.ID).TeamID)
}

func TestRemoveMemberOwnerIsNotATarget(t *testing.T) {
	db := newTestDB(t)
	seedBosses(t, db)
	owner := createUser(t, db, "owner", 1, 10)
	buddy := createUser(t, db, "buddy", 1, 10)
	team := createTeam(t, db, owner, buddy)

	_, err := RemoveMember(db, team.ID, owner.ID, owner.ID)
	assert.True(t, errors.Is(err, ErrOwnerCannotBeRemoved))
}

func TestRemoveMemberOutsider(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", 1, 10)
	loner := createUser(t, db, "loner", 1, 10)
	team := createTeam(t, db, owner)

	_, err := RemoveMember(db, team.ID, loner.ID, owner.ID)
	assert.True(t, errors.Is(err, ErrNotInTeam))
}

func TestDeleteTeamDisbandsEveryone(t *testing.T) {
	db := newTestDB(t)
	seedBosses(t, db)
	owner := createUser(t, db, "owner", 1, 10)
	buddy := createUser(t, db, "buddy", 1, 10)
	third := createUser(t, db, "third", 1, 10)
	team := createTeam(t, db, owner, buddy, third)
	require.NoError(t, db.Create(&models.ChatMessage{
		TeamID: team.ID, UserID: buddy.ID, Nickname: buddy.Nickname, Text: "bye",
	}).Error)

	err := DeleteTeam(db, team.ID, buddy.ID)
	assert.True(t, errors.Is(err, ErrNotTeamOwner))

	require.NoError(t, DeleteTeam(db, team.ID, owner.ID))

	for _, u := range []*models.User{owner, buddy, third} {
		assert.Nil(t, reloadUser(t, db, u.ID).TeamID)
	}
	err = db.First(&models.Team{}, team.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var messages int64
	require.NoError(t, db.Model(&models.ChatMessage{}).
		Where("team_id = ?", team.ID).Count(&messages).Error)
	assert.EqualValues(t, 0, messages)
}
