package game

import (
	"errors"
	"testing"

	"GamifyPlanner/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestApplyGoldAndExperience(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 1, 10)

	updated, err := ApplyGoldAndExperience(db, user.ID, 30, 40)
	require.NoError(t, err)

	assert.Equal(t, 30, updated.Gold)
	assert.Equal(t, 40, updated.Points)
	assert.Equal(t, 1, updated.Level)
	assert.Equal(t, 100, updated.MaxPoints)

	// persisted, not just returned
	stored := reloadUser(t, db, user.ID)
	assert.Equal(t, 30, stored.Gold)
	assert.Equal(t, 40, stored.Points)
}

func TestApplyGoldAndExperienceSingleLevelUp(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "bob", 1, 10)

	updated, err := ApplyGoldAndExperience(db, user.ID, 0, 100)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Level)
	assert.Equal(t, 0, updated.Points)
	assert.Equal(t, 200, updated.MaxPoints)
}

func TestApplyGoldAndExperienceCrossesMultipleLevels(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "carol", 1, 10)
	require.NoError(t, db.Model(user).Update("points", 90).Error)

	// 90+250=340; -100 -> 240 lvl2 max200; -200 -> 40 lvl3 max300
	updated, err := ApplyGoldAndExperience(db, user.ID, 0, 250)
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Level)
	assert.Equal(t, 40, updated.Points)
	assert.Equal(t, 300, updated.MaxPoints)
}

func TestApplyGoldAndExperienceKeepsInvariant(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "dave", 1, 10)

	for _, delta := range []int{10, 99, 250, 1000, 5000} {
		updated, err := ApplyGoldAndExperience(db, user.ID, 0, delta)
		require.NoError(t, err)
		assert.Less(t, updated.Points, updated.MaxPoints)
		assert.Equal(t, 100*updated.Level, updated.MaxPoints)
	}
}

func TestApplyGoldAndExperienceUserNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := ApplyGoldAndExperience(db, 12345, 10, 10)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestApplyGoldAndExperienceRejectsCorruptMaxPoints(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "eve", 1, 10)
	require.NoError(t, db.Model(user).Update("max_points", 0).Error)

	_, err := ApplyGoldAndExperience(db, user.ID, 0, 10)
	require.Error(t, err)

	// nothing written
	stored := reloadUser(t, db, user.ID)
	assert.Equal(t, 0, stored.Points)
	assert.Equal(t, 0, stored.Gold)
}

func TestApplyGoldAndExperienceGoldOnly(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "frank", 5, 10)

	updated, err := ApplyGoldAndExperience(db, user.ID, 700, 0)
	require.NoError(t, err)
	assert.Equal(t, 700, updated.Gold)
	assert.Equal(t, 5, updated.Level)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
