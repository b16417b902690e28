package game

import (
	"fmt"
	"testing"

	"GamifyPlanner/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a second connection to :memory: would see an empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Class{},
		&models.User{},
		&models.Item{},
		&models.UserItem{},
		&models.Boss{},
		&models.Team{},
		&models.Catalog{},
		&models.Task{},
		&models.DailyTask{},
		&models.ChatMessage{},
	))
	return db
}

// seedBosses writes one boss per tier with predictable numbers.
func seedBosses(t *testing.T, db *gorm.DB) []models.Boss {
	t.Helper()
	bosses := make([]models.Boss, 0, 8)
	for tier := 1; tier <= 8; tier++ {
		boss := models.Boss{
			Name:       fmt.Sprintf("Tier %d Boss", tier),
			Level:      tier,
			BaseLives:  100 * tier,
			GoldReward: 10 * tier,
		}
		require.NoError(t, db.Create(&boss).Error)
		bosses = append(bosses, boss)
	}
	return bosses
}

func createUser(t *testing.T, db *gorm.DB, nickname string, level, attack int) *models.User {
	t.Helper()
	user := models.User{
		Login:     nickname,
		Password:  "x",
		Nickname:  nickname,
		Level:     level,
		Lives:     100,
		MaxLives:  100,
		Points:    0,
		MaxPoints: 100 * level,
		Gold:      0,
		Attack:    attack,
		Role:      "user",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createItem(t *testing.T, db *gorm.DB, name, itemType string, price int) *models.Item {
	t.Helper()
	item := models.Item{Name: name, Type: itemType, Price: price}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func createTask(t *testing.T, db *gorm.DB, userID uint, complexity string) *models.Task {
	t.Helper()
	catalog := models.Catalog{UserID: userID, Name: "Chores"}
	require.NoError(t, db.Create(&catalog).Error)
	task := models.Task{CatalogID: catalog.ID, Name: "Do the thing", Complexity: complexity}
	require.NoError(t, db.Create(&task).Error)
	return &task
}

// createTeam wires a team with the given members, first one owning it.
func createTeam(t *testing.T, db *gorm.DB, members ...*models.User) *models.Team {
	t.Helper()
	require.NotEmpty(t, members)
	team, err := CreateTeam(db, members[0].ID, fmt.Sprintf("team-%d", members[0].ID), "")
	require.NoError(t, err)
	for _, m := range members[1:] {
		_, err := JoinTeam(db, team.ID, m.ID)
		require.NoError(t, err)
	}
	require.NoError(t, db.First(team, team.ID).Error)
	return team
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return &user
}

func reloadTeam(t *testing.T, db *gorm.DB, id uint) *models.Team {
	t.Helper()
	var team models.Team
	require.NoError(t, db.First(&team, id).Error)
	return &team
}
