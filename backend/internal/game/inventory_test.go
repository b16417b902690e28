package game

import (
	"errors"
	"testing"

	"GamifyPlanner/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddItemIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "ann", 1, 10)
	item := createItem(t, db, "Healing Petals", models.ItemTypeCommon, 100)

	first, err := AddItem(db, user.ID, item.ID)
	require.NoError(t, err)

	second, err := AddItem(db, user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.UserItem{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemUnknownItem(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "ben", 1, 10)

	_, err := AddItem(db, user.ID, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSetItemActiveRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "cleo", 1, 10)
	item := createItem(t, db, "Dragon Bracelet", models.ItemTypeRare, 600)

	_, err := SetItemActive(db, user.ID, item.ID, true)
	assert.True(t, errors.Is(err, ErrItemNotOwned))
}

func TestSetItemActiveSlotCap(t *testing.T) {
	db := newTestDB(t)
	orig := TypeExclusive
	TypeExclusive = false
	defer func() { TypeExclusive = orig }()

	user := createUser(t, db, "dina", 1, 10)
	items := []*models.Item{
		createItem(t, db, "One", models.ItemTypeRare, 0),
		createItem(t, db, "Two", models.ItemTypeRare, 0),
		createItem(t, db, "Three", models.ItemTypeRare, 0),
		createItem(t, db, "Four", models.ItemTypeRare, 0),
	}
	for _, it := range items {
		_, err := AddItem(db, user.ID, it.ID)
		require.NoError(t, err)
	}
	for _, it := range items[:3] {
		_, err := SetItemActive(db, user.ID, it.ID, true)
		require.NoError(t, err)
	}

	_, err := SetItemActive(db, user.ID, items[3].ID, true)
	assert.True(t, errors.Is(err, ErrInventoryFull))

	// rejection left the active set untouched
	var active int64
	require.NoError(t, db.Model(&models.UserItem{}).
		Where("user_id = ? AND active = ?", user.ID, true).Count(&active).Error)
	assert.EqualValues(t, 3, active)

	var fourth models.UserItem
	require.NoError(t, db.Where("user_id = ? AND item_id = ?", user.ID, items[3].ID).
		First(&fourth).Error)
	assert.False(t, fourth.Active)
}

func TestSetItemActiveTypeExclusivity(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "elsa", 1, 10)
	sword := createItem(t, db, "Sword", models.ItemTypeRare, 0)
	shield := createItem(t, db, "Shield", models.ItemTypeRare, 0)
	potion := createItem(t, db, "Potion", models.ItemTypeCommon, 0)
	for _, it := range []*models.Item{sword, shield, potion} {
		_, err := AddItem(db, user.ID, it.ID)
		require.NoError(t, err)
	}

	_, err := SetItemActive(db, user.ID, sword.ID, true)
	require.NoError(t, err)
	_, err = SetItemActive(db, user.ID, potion.ID, true)
	require.NoError(t, err)

	// activating the shield displaces the sword, the potion stays
	_, err = SetItemActive(db, user.ID, shield.ID, true)
	require.NoError(t, err)

	var items []models.UserItem
	require.NoError(t, db.Where("user_id = ? AND active = ?", user.ID, true).
		Order("item_id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, shield.ID, items[0].ItemID)
	assert.Equal(t, potion.ID, items[1].ItemID)
}

func TestSetItemActiveDeactivateAlwaysSucceeds(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "fred", 1, 10)
	item := createItem(t, db, "Casket", models.ItemTypeRare, 0)
	_, err := AddItem(db, user.ID, item.ID)
	require.NoError(t, err)
	_, err = SetItemActive(db, user.ID, item.ID, true)
	require.NoError(t, err)

	updated, err := SetItemActive(db, user.ID, item.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	// deactivating an already inactive item is fine too
	updated, err = SetItemActive(db, user.ID, item.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestBuyItem(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "gwen", 1, 10)
	require.NoError(t, db.Model(user).Update("gold", 150).Error)
	item := createItem(t, db, "Healing Petals", models.ItemTypeCommon, 100)

	bought, err := BuyItem(db, user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, bought.ItemID)
	assert.False(t, bought.Active)

	stored := reloadUser(t, db, user.ID)
	assert.Equal(t, 50, stored.Gold)
}

func TestBuyItemRefusals(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "hugo", 1, 10)
	require.NoError(t, db.Model(user).Update("gold", 100).Error)
	cheap := createItem(t, db, "Brew", models.ItemTypeCommon, 60)
	dear := createItem(t, db, "Blade", models.ItemTypeRare, 1500)

	_, err := BuyItem(db, user.ID, dear.ID)
	assert.True(t, errors.Is(err, ErrNotEnoughGold))

	_, err = BuyItem(db, user.ID, cheap.ID)
	require.NoError(t, err)
	_, err = BuyItem(db, user.ID, cheap.ID)
	assert.True(t, errors.Is(err, ErrAlreadyOwned))

	// failed purchases never touch the balance
	stored := reloadUser(t, db, user.ID)
	assert.Equal(t, 40, stored.Gold)
}

func TestBuyItemClassRestricted(t *testing.T) {
	db := newTestDB(t)
	warrior := models.Class{Name: "Warrior"}
	require.NoError(t, db.Create(&warrior).Error)
	mage := models.Class{Name: "Mage"}
	require.NoError(t, db.Create(&mage).Error)

	user := createUser(t, db, "ivan", 1, 10)
	require.NoError(t, db.Model(user).
		Updates(map[string]interface{}{"gold": 5000, "class_id": mage.ID}).Error)

	relic := models.Item{Name: "Amulet", Type: models.ItemTypeRare, Price: 1500, ClassID: &warrior.ID}
	require.NoError(t, db.Create(&relic).Error)

	_, err := BuyItem(db, user.ID, relic.ID)
	assert.True(t, errors.Is(err, ErrClassRestricted))
}
