package seed

import (
	"log"

	"GamifyPlanner/backend/internal/models"

	"gorm.io/gorm"
)

// Run loads the reference tables once, in dependency order: classes first
// (items point at them), then items, then bosses. Each loader is a no-op when
// its table already has rows.
func Run(db *gorm.DB) {
	if err := classes(db); err != nil {
		log.Printf("[SEED] classes failed: %v", err)
	}
	if err := items(db); err != nil {
		log.Printf("[SEED] items failed: %v", err)
	}
	if err := bosses(db); err != nil {
		log.Printf("[SEED] bosses failed: %v", err)
	}
}

func classes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Class{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.Println("[SEED] loading classes")
	data := []models.Class{
		{Name: "Warrior", Information: "Front-line fighter with high attack."},
		{Name: "Mage", Information: "Glass cannon living off burst damage."},
		{Name: "Bard", Information: "Keeps the party alive and motivated."},
		{Name: "Priest", Information: "Blessings that pay off against bosses."},
	}
	return db.Create(&data).Error
}

func items(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.Println("[SEED] loading items")

	classRef := func(name string) *uint {
		var c models.Class
		if err := db.Where("name = ?", name).First(&c).Error; err != nil {
			return nil
		}
		return &c.ID
	}

	data := []models.Item{
		// consumables
		{Name: "Healing Petals", Price: 100, Type: models.ItemTypeCommon,
			BonusType: "health_restore", BonusData: 25,
			Information: "Restores 25% of health."},
		{Name: "Restoring Brew", Price: 120, Type: models.ItemTypeCommon,
			BonusType: "health_restore_full", BonusData: 100,
			Information: "Fully restores health."},
		{Name: "Scroll of Ancient Mind", Price: 150, Type: models.ItemTypeCommon,
			BonusType: "exp_boost", BonusData: 25,
			Information: "Grants 25% of the experience to the next level."},
		{Name: "Potion of Enlightenment", Price: 200, Type: models.ItemTypeCommon,
			BonusType: "exp_boost", BonusData: 100,
			Information: "Grants exactly the experience missing to the next level."},
		// rare
		{Name: "Mysterious Casket", Price: 500, Type: models.ItemTypeRare,
			BonusType: "exp_multiplier", BonusData: 5,
			Information: "A relic made by a seasoned craftsman. +5% experience gained."},
		{Name: "Dragon Bracelet", Price: 600, Type: models.ItemTypeRare,
			BonusType: "max_health", BonusData: 3,
			Information: "Raises maximum health by 3."},
		{Name: "Merchant's Bag", Price: 800, Type: models.ItemTypeRare,
			BonusType: "gold_multiplier", BonusData: 5,
			Information: "Raises gold earned from tasks by 5%."},
		{Name: "Talisman of Hidden Strength", Price: 1000, Type: models.ItemTypeRare,
			BonusType: "attack", BonusData: 5,
			Information: "Raises attack by 5."},
		// class items
		{Name: "Amulet of the Archmage", Price: 1500, Type: models.ItemTypeRare,
			ClassID: classRef("Warrior"), BonusType: "attack", BonusData: 10,
			Information: "Raises attack by 10."},
		{Name: "Sacrificial Blade", Price: 1500, Type: models.ItemTypeRare,
			ClassID: classRef("Mage"), BonusType: "attack", BonusData: 20,
			Information: "Raises attack by 20."},
		{Name: "Lyre of Favor", Price: 1600, Type: models.ItemTypeRare,
			ClassID: classRef("Bard"), BonusType: "health_regen", BonusData: 3,
			Information: "Restores 3 health daily."},
		{Name: "Mantle of Grace", Price: 2000, Type: models.ItemTypeRare,
			ClassID: classRef("Priest"), BonusType: "boss_gold", BonusData: 2,
			Information: "Doubles gold earned from bosses."},
	}
	return db.Create(&data).Error
}

func bosses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Boss{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.Println("[SEED] loading bosses")
	// Level is the tier the boss assignment rule selects by.
	data := []models.Boss{
		{Name: "Swamp Slime", Level: 1, BaseLives: 200, GoldReward: 50,
			Information: "Bubbles menacingly at teams of fresh adventurers."},
		{Name: "Cave Spider", Level: 2, BaseLives: 500, GoldReward: 120,
			Information: "Has eaten braver parties than yours."},
		{Name: "Bone Knight", Level: 3, BaseLives: 1000, GoldReward: 250,
			Information: "Rattles, but hits like a cart."},
		{Name: "Marsh Witch", Level: 4, BaseLives: 1800, GoldReward: 450,
			Information: "Turns procrastinators into toads."},
		{Name: "Stone Golem", Level: 5, BaseLives: 3000, GoldReward: 700,
			Information: "Patient. You will need to be too."},
		{Name: "Frost Wyvern", Level: 6, BaseLives: 4500, GoldReward: 1000,
			Information: "Freezes streaks that falter."},
		{Name: "Shadow Tyrant", Level: 7, BaseLives: 6500, GoldReward: 1500,
			Information: "Feeds on missed deadlines."},
		{Name: "Elder Dragon", Level: 8, BaseLives: 9000, GoldReward: 2500,
			Information: "The last entry in every trophy list."},
	}
	return db.Create(&data).Error
}
