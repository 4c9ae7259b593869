package game

// NewSave builds the state of a fresh game: the default player, the two
// starter puppies, starting inventory, and the zone catalog.
func NewSave() *SaveData {
	return &SaveData{
		PlayerData: Player{
			Name:             "Kataya",
			Level:            1,
			Coins:            100,
			Experience:       0,
			ExperienceToNext: 100,
			UnlockedZones:    []string{"yard"},
		},
		Puppies:   DefaultPuppies(),
		Inventory: DefaultInventory(),
		GameStats: GameStats{},
		Zones:     DefaultZones(),
		Version:   SaveVersion,
	}
}

// DefaultPuppies returns the two starter puppies.
func DefaultPuppies() []Puppy {
	return []Puppy{
		{
			ID:           "kk",
			Name:         "KK",
			Personality:  PersonalityEnergetic,
			Happiness:    100,
			Hunger:       80,
			Energy:       100,
			Level:        1,
			AgeStage:     StageBaby,
			Accessories:  []string{},
			FavoriteToys: []string{"ball", "frisbee"},
		},
		{
			ID:           "hailey",
			Name:         "Hailey",
			Personality:  PersonalityCalm,
			Happiness:    100,
			Hunger:       80,
			Energy:       100,
			Level:        1,
			AgeStage:     StageBaby,
			Accessories:  []string{},
			FavoriteToys: []string{"stuffed toy", "bone"},
		},
	}
}

// DefaultInventory returns the starting item stacks.
func DefaultInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "1", Name: "Dog Food", Type: ItemFood, Quantity: 10, Rarity: RarityCommon},
		{ID: "2", Name: "Treats", Type: ItemFood, Quantity: 5, Rarity: RarityCommon},
		{ID: "3", Name: "Ball", Type: ItemToy, Quantity: 1, Rarity: RarityCommon},
		{ID: "4", Name: "Frisbee", Type: ItemToy, Quantity: 1, Rarity: RarityRare},
		{ID: "5", Name: "Red Collar", Type: ItemClothing, Quantity: 1, Rarity: RarityCommon},
		{ID: "6", Name: "Blue Bow", Type: ItemClothing, Quantity: 1, Rarity: RarityRare},
	}
}

// DefaultZones returns the zone catalog. The yard is open from level 1;
// the rest unlock as the player levels up.
func DefaultZones() []Zone {
	return []Zone{
		{ID: "yard", Name: "Yard", Description: "A sunny yard where puppies can play and run around", UnlockLevel: 1, Icon: "🌳"},
		{ID: "living-room", Name: "Living Room", Description: "Cozy indoor space for cuddling and relaxation", UnlockLevel: 3, Icon: "🏠"},
		{ID: "park", Name: "Park", Description: "Adventure playground with new friends and obstacles", UnlockLevel: 5, Icon: "🌲"},
		{ID: "playground", Name: "Playground", Description: "Ultimate fun zone with slides and swings", UnlockLevel: 8, Icon: "🎪"},
	}
}
