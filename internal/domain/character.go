package domain

import "time"

// Stats are the four base attributes shared by characters and equipment bonuses
type Stats struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Vitality     int `json:"vitality"`
}

// Equipment occupies one of the three slots on a character
type Equipment struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"` // weapon, armor, accessory
	Rarity      Rarity `json:"rarity"`
	Stats       Stats  `json:"stats"`
	Description string `json:"description,omitempty"`
}

// EquipmentSlots holds the optional gear of a character
type EquipmentSlots struct {
	Weapon    *Equipment `json:"weapon,omitempty"`
	Armor     *Equipment `json:"armor,omitempty"`
	Accessory *Equipment `json:"accessory,omitempty"`
}

// Skill is a named ability a character brings to quests
type Skill struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	MaxLevel    int    `json:"maxLevel"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"` // combat, magic, utility
}

// Character is a guild member. IsAvailable is false exactly while the team the
// character belongs to is on a quest.
type Character struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Level           int            `json:"level"`
	Class           string         `json:"class"`
	Stats           Stats          `json:"stats"`
	Experience      int            `json:"experience"`
	IsAvailable     bool           `json:"isAvailable"`
	Health          int            `json:"health"`
	MaxHealth       int            `json:"maxHealth"`
	Mana            int            `json:"mana"`
	MaxMana         int            `json:"maxMana"`
	Equipment       EquipmentSlots `json:"equipment"`
	Skills          []Skill        `json:"skills"`
	Biography       string         `json:"biography,omitempty"`
	JoinDate        time.Time      `json:"joinDate"`
	QuestsCompleted int            `json:"questsCompleted"`
	TotalEarnings   int            `json:"totalEarnings"`
}

// RecruitableCharacter is a hire candidate in the recruitment pool
type RecruitableCharacter struct {
	Name            string         `json:"name"`
	Level           int            `json:"level"`
	Class           string         `json:"class"`
	Stats           Stats          `json:"stats"`
	Experience      int            `json:"experience"`
	Health          int            `json:"health"`
	MaxHealth       int            `json:"maxHealth"`
	Mana            int            `json:"mana"`
	MaxMana         int            `json:"maxMana"`
	Equipment       EquipmentSlots `json:"equipment"`
	Skills          []Skill        `json:"skills"`
	Biography       string         `json:"biography,omitempty"`
	RecruitmentCost int            `json:"recruitmentCost"`
	Rarity          Rarity         `json:"rarity"`
}
