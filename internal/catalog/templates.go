package catalog

import "github.com/akwawa/guildmaster/internal/domain"

var questTemplates = []domain.QuestTemplate{
	// Rang 1 (Débutant)
	{
		ID:                  "rats_sewers",
		Title:               "Nettoyage des Égouts",
		DescriptionTemplate: "Éliminez l'infestation de {enemy} dans les égouts de {location}.",
		Type:                domain.QuestTypeNettoyage,
		Rank:                1,
		BaseDifficulty:      1,
		BaseDuration:        2,
		BaseReward:          150,
		RequiredLevel:       1,
		RequiredReputation:  0,
		Enemies:             []string{"rats géants", "rats-garous", "vases grises"},
		Locations:           []string{"Eauprofonde", "Neverwinter", "Baldur's Gate", "Elturel"},
		Rarity:              domain.RarityCommon,
		AvailabilityDays:    7,
		SpawnChance:         0.8,
	},
	{
		ID:                  "goblin_patrol",
		Title:               "Patrouille Anti-Gobelins",
		DescriptionTemplate: "Éliminez la bande de {enemy} qui terrorise les routes près de {location}.",
		Type:                domain.QuestTypeChasse,
		Rank:                1,
		BaseDifficulty:      2,
		BaseDuration:        3,
		BaseReward:          250,
		RequiredLevel:       2,
		RequiredReputation:  50,
		Enemies:             []string{"gobelins", "hobgobelins", "worgs"},
		Locations:           []string{"Cormyr", "Daggerdale", "Sembia", "Tethyr"},
		Rarity:              domain.RarityCommon,
		AvailabilityDays:    5,
		SpawnChance:         0.7,
	},
	{
		ID:                  "merchant_escort",
		Title:               "Escorte de Marchand",
		DescriptionTemplate: "Escortez une caravane marchande de {location} à travers les terres dangereuses.",
		Type:                domain.QuestTypeEscorte,
		Rank:                1,
		BaseDifficulty:      2,
		BaseDuration:        4,
		BaseReward:          300,
		RequiredLevel:       2,
		RequiredReputation:  100,
		Enemies:             []string{"bandits", "loups", "orques"},
		Locations:           []string{"Amn", "Calimshan", "Cormyr", "Sembia"},
		Rarity:              domain.RarityCommon,
		AvailabilityDays:    3,
		SpawnChance:         0.6,
	},

	// Rang 2 (Intermédiaire)
	{
		ID:                  "bandit_hideout",
		Title:               "Repaire de Bandits",
		DescriptionTemplate: "Infiltrez et détruisez le repaire de {enemy} caché dans {location}.",
		Type:                domain.QuestTypeCombat,
		Rank:                2,
		BaseDifficulty:      3,
		BaseDuration:        6,
		BaseReward:          600,
		RequiredLevel:       4,
		RequiredReputation:  300,
		Enemies:             []string{"bandits aguerris", "mercenaires", "assassins"},
		Locations:           []string{"Forêt de Cormanthor", "Monts du Coucher du Soleil", "Marais de Chelimber"},
		Rarity:              domain.RarityRare,
		AvailabilityDays:    5,
		SpawnChance:         0.4,
	},
	{
		ID:                  "noble_diplomacy",
		Title:               "Mission Diplomatique",
		DescriptionTemplate: "Négociez un accord commercial entre les nobles de {location}.",
		Type:                domain.QuestTypeDiplomatie,
		Rank:                2,
		BaseDifficulty:      3,
		BaseDuration:        4,
		BaseReward:          800,
		RequiredLevel:       3,
		RequiredReputation:  500,
		Enemies:             []string{"Aucun (Négociation)"},
		Locations:           []string{"Cormyr", "Amn", "Sembia", "Tethyr"},
		Rarity:              domain.RarityRare,
		AvailabilityDays:    3,
		SpawnChance:         0.3,
	},
	{
		ID:                  "cursed_temple",
		Title:               "Temple Maudit",
		DescriptionTemplate: "Purifiez le temple de {location} infesté de {enemy}.",
		Type:                domain.QuestTypeReligieux,
		Rank:                2,
		BaseDifficulty:      4,
		BaseDuration:        7,
		BaseReward:          1000,
		RequiredLevel:       5,
		RequiredReputation:  400,
		Enemies:             []string{"morts-vivants", "spectres", "cultistes"},
		Locations:           []string{"Anauroch", "Haute Lande", "Terres Grises"},
		Rarity:              domain.RarityRare,
		AvailabilityDays:    4,
		SpawnChance:         0.3,
	},

	// Rang 3 (Avancé)
	{
		ID:                  "ancient_dungeon",
		Title:               "Donjon Ancien",
		DescriptionTemplate: "Explorez les ruines antiques de {location} et récupérez {artifact}.",
		Type:                domain.QuestTypeDonjon,
		Rank:                3,
		BaseDifficulty:      4,
		BaseDuration:        10,
		BaseReward:          1500,
		RequiredLevel:       6,
		RequiredReputation:  800,
		Enemies:             []string{"golems", "élémentaires", "gardiens anciens"},
		Locations:           []string{"Netheril", "Myth Drannor", "Château-Zhentil"},
		Rarity:              domain.RarityEpic,
		AvailabilityDays:    7,
		SpawnChance:         0.2,
		Artifacts:           []string{"Orbe de Pouvoir", "Grimoire Ancien", "Sceptre Elfique", "Couronne Naine"},
	},
	{
		ID:                  "dragon_threat",
		Title:               "Menace Draconique",
		DescriptionTemplate: "Affrontez le {enemy} qui terrorise {location} et réclamez son trésor.",
		Type:                domain.QuestTypeCombat,
		Rank:                3,
		BaseDifficulty:      5,
		BaseDuration:        12,
		BaseReward:          2500,
		RequiredLevel:       8,
		RequiredReputation:  1200,
		Enemies:             []string{"dragon vert jeune", "dragon rouge adulte", "dragon noir ancien"},
		Locations:           []string{"Monts Earthfast", "Pic du Tonnerre", "Anauroch"},
		Rarity:              domain.RarityEpic,
		AvailabilityDays:    10,
		SpawnChance:         0.1,
	},
	{
		ID:                  "artifact_recovery",
		Title:               "Récupération d'Artefact",
		DescriptionTemplate: "Récupérez {artifact} volé par {enemy} dans {location}.",
		Type:                domain.QuestTypeRecuperation,
		Rank:                3,
		BaseDifficulty:      4,
		BaseDuration:        8,
		BaseReward:          1800,
		RequiredLevel:       7,
		RequiredReputation:  1000,
		Enemies:             []string{"mages renégats", "cultistes", "voleurs de tombes"},
		Locations:           []string{"Tour de Sorcier", "Crypte Oubliée", "Sanctuaire Perdu"},
		Rarity:              domain.RarityEpic,
		AvailabilityDays:    5,
		SpawnChance:         0.15,
		Artifacts:           []string{"Bâton des Arcanes", "Épée Sainte", "Amulette de Résurrection", "Livre des Morts"},
	},

	// Rang 4 (Expert)
	{
		ID:                  "planar_incursion",
		Title:               "Incursion Planaire",
		DescriptionTemplate: "Fermez le portail planaire dans {location} et repoussez les {enemy}.",
		Type:                domain.QuestTypeDonjonEpic,
		Rank:                4,
		BaseDifficulty:      5,
		BaseDuration:        16,
		BaseReward:          4000,
		RequiredLevel:       10,
		RequiredReputation:  2000,
		Enemies:             []string{"démons", "diables", "aberrations"},
		Locations:           []string{"Portail de Baldur", "Sigil", "Plan Astral"},
		Rarity:              domain.RarityLegendary,
		AvailabilityDays:    14,
		SpawnChance:         0.05,
	},
	{
		ID:                  "lich_stronghold",
		Title:               "Forteresse du Liche",
		DescriptionTemplate: "Détruisez le liche {enemy} dans sa forteresse de {location}.",
		Type:                domain.QuestTypeDonjonEpic,
		Rank:                4,
		BaseDifficulty:      5,
		BaseDuration:        20,
		BaseReward:          6000,
		RequiredLevel:       12,
		RequiredReputation:  2500,
		Enemies:             []string{"Liche Ancien", "Archliche", "Dracoliche"},
		Locations:           []string{"Tour de Szass Tam", "Citadelle Maudite", "Nécropole Oubliée"},
		Rarity:              domain.RarityLegendary,
		AvailabilityDays:    21,
		SpawnChance:         0.03,
	},

	// Quêtes quotidiennes
	{
		ID:                  "daily_patrol",
		Title:               "Patrouille Quotidienne",
		DescriptionTemplate: "Effectuez une patrouille de routine autour de {location}.",
		Type:                domain.QuestTypePatrouille,
		Rank:                1,
		BaseDifficulty:      1,
		BaseDuration:        1,
		BaseReward:          100,
		RequiredLevel:       1,
		RequiredReputation:  0,
		Enemies:             []string{"bandits mineurs", "animaux sauvages"},
		Locations:           []string{"Eauprofonde", "Neverwinter", "Baldur's Gate"},
		Rarity:              domain.RarityCommon,
		AvailabilityDays:    1,
		SpawnChance:         1.0,
		IsDaily:             true,
	},
	{
		ID:                  "reputation_mission",
		Title:               "Mission de Prestige",
		DescriptionTemplate: "Accomplissez une mission de prestige pour {location}.",
		Type:                domain.QuestTypePrestige,
		Rank:                2,
		BaseDifficulty:      2,
		BaseDuration:        3,
		BaseReward:          400,
		RequiredLevel:       3,
		RequiredReputation:  500,
		Enemies:             []string{"Divers"},
		Locations:           []string{"Cour Royale", "Guilde Marchande", "Temple Principal"},
		Rarity:              domain.RarityRare,
		AvailabilityDays:    1,
		SpawnChance:         0.6,
		IsDaily:             true,
	},
}
