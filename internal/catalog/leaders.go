package catalog

import "github.com/akwawa/guildmaster/internal/domain"

var playerLeaders = []domain.PlayerLeader{
	{
		ID:           "lord_blackwater",
		Name:         "Lord Aldric Blackwater",
		Title:        "Seigneur Déchu de Cormyr",
		Background:   "Noble",
		Description:  "Ancien seigneur de Cormyr déchu après un scandale politique, Aldric possède encore de nombreuses connexions dans la noblesse et une fortune considérable.",
		StartingGold: 2500,
		StartingGems: 75,
		Bonuses: []domain.LeaderModifier{
			{Type: domain.BonusGold, Value: 25, Description: "+25% de revenus des quêtes diplomatiques"},
			{Type: domain.BonusReputation, Value: 15, Description: "+15% de gain de réputation"},
		},
		Maluses: []domain.LeaderModifier{
			{Type: domain.BonusRecruitment, Value: 20, Description: "+20% de coût de recrutement"},
		},
		StartingBuildings: []domain.BuildingType{domain.BuildingTavern, domain.BuildingQuestBoard},
		SpecialAbility: domain.SpecialAbility{
			Name:        "Connexions Nobles",
			Description: "Accès à des quêtes exclusives de la noblesse avec des récompenses doublées",
		},
	},
	{
		ID:           "captain_ironforge",
		Name:         "Capitaine Thora Ironforge",
		Title:        "Vétérane des Guerres Orques",
		Background:   "Militaire",
		Description:  "Ancienne capitaine de l'armée de Mithral Hall, Thora a dirigé de nombreuses campagnes contre les hordes orques.",
		StartingGold: 1800,
		StartingGems: 45,
		Bonuses: []domain.LeaderModifier{
			{Type: domain.BonusExperience, Value: 30, Description: "+30% d'expérience de combat"},
			{Type: domain.BonusQuestRewards, Value: 20, Description: "+20% de récompenses des quêtes de combat"},
		},
		Maluses: []domain.LeaderModifier{
			{Type: domain.BonusGold, Value: 15, Description: "-15% de revenus des quêtes diplomatiques"},
		},
		StartingBuildings: []domain.BuildingType{domain.BuildingTrainingGround, domain.BuildingArmory},
		SpecialAbility: domain.SpecialAbility{
			Name:        "Tactiques Militaires",
			Description: "Peut envoyer deux équipes sur la même quête de combat pour garantir le succès",
		},
	},
	{
		ID:           "sage_moonwhisper",
		Name:         "Sage Elara Moonwhisper",
		Title:        "Archiviste de Candlekeep",
		Background:   "Érudit",
		Description:  "Ancienne archiviste de la légendaire bibliothèque de Candlekeep, Elara possède une connaissance encyclopédique des arts magiques.",
		StartingGold: 1200,
		StartingGems: 90,
		Bonuses: []domain.LeaderModifier{
			{Type: domain.BonusExperience, Value: 25, Description: "+25% d'expérience magique"},
			{Type: domain.BonusBuildingCost, Value: 30, Description: "-30% de coût pour les bâtiments magiques"},
		},
		Maluses: []domain.LeaderModifier{
			{Type: domain.BonusGold, Value: 20, Description: "-20% de revenus des quêtes de combat"},
		},
		StartingBuildings: []domain.BuildingType{domain.BuildingLibrary, domain.BuildingQuestBoard},
		SpecialAbility: domain.SpecialAbility{
			Name:        "Savoir Ancien",
			Description: "Peut identifier instantanément tous les objets magiques et révéler des quêtes secrètes",
		},
	},
	{
		ID:           "merchant_goldbeard",
		Name:         "Marchand Borin Goldbeard",
		Title:        "Roi des Caravanes",
		Background:   "Commerçant",
		Description:  "Nain marchand ayant bâti un empire commercial à travers les Royaumes.",
		StartingGold: 3500,
		StartingGems: 60,
		Bonuses: []domain.LeaderModifier{
			{Type: domain.BonusGold, Value: 40, Description: "+40% de revenus de toutes les quêtes"},
			{Type: domain.BonusBuildingCost, Value: 25, Description: "-25% de coût de construction"},
		},
		Maluses: []domain.LeaderModifier{
			{Type: domain.BonusReputation, Value: 25, Description: "-25% de gain de réputation"},
		},
		StartingBuildings: []domain.BuildingType{domain.BuildingTavern, domain.BuildingArmory},
		SpecialAbility: domain.SpecialAbility{
			Name:        "Réseau Commercial",
			Description: "Accès à un marché spécial avec des objets rares",
		},
	},
	{
		ID:           "ranger_stormwind",
		Name:         "Rôdeur Kael Stormwind",
		Title:        "Gardien des Terres Sauvages",
		Background:   "Explorateur",
		Description:  "Rôdeur légendaire ayant exploré les régions les plus dangereuses des Royaumes.",
		StartingGold: 1500,
		StartingGems: 35,
		Bonuses: []domain.LeaderModifier{
			{Type: domain.BonusQuestRewards, Value: 35, Description: "+35% de récompenses des quêtes d'exploration"},
			{Type: domain.BonusExperience, Value: 20, Description: "+20% d'expérience de survie"},
		},
		Maluses: []domain.LeaderModifier{
			{Type: domain.BonusBuildingCost, Value: 15, Description: "+15% de coût pour les bâtiments urbains"},
		},
		StartingBuildings: []domain.BuildingType{domain.BuildingTrainingGround, domain.BuildingInfirmary},
		SpecialAbility: domain.SpecialAbility{
			Name:        "Pistage Légendaire",
			Description: "Peut découvrir des donjons cachés et réduire de moitié le temps des quêtes d'exploration",
		},
	},
	{
		ID:           "priestess_dawnbringer",
		Name:         "Prêtresse Lyanna Dawnbringer",
		Title:        "Haute Prêtresse de Lathandre",
		Background:   "Religieux",
		Description:  "Haute prêtresse du dieu du matin, Lyanna a consacré sa vie à combattre les ténèbres et à soigner les affligés.",
		StartingGold: 1000,
		StartingGems: 50,
		Bonuses: []domain.LeaderModifier{
			{Type: domain.BonusExperience, Value: 40, Description: "+40% d'expérience divine pour paladins et clercs"},
			{Type: domain.BonusRecruitment, Value: 30, Description: "-30% de coût de recrutement pour les classes divines"},
		},
		Maluses: []domain.LeaderModifier{
			{Type: domain.BonusGold, Value: 25, Description: "-25% de revenus des quêtes impliquant des morts-vivants"},
		},
		StartingBuildings: []domain.BuildingType{domain.BuildingInfirmary, domain.BuildingQuestBoard},
		SpecialAbility: domain.SpecialAbility{
			Name:        "Bénédiction Divine",
			Description: "Peut bénir une équipe pour garantir sa survie même en cas d'échec critique",
		},
	},
}
