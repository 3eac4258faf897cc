package catalog

import "github.com/akwawa/guildmaster/internal/domain"

var buildingDefs = []BuildingDef{
	{
		ID:          1,
		Name:        "Taverne du Dragon Doré",
		Type:        domain.BuildingTavern,
		MaxLevel:    5,
		Description: "Lieu de repos et de recrutement pour les aventuriers.",
		Benefits: []string{
			"Attire de nouveaux aventuriers",
			"Améliore le moral des équipes",
		},
		UpgradeCost:        500,
		UpgradeTimeMinutes: 60,
	},
	{
		ID:          2,
		Name:        "Tableau des Quêtes",
		Type:        domain.BuildingQuestBoard,
		MaxLevel:    5,
		Description: "Centralise les contrats et missions disponibles.",
		Benefits: []string{
			"Débloque des quêtes supplémentaires",
			"Augmente la limite de quêtes visibles",
		},
		UpgradeCost:        400,
		UpgradeTimeMinutes: 45,
	},
	{
		ID:          3,
		Name:        "Armurerie",
		Type:        domain.BuildingArmory,
		MaxLevel:    4,
		Description: "Forge et entretien de l'équipement de la guilde.",
		Benefits: []string{
			"Améliore l'équipement des personnages",
			"Réduit les coûts de réparation",
		},
		UpgradeCost:        800,
		UpgradeTimeMinutes: 90,
	},
	{
		ID:          4,
		Name:        "Bibliothèque Arcanique",
		Type:        domain.BuildingLibrary,
		MaxLevel:    4,
		Description: "Recueil de savoirs magiques et historiques.",
		Benefits: []string{
			"Accélère la progression des lanceurs de sorts",
			"Révèle des détails sur les quêtes",
		},
		UpgradeCost:        900,
		UpgradeTimeMinutes: 120,
	},
	{
		ID:          5,
		Name:        "Terrain d'Entraînement",
		Type:        domain.BuildingTrainingGround,
		MaxLevel:    5,
		Description: "Espace d'exercice pour aguerrir les recrues.",
		Benefits: []string{
			"Augmente l'expérience gagnée",
			"Améliore la cohésion des équipes",
		},
		UpgradeCost:        700,
		UpgradeTimeMinutes: 75,
	},
	{
		ID:          6,
		Name:        "Infirmerie",
		Type:        domain.BuildingInfirmary,
		MaxLevel:    4,
		Description: "Soins et convalescence des blessés.",
		Benefits: []string{
			"Accélère la récupération des personnages",
			"Réduit les risques d'échec critique",
		},
		UpgradeCost:        600,
		UpgradeTimeMinutes: 60,
	},
}
