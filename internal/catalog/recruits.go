package catalog

import "github.com/akwawa/guildmaster/internal/domain"

// RecruitClass describes one recruitable character class
type RecruitClass struct {
	Name      string
	BaseStats domain.Stats
	Races     []string
	Skills    []string
}

// RecruitTables holds the raw material recruit candidates are rolled from
type RecruitTables struct {
	Names       map[string]map[string][]string // race -> gender -> names
	Classes     []RecruitClass
	Biographies map[string][]string // base class key -> biographies
}

var recruitTables = RecruitTables{
	Names: map[string]map[string][]string{
		"human": {
			"male":   {"Gareth", "Marcus", "Aldric", "Theron", "Darius", "Cedric", "Roland", "Tristan", "Lucian", "Adrian"},
			"female": {"Lyanna", "Seraphina", "Elara", "Cassandra", "Isabella", "Morgana", "Vivienne", "Ariana", "Celeste", "Evangeline"},
		},
		"elf": {
			"male":   {"Thalion", "Aelar", "Aramil", "Aerdyl", "Ahvak", "Berrian", "Dayereth", "Enna", "Galinndan", "Hadarai"},
			"female": {"Lyralei", "Adrie", "Althaea", "Anastrianna", "Andraste", "Antinua", "Bethrynna", "Birel", "Caelynn", "Dara"},
		},
		"dwarf": {
			"male":   {"Thorek", "Borin", "Dain", "Darrak", "Delg", "Eberk", "Einkil", "Fargrim", "Flint", "Gardain"},
			"female": {"Amber", "Bardryn", "Diesa", "Eldeth", "Gunnloda", "Greta", "Helja", "Hlin", "Kathra", "Kristryd"},
		},
		"halfling": {
			"male":   {"Alton", "Ander", "Cade", "Corrin", "Eldon", "Errich", "Finnan", "Garret", "Lindal", "Lyle"},
			"female": {"Andry", "Bree", "Callie", "Cora", "Euphemia", "Jillian", "Kithri", "Lavinia", "Lidda", "Merla"},
		},
	},
	Classes: []RecruitClass{
		{Name: "Guerrier", BaseStats: domain.Stats{Strength: 16, Agility: 12, Intelligence: 10, Vitality: 14}, Races: []string{"human", "dwarf"}, Skills: []string{"Attaque Puissante", "Défense Robuste"}},
		{Name: "Guerrière", BaseStats: domain.Stats{Strength: 15, Agility: 13, Intelligence: 11, Vitality: 13}, Races: []string{"human", "elf"}, Skills: []string{"Attaque Puissante", "Défense Robuste"}},
		{Name: "Mage", BaseStats: domain.Stats{Strength: 8, Agility: 10, Intelligence: 18, Vitality: 10}, Races: []string{"human", "elf"}, Skills: []string{"Boule de Feu", "Détection de la Magie"}},
		{Name: "Magicienne", BaseStats: domain.Stats{Strength: 7, Agility: 11, Intelligence: 17, Vitality: 11}, Races: []string{"human", "elf"}, Skills: []string{"Boule de Feu", "Détection de la Magie"}},
		{Name: "Rôdeur", BaseStats: domain.Stats{Strength: 13, Agility: 16, Intelligence: 14, Vitality: 12}, Races: []string{"human", "elf", "halfling"}, Skills: []string{"Tir de Précision", "Furtivité"}},
		{Name: "Rôdeuse", BaseStats: domain.Stats{Strength: 12, Agility: 17, Intelligence: 13, Vitality: 13}, Races: []string{"human", "elf", "halfling"}, Skills: []string{"Tir de Précision", "Furtivité"}},
		{Name: "Paladin", BaseStats: domain.Stats{Strength: 15, Agility: 10, Intelligence: 12, Vitality: 16}, Races: []string{"human"}, Skills: []string{"Châtiment Divin", "Soins Majeurs"}},
		{Name: "Paladine", BaseStats: domain.Stats{Strength: 14, Agility: 11, Intelligence: 13, Vitality: 15}, Races: []string{"human"}, Skills: []string{"Châtiment Divin", "Soins Majeurs"}},
		{Name: "Druide", BaseStats: domain.Stats{Strength: 12, Agility: 14, Intelligence: 16, Vitality: 13}, Races: []string{"human", "elf"}, Skills: []string{"Forme Sauvage", "Soins Majeurs"}},
		{Name: "Druidesse", BaseStats: domain.Stats{Strength: 11, Agility: 15, Intelligence: 15, Vitality: 14}, Races: []string{"human", "elf"}, Skills: []string{"Forme Sauvage", "Soins Majeurs"}},
		{Name: "Roublard", BaseStats: domain.Stats{Strength: 10, Agility: 18, Intelligence: 14, Vitality: 10}, Races: []string{"human", "halfling"}, Skills: []string{"Attaque Sournoise", "Furtivité"}},
		{Name: "Roublarde", BaseStats: domain.Stats{Strength: 9, Agility: 17, Intelligence: 15, Vitality: 11}, Races: []string{"human", "halfling"}, Skills: []string{"Attaque Sournoise", "Furtivité"}},
		{Name: "Clerc", BaseStats: domain.Stats{Strength: 12, Agility: 10, Intelligence: 16, Vitality: 15}, Races: []string{"human", "dwarf"}, Skills: []string{"Soins Majeurs", "Châtiment Divin"}},
		{Name: "Barbare", BaseStats: domain.Stats{Strength: 18, Agility: 14, Intelligence: 8, Vitality: 16}, Races: []string{"human", "dwarf"}, Skills: []string{"Rage Barbare", "Attaque Puissante"}},
	},
	Biographies: map[string][]string{
		"Guerrier": {
			"Ancien soldat de l'armée royale, il a servi avec honneur avant de chercher fortune comme aventurier.",
			"Fils de forgeron devenu maître d'armes, il manie l'épée avec une précision redoutable.",
			"Vétéran de nombreuses batailles, ses cicatrices racontent l'histoire de ses victoires.",
			"Garde du corps d'un noble déchu, il cherche maintenant à prouver sa valeur.",
		},
		"Mage": {
			"Diplômé de l'Académie de Magie, il maîtrise les arts arcaniques avec brio.",
			"Ancien apprenti d'un archimage, il continue ses recherches sur les mystères de la Trame.",
			"Érudit passionné par les artefacts anciens et les sorts oubliés.",
			"Mage de guerre ayant servi dans les conflits magiques des Royaumes.",
		},
		"Rôdeur": {
			"Gardien des forêts, il connaît tous les secrets de la nature sauvage.",
			"Traqueur expérimenté, aucune proie n'échappe à sa vigilance.",
			"Ancien guide de caravanes, il connaît toutes les routes dangereuses.",
			"Protecteur des villages frontaliers contre les incursions de monstres.",
		},
		"Paladin": {
			"Chevalier consacré au service du bien, sa foi guide chacun de ses actes.",
			"Ancien templier ayant prêté serment de protéger les innocents.",
			"Guerrier saint dont la lame brille de lumière divine.",
			"Champion de la justice, il combat inlassablement contre les forces du mal.",
		},
		"Druide": {
			"Gardien de l'équilibre naturel, il communique avec les esprits de la forêt.",
			"Sage des bois ayant appris les secrets des anciens druides.",
			"Protecteur de la nature contre la corruption et la destruction.",
			"Ermite ayant passé des années à méditer dans les bosquets sacrés.",
		},
		"Roublard": {
			"Ancien voleur repenti, il met maintenant ses talents au service du bien.",
			"Espion habile dans l'art de l'infiltration et de la discrétion.",
			"Acrobate de rue devenu aventurier par soif de liberté.",
			"Ancien membre d'une guilde de voleurs cherchant la rédemption.",
		},
		"Clerc": {
			"Prêtre dévoué dont la foi peut accomplir des miracles.",
			"Guérisseur itinérant apportant réconfort et soins aux nécessiteux.",
			"Missionnaire répandant la parole divine dans les terres sauvages.",
			"Ancien moine ayant quitté son monastère pour servir dans le monde.",
		},
		"Barbare": {
			"Guerrier des tribus du Nord, sa rage au combat est légendaire.",
			"Survivant des terres gelées, endurci par les épreuves de la nature.",
			"Chasseur de géants ayant grandi dans les montagnes hostiles.",
			"Nomade des steppes, libre comme le vent et féroce comme l'orage.",
		},
	},
}
