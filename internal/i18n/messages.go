package i18n

// English source strings double as message keys
const (
	LabelTaskID           = "Task Id"
	LabelProject          = "Project"
	LabelStatus           = "Status"
	LabelCategory         = "Category"
	LabelColumn           = "Column"
	LabelPosition         = "Position"
	LabelColor            = "Color"
	LabelDueDate          = "Due date"
	LabelCreator          = "Creator"
	LabelAssignee         = "Assignee"
	LabelComplexity       = "Complexity"
	LabelTitle            = "Title"
	LabelCreationDate     = "Creation date"
	LabelModificationDate = "Modification date"
	LabelCompletionDate   = "Completion date"

	StatusOpen   = "Open"
	StatusClosed = "Closed"

	MsgAssignedTo     = "Assigned to %s"
	MsgNobodyAssigned = "There is nobody assigned"
	MsgDescription    = "Description"
	MsgNoDescription  = "There is no description."
	MsgViewTask       = "View task #%d"
)

// translations maps a language to its translated strings, keyed by the
// English source. Missing keys fall back to English.
var translations = map[string]map[string]string{
	"fr": {
		LabelTaskID:           "Identifiant de la tâche",
		LabelProject:          "Projet",
		LabelStatus:           "Statut",
		LabelCategory:         "Catégorie",
		LabelColumn:           "Colonne",
		LabelPosition:         "Position",
		LabelColor:            "Couleur",
		LabelDueDate:          "Date d'échéance",
		LabelCreator:          "Créateur",
		LabelAssignee:         "Personne assignée",
		LabelComplexity:       "Complexité",
		LabelTitle:            "Titre",
		LabelCreationDate:     "Date de création",
		LabelModificationDate: "Date de modification",
		LabelCompletionDate:   "Date de complétion",
		StatusOpen:            "Ouvert",
		StatusClosed:          "Fermé",
		MsgAssignedTo:         "Assigné à %s",
		MsgNobodyAssigned:     "Personne n'est assigné",
		MsgDescription:        "Description",
		MsgNoDescription:      "Il n'y a pas de description.",
		MsgViewTask:           "Voir la tâche n°%d",
		"Yellow":              "Jaune",
		"Blue":                "Bleu",
		"Green":               "Vert",
		"Purple":              "Violet",
		"Red":                 "Rouge",
		"Orange":              "Orange",
		"Grey":                "Gris",
		"Brown":               "Marron",
		"Deep Orange":         "Orange foncé",
		"Dark Grey":           "Gris foncé",
		"Pink":                "Rose",
		"Teal":                "Turquoise",
		"Cyan":                "Bleu intense",
		"Lime":                "Vert citron",
		"Light Green":         "Vert clair",
		"Amber":               "Ambre",
	},
	"de": {
		LabelTaskID:           "Aufgaben-ID",
		LabelProject:          "Projekt",
		LabelStatus:           "Status",
		LabelCategory:         "Kategorie",
		LabelColumn:           "Spalte",
		LabelPosition:         "Position",
		LabelColor:            "Farbe",
		LabelDueDate:          "Fälligkeitsdatum",
		LabelCreator:          "Ersteller",
		LabelAssignee:         "Zuständigkeit",
		LabelComplexity:       "Komplexität",
		LabelTitle:            "Titel",
		LabelCreationDate:     "Erstellungsdatum",
		LabelModificationDate: "Änderungsdatum",
		LabelCompletionDate:   "Abschlussdatum",
		StatusOpen:            "Offen",
		StatusClosed:          "Abgeschlossen",
		MsgAssignedTo:         "Zuständig: %s",
		MsgNobodyAssigned:     "Niemand ist zuständig",
		MsgDescription:        "Beschreibung",
		MsgNoDescription:      "Keine Beschreibung vorhanden.",
		MsgViewTask:           "Aufgabe #%d ansehen",
		"Yellow":              "Gelb",
		"Blue":                "Blau",
		"Green":               "Grün",
		"Purple":              "Lila",
		"Red":                 "Rot",
		"Orange":              "Orange",
		"Grey":                "Grau",
		"Brown":               "Braun",
		"Deep Orange":         "Dunkelorange",
		"Dark Grey":           "Dunkelgrau",
		"Pink":                "Pink",
		"Teal":                "Türkis",
		"Cyan":                "Cyan",
		"Lime":                "Hellgrün",
		"Light Green":         "Grasgrün",
		"Amber":               "Bernstein",
	},
	"es": {
		LabelTaskID:           "Id de la tarea",
		LabelProject:          "Proyecto",
		LabelStatus:           "Estado",
		LabelCategory:         "Categoría",
		LabelColumn:           "Columna",
		LabelPosition:         "Posición",
		LabelColor:            "Color",
		LabelDueDate:          "Fecha de vencimiento",
		LabelCreator:          "Creador",
		LabelAssignee:         "Asignado",
		LabelComplexity:       "Complejidad",
		LabelTitle:            "Título",
		LabelCreationDate:     "Fecha de creación",
		LabelModificationDate: "Fecha de modificación",
		LabelCompletionDate:   "Fecha de finalización",
		StatusOpen:            "Abierto",
		StatusClosed:          "Cerrado",
		MsgAssignedTo:         "Asignado a %s",
		MsgNobodyAssigned:     "No hay nadie asignado",
		MsgDescription:        "Descripción",
		MsgNoDescription:      "No hay descripción.",
		MsgViewTask:           "Ver la tarea #%d",
		"Yellow":              "Amarillo",
		"Blue":                "Azul",
		"Green":               "Verde",
		"Purple":              "Púrpura",
		"Red":                 "Rojo",
		"Orange":              "Naranja",
		"Grey":                "Gris",
		"Brown":               "Marrón",
		"Deep Orange":         "Naranja oscuro",
		"Dark Grey":           "Gris oscuro",
		"Pink":                "Rosa",
		"Teal":                "Verde azulado",
		"Cyan":                "Cian",
		"Lime":                "Lima",
		"Light Green":         "Verde claro",
		"Amber":               "Ámbar",
	},
	"pt-BR": {
		LabelTaskID:           "ID da Tarefa",
		LabelProject:          "Projeto",
		LabelStatus:           "Status",
		LabelCategory:         "Categoria",
		LabelColumn:           "Coluna",
		LabelPosition:         "Posição",
		LabelColor:            "Cor",
		LabelDueDate:          "Data de vencimento",
		LabelCreator:          "Criador",
		LabelAssignee:         "Designado",
		LabelComplexity:       "Complexidade",
		LabelTitle:            "Título",
		LabelCreationDate:     "Data de criação",
		LabelModificationDate: "Data de modificação",
		LabelCompletionDate:   "Data de conclusão",
		StatusOpen:            "Aberta",
		StatusClosed:          "Fechada",
		MsgAssignedTo:         "Designado para %s",
		MsgNobodyAssigned:     "Não há ninguém designado",
		MsgDescription:        "Descrição",
		MsgNoDescription:      "Não há descrição.",
		MsgViewTask:           "Ver a tarefa #%d",
		"Yellow":              "Amarelo",
		"Blue":                "Azul",
		"Green":               "Verde",
		"Purple":              "Roxo",
		"Red":                 "Vermelho",
		"Orange":              "Laranja",
		"Grey":                "Cinza",
		"Brown":               "Marrom",
		"Deep Orange":         "Laranja escuro",
		"Dark Grey":           "Cinza escuro",
		"Pink":                "Rosa",
		"Teal":                "Turquesa",
		"Cyan":                "Ciano",
		"Lime":                "Verde limão",
		"Light Green":         "Verde claro",
		"Amber":               "Âmbar",
	},
}
