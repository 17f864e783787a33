package store

// Table identifies one of the flat-file tables managed by the Store.
type Table string

const (
	TableSpeeches Table = "speeches"
	TableUsage    Table = "usage"
	TableFeedback Table = "feedback"
	TableReview   Table = "review"
	TableSnippets Table = "snippets"
)

// schema describes the on-disk shape of a table: its file name and the
// canonical column order. Column names match the operator-authored CSV
// files the original catalog shipped with.
type schema struct {
	file    string
	columns []string
}

var schemas = map[Table]schema{
	TableSpeeches: {
		file: "Speech.csv",
		columns: []string{
			"ID_Bloque", "Titulo_del_Bloque", "Categoria_Principal",
			"Subcategoria_Topico", "Texto_del_Speech", "Recomendacion_Interna",
			"ID_Siguiente_Paso", "Tags",
		},
	},
	TableUsage: {
		file:    "analytics.csv",
		columns: []string{"ID_Bloque", "Titulo", "Usos"},
	},
	TableFeedback: {
		file:    "feedback.csv",
		columns: []string{"ID", "ID_Bloque", "Feedback", "Comentario", "Fecha"},
	},
	TableReview: {
		file:    "review_log.csv",
		columns: []string{"ID_Bloque", "Titulo", "Fecha"},
	},
	TableSnippets: {
		file:    "snippets.csv",
		columns: []string{"ID", "Snippet", "Fecha"},
	},
}

// Columns returns the canonical column order for the table.
func Columns(t Table) []string {
	return schemas[t].columns
}
