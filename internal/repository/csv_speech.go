package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/store"
)

// CSVSpeechRepo implements SpeechRepo over the flat-file store.
type CSVSpeechRepo struct {
	store *store.Store
}

// NewCSVSpeechRepo creates a new CSVSpeechRepo.
func NewCSVSpeechRepo(s *store.Store) *CSVSpeechRepo {
	return &CSVSpeechRepo{store: s}
}

func (r *CSVSpeechRepo) LoadAll(ctx context.Context) ([]*domain.Speech, error) {
	rows, err := r.store.Load(store.TableSpeeches)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	speeches := make([]*domain.Speech, 0, len(rows))
	for _, row := range rows {
		s := scanSpeech(row)
		if s.Validate() != nil {
			// Malformed rows are dropped at load time, not surfaced.
			continue
		}
		speeches = append(speeches, s)
	}
	return speeches, nil
}

func (r *CSVSpeechRepo) SaveAll(ctx context.Context, speeches []*domain.Speech) error {
	rows := make([]store.Row, 0, len(speeches))
	for _, s := range speeches {
		rows = append(rows, store.Row{
			"ID_Bloque":             s.BlockID,
			"Titulo_del_Bloque":     s.Title,
			"Categoria_Principal":   s.Category,
			"Subcategoria_Topico":   s.Subcategory,
			"Texto_del_Speech":      s.Body,
			"Recomendacion_Interna": s.Recommendation,
			"ID_Siguiente_Paso":     s.NextStepID,
			"Tags":                  s.TagString(),
		})
	}
	if err := r.store.SaveAll(store.TableSpeeches, rows); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	return nil
}

func scanSpeech(row store.Row) *domain.Speech {
	s := &domain.Speech{
		BlockID:        strings.TrimSpace(row["ID_Bloque"]),
		Title:          row["Titulo_del_Bloque"],
		Category:       row["Categoria_Principal"],
		Subcategory:    row["Subcategoria_Topico"],
		Recommendation: row["Recomendacion_Interna"],
		NextStepID:     strings.TrimSpace(row["ID_Siguiente_Paso"]),
	}
	// <br> is the authoring convention for line breaks in the catalog file.
	s.Body = strings.ReplaceAll(row["Texto_del_Speech"], "<br>", "\n")
	s.SetTags(row["Tags"])
	s.RebuildSearchText()
	return s
}
