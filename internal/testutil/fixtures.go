// Package testutil provides store fixtures shared by service and CLI tests.
package testutil

import (
	"context"
	"testing"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/repository"
	"github.com/enriquemv/speechdesk/internal/store"
)

// NewTestStore creates a store rooted in a temp directory that is removed
// when the test completes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s
}

// SeedCatalog writes a small representative catalog and returns it as
// loaded domain records.
func SeedCatalog(t *testing.T, st *store.Store) []*domain.Speech {
	t.Helper()
	repo := repository.NewCSVSpeechRepo(st)
	catalog := []*domain.Speech{
		{
			BlockID:        "B01",
			Title:          "Bloqueo de cuenta",
			Category:       "Accesos",
			Subcategory:    "Bloqueos",
			Body:           "Hola [nombre], tu acceso fue restringido por seguridad.",
			Recommendation: "Verificar identidad antes de desbloquear",
			NextStepID:     "B02",
			Tags:           []string{"desbloqueo", "acceso"},
		},
		{
			BlockID:     "B02",
			Title:       "Verificación de identidad",
			Category:    "Accesos",
			Subcategory: "Bloqueos",
			Body:        "Para continuar necesito tu [documento] y tu [celular].",
		},
		{
			BlockID:     "B03",
			Title:       "Pago no recibido",
			Category:    "Pagos",
			Subcategory: "Transferencias",
			Body:        "Tu transferencia está en proceso, el dinero llega en minutos.",
			Tags:        []string{"yapeo", "pago"},
		},
		{
			BlockID:     "B04",
			Title:       "Despedida",
			Category:    "General",
			Subcategory: "Cierre",
			Body:        "Gracias por escribirnos, [nombre]. ¡Hasta pronto!",
		},
	}
	ctx := context.Background()
	if err := repo.SaveAll(ctx, catalog); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("failed to load seeded catalog: %v", err)
	}
	return loaded
}
