package repository

import (
	"context"
	"os"
	"testing"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSpeechLoadAllDropsMalformedRows(t *testing.T) {
	st := newTestStore(t)
	contents := "ID_Bloque,Titulo_del_Bloque,Categoria_Principal,Subcategoria_Topico,Texto_del_Speech,Recomendacion_Interna,ID_Siguiente_Paso,Tags\n" +
		"B01,Saludo,General,Inicio,Hola [nombre],,B02,saludo\n" +
		"B02,Sin texto,General,Inicio,,,,\n" + // empty body -> dropped
		",Sin id,General,Inicio,Texto,,,\n" + // empty block id -> dropped
		"B03,Despedida,General,Cierre,Gracias por escribirnos<br>Hasta pronto,,,cierre\n"
	require.NoError(t, os.WriteFile(st.Path(store.TableSpeeches), []byte(contents), 0o644))

	repo := NewCSVSpeechRepo(st)
	speeches, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, speeches, 2)

	assert.Equal(t, "B01", speeches[0].BlockID)
	assert.Equal(t, "B02", speeches[0].NextStepID)
	assert.Equal(t, []string{"saludo"}, speeches[0].Tags)

	// <br> expands to a real line break at load time.
	assert.Equal(t, "Gracias por escribirnos\nHasta pronto", speeches[1].Body)
}

func TestSpeechLoadAllBuildsSearchText(t *testing.T) {
	st := newTestStore(t)
	contents := "ID_Bloque,Titulo_del_Bloque,Categoria_Principal,Subcategoria_Topico,Texto_del_Speech,Recomendacion_Interna,ID_Siguiente_Paso,Tags\n" +
		"B01,Cuenta Bloqueada,Accesos,Bloqueo,Su cuenta fue restringida,,,\"desbloqueo, acceso\"\n"
	require.NoError(t, os.WriteFile(st.Path(store.TableSpeeches), []byte(contents), 0o644))

	repo := NewCSVSpeechRepo(st)
	speeches, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, speeches, 1)

	assert.Contains(t, speeches[0].SearchText, "cuenta bloqueada")
	assert.Contains(t, speeches[0].SearchText, "restringida")
	assert.Contains(t, speeches[0].SearchText, "desbloqueo acceso")
}

func TestSpeechSaveAllRoundTrip(t *testing.T) {
	st := newTestStore(t)
	repo := NewCSVSpeechRepo(st)
	ctx := context.Background()

	in := []*domain.Speech{
		{
			BlockID:        "B01",
			Title:          "Saludo",
			Category:       "General",
			Subcategory:    "Inicio",
			Body:           "Hola [nombre], ¿en qué te ayudo?\nEstoy atento.",
			Recommendation: "Usar tono cordial",
			NextStepID:     "B02",
			Tags:           []string{"saludo", "inicio"},
		},
		{
			BlockID: "B02",
			Title:   "Cierre",
			Body:    "Gracias por escribirnos",
		},
	}
	require.NoError(t, repo.SaveAll(ctx, in))

	out, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, in[0].BlockID, out[0].BlockID)
	assert.Equal(t, in[0].Title, out[0].Title)
	assert.Equal(t, in[0].Category, out[0].Category)
	assert.Equal(t, in[0].Subcategory, out[0].Subcategory)
	assert.Equal(t, in[0].Body, out[0].Body)
	assert.Equal(t, in[0].Recommendation, out[0].Recommendation)
	assert.Equal(t, in[0].NextStepID, out[0].NextStepID)
	assert.Equal(t, in[0].Tags, out[0].Tags)
}
