package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeechValidate(t *testing.T) {
	tests := []struct {
		name    string
		speech  Speech
		wantErr bool
	}{
		{"valid", Speech{BlockID: "B01", Body: "Hola"}, false},
		{"missing block id", Speech{Body: "Hola"}, true},
		{"blank block id", Speech{BlockID: "   ", Body: "Hola"}, true},
		{"empty body", Speech{BlockID: "B01"}, true},
		{"whitespace body", Speech{BlockID: "B01", Body: "  \n "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.speech.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRebuildSearchText(t *testing.T) {
	s := Speech{
		Title: "Cuenta Bloqueada",
		Body:  "Tu cuenta fue BLOQUEADA por seguridad.",
	}
	s.SetTags("Bloqueo, Acceso")
	s.RebuildSearchText()

	assert.Contains(t, s.SearchText, "cuenta bloqueada")
	assert.Contains(t, s.SearchText, "por seguridad")
	assert.Contains(t, s.SearchText, "bloqueo acceso")
	assert.Equal(t, s.SearchText, string([]byte(s.SearchText)))

	// Changing the body and rebuilding picks up the new content.
	s.Body = "Nuevo texto"
	s.RebuildSearchText()
	assert.Contains(t, s.SearchText, "nuevo texto")
	assert.NotContains(t, s.SearchText, "seguridad")
}

func TestSetTags(t *testing.T) {
	var s Speech
	s.SetTags("Bloqueo,  acceso PIN , ")
	assert.Equal(t, []string{"bloqueo", "acceso", "pin"}, s.Tags)
	assert.Equal(t, "bloqueo, acceso, pin", s.TagString())

	s.SetTags("")
	assert.Empty(t, s.Tags)
}
