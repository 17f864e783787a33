package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPreservesOrderAndDuplicates(t *testing.T) {
	names := Extract("Hola [nombre], tu saldo es [monto]")
	assert.Equal(t, []string{"nombre", "monto"}, names)

	names = Extract("[codigo] enviado a [celular]; reenviar [codigo]")
	assert.Equal(t, []string{"codigo", "celular", "codigo"}, names)
}

func TestExtractHandlesSpacesAndAccents(t *testing.T) {
	assert.Equal(t, []string{"nombre del cliente"}, Extract("Estimado [nombre del cliente]:"))
	assert.Equal(t, []string{"número"}, Extract("Tu [número] fue actualizado"))
}

func TestExtractNoPlaceholders(t *testing.T) {
	assert.Nil(t, Extract("Sin variables aquí"))
	assert.Nil(t, Extract(""))
	// An empty bracket pair is not a placeholder.
	assert.Nil(t, Extract("lista: []"))
}

func TestFillPositional(t *testing.T) {
	r := Fill("Hola [nombre], tu saldo es [monto]", []string{"Ana", "S/10"})
	assert.Equal(t, "Hola Ana, tu saldo es S/10", r.Text)
	assert.Equal(t, len([]rune(r.Text)), r.CharCount)
}

func TestFillDuplicateNamesGetOwnValues(t *testing.T) {
	// Two occurrences of the same name take their own positional values.
	r := Fill("Primer [codigo], segundo [codigo]", []string{"111", "222"})
	assert.Equal(t, "Primer 111, segundo 222", r.Text)
}

func TestFillMissingValuesBecomeEmpty(t *testing.T) {
	r := Fill("Hola [nombre], tu saldo es [monto]", []string{"Ana"})
	assert.Equal(t, "Hola Ana, tu saldo es ", r.Text)
	assert.NotContains(t, r.Text, "[", "bracket text must never survive")
}

func TestFillCountsRunesNotBytes(t *testing.T) {
	r := Fill("[saludo]", []string{"Buenos días, señor Ñáñez"})
	assert.Equal(t, 24, r.CharCount)
}
