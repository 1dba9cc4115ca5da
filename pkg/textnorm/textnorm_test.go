package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comandaki/comanda-api/pkg/textnorm"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "acucar cristal", textnorm.Normalize("Açúcar Cristal"))
	assert.Equal(t, "pao frances", textnorm.Normalize("  PÃO FRANCÊS  "))
	assert.Equal(t, "queijo mucarela", textnorm.Normalize("Queijo Muçarela"))
	assert.Equal(t, "", textnorm.Normalize("   "))
}

func TestNormalize_Idempotente(t *testing.T) {
	once := textnorm.Normalize("Linguiça Calabresa")
	assert.Equal(t, once, textnorm.Normalize(once))
}
