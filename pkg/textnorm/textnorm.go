// Package textnorm normaliza nomes para busca e casamento sem acentos,
// necessário porque cardápio e notas fiscais vêm com acentuação inconsistente
// ("Pão de Queijo" vs "PAO DE QUEIJO").
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize remove acentos, baixa a caixa e colapsa espaços das pontas.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
