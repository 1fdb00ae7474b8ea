package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza un nombre para comparación: minúsculas, sin espacios en los
// extremos y sin marcas diacríticas ("Azúcar Morena" -> "azucar morena").
// Los comandos de voz y las deducciones de venta llegan con nombres escritos
// por humanos; la coincidencia debe tolerar tildes y mayúsculas.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Matches indica si el nombre de un ítem coincide con una palabra clave ya
// parseada: igualdad o contención en ambos sentidos, sobre las formas plegadas.
func Matches(itemName, keyword string) bool {
	a, b := Fold(itemName), Fold(keyword)
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
