// Package textutil normaliza texto para búsquedas insensibles a acentos y
// mayúsculas ("panqué" y "PANQUE" deben coincidir).
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Plegar devuelve el texto en minúsculas y sin marcas diacríticas.
func Plegar(s string) string {
	plano, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(plano)
}

// Coincide indica si la consulta aparece dentro del texto, comparando
// versiones plegadas de ambos.
func Coincide(texto, consulta string) bool {
	if consulta == "" {
		return true
	}
	return strings.Contains(Plegar(texto), Plegar(consulta))
}
