package entity

import "strings"

// TipoImagen discrimina la unión ImagenRef.
type TipoImagen int

const (
	ImagenNinguna TipoImagen = iota
	ImagenURL
	ImagenBase64
)

// ImagenRef es la referencia normalizada a la imagen de un producto.
// El backend puede devolver la imagen como URL, como data-URI o como base64
// pelado; la forma se resuelve una sola vez en la frontera de ingestión y el
// resto del código trabaja con esta unión etiquetada.
type ImagenRef struct {
	Tipo TipoImagen
	// URL cuando Tipo == ImagenURL; contenido base64 (sin prefijo data:)
	// cuando Tipo == ImagenBase64.
	Valor string
}

// NormalizarImagen resuelve el campo de imagen tal como viaja en el JSON a
// una ImagenRef. Acepta URL http(s), data-URI y base64 pelado.
func NormalizarImagen(raw string) ImagenRef {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ImagenRef{Tipo: ImagenNinguna}
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return ImagenRef{Tipo: ImagenURL, Valor: raw}
	}
	if strings.HasPrefix(raw, "data:") {
		// data:image/png;base64,AAAA... -> solo el payload
		if i := strings.Index(raw, ","); i >= 0 {
			return ImagenRef{Tipo: ImagenBase64, Valor: raw[i+1:]}
		}
		return ImagenRef{Tipo: ImagenNinguna}
	}
	// Sin prefijo reconocible se asume base64 pelado (comportamiento del
	// backend en snapshots viejos).
	return ImagenRef{Tipo: ImagenBase64, Valor: raw}
}

// Vacia indica ausencia de imagen.
func (i ImagenRef) Vacia() bool { return i.Tipo == ImagenNinguna }
