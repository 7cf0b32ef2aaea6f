// Package qr genera los códigos QR de los invitados: el identificador opaco
// que se persiste y su representación PNG para la respuesta HTTP.
package qr

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/google/uuid"
)

// NewCode genera un código opaco con prefijo temporal y sufijo aleatorio.
// La unicidad real la garantiza el constraint UNIQUE de la tabla guests;
// aquí solo se hace la colisión prácticamente imposible.
func NewCode() string {
	return fmt.Sprintf("QR-%d-%s", time.Now().UnixMilli(), uuid.NewString())
}

// RenderPNG codifica el contenido como imagen QR de size x size píxeles.
func RenderPNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr: contenido vacío")
	}
	if size <= 0 {
		size = 256
	}
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: codificar: %w", err)
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qr: escalar: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("qr: png: %w", err)
	}
	return buf.Bytes(), nil
}
