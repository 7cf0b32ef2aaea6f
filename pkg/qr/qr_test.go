package qr_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invitados-api/pkg/qr"
)

func TestNewCode_PrefijoYUnicidad(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := qr.NewCode()
		assert.True(t, strings.HasPrefix(code, "QR-"), "código sin prefijo: %s", code)
		assert.False(t, seen[code], "código repetido: %s", code)
		seen[code] = true
	}
}

func TestRenderPNG_ImagenValida(t *testing.T) {
	data, err := qr.RenderPNG("QR-123-abc", 256)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "la salida debe ser un PNG decodificable")
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestRenderPNG_ContenidoVacio(t *testing.T) {
	_, err := qr.RenderPNG("", 256)
	assert.Error(t, err)
}

func TestRenderPNG_TamañoPorDefecto(t *testing.T) {
	data, err := qr.RenderPNG("QR-123-abc", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx(), "size <= 0 usa 256 por defecto")
}
