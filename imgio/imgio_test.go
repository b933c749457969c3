package imgio

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 128, 255, 255})
		}
	}
	return img
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, testImage(), "gif")
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestSave_FormatByExtension(t *testing.T) {
	for _, name := range []string{"out.png", "out.bmp", "out.jpg", "out.JPEG"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(testImage(), path))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			decoded, _, err := image.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, 20, decoded.Bounds().Dx())
			assert.Equal(t, 20, decoded.Bounds().Dy())
		})
	}
}

func TestSave_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	assert.Error(t, Save(testImage(), path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSave_NoExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	assert.Error(t, Save(testImage(), path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	assert.Error(t, Save(testImage(), path))
}
