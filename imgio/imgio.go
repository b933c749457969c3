// Package imgio encodes rendered images and writes them to disk, picking
// the codec from the output file's extension.
package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	gobmp "golang.org/x/image/bmp"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "imgio")

// Encode writes img to w in the given format: png, bmp, jpg or jpeg.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return gobmp.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// Save writes img to path, inferring the format from the extension. The
// image is encoded up front, so an unknown extension or encoder failure
// never leaves a file behind.
func Save(img image.Image, path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("output path %q has no extension", path)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, ext); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"path": path, "bytes": buf.Len()}).Debug("image saved")
	return nil
}
