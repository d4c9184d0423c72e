// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides image file opening and saving
// plus a few helpers for converting images.
package imagex

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image encoding / decoding formats
type Formats int32

// The supported image encoding formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// ErrNotImage is returned by [Read] when the data does not
// start with the signature of any known image format.
var ErrNotImage = errors.New("imagex: data is not a recognized image")

// sniffLen is the number of header bytes filetype needs to match any type.
const sniffLen = 261

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Open opens an image from the given filename.
// The format is inferred automatically,
// and is returned using the Formats enum.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	im, f, err := Read(file)
	if err != nil {
		return nil, None, fmt.Errorf("imagex.Open: %s: %w", filename, err)
	}
	return im, f, nil
}

// Read reads an image from the given reader.
// The header is checked with filetype first so that
// non-image data fails with [ErrNotImage] rather than
// a decoder-specific message.
func Read(r io.Reader) (image.Image, Formats, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, None, err
	}
	if !filetype.IsImage(head) {
		return nil, None, ErrNotImage
	}
	im, ext, err := image.Decode(br)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(ext)
	return im, f, err
}

// Save saves the image to the given filename,
// with the format inferred from the filename.
// png, jpeg, gif, tiff, and bmp are supported.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	enc, err := encoder(f)
	if err != nil {
		return err
	}
	return imgio.Save(filename, im, enc)
}

// Write writes the image to the given writer using the given format.
// png, jpeg, gif, tiff, and bmp are supported.
func Write(im image.Image, w io.Writer, f Formats) error {
	enc, err := encoder(f)
	if err != nil {
		return err
	}
	return enc(w, im)
}

func encoder(f Formats) (imgio.Encoder, error) {
	switch f {
	case PNG:
		return imgio.PNGEncoder(), nil
	case JPEG:
		return imgio.JPEGEncoder(90), nil
	case BMP:
		return imgio.BMPEncoder(), nil
	case GIF:
		return func(w io.Writer, im image.Image) error {
			return gif.Encode(w, im, nil)
		}, nil
	case TIFF:
		return func(w io.Writer, im image.Image) error {
			return tiff.Encode(w, im, nil)
		}, nil
	default:
		return nil, fmt.Errorf("iox/imagex: format %q not valid for encoding", f)
	}
}
