package codec

import (
	"bytes"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/uddf/core/errors"
	"github.com/FocuswithJustin/uddf/core/uddf"
	"github.com/FocuswithJustin/uddf/internal/fileguard"
)

// CompressedSuffix marks logbooks written with xz compression.
const CompressedSuffix = ".xz"

// ReadFile reads and decodes the logbook at path. xz-compressed files are
// detected by their magic bytes regardless of name.
func ReadFile(path string) (*uddf.Document, error) {
	data, err := ReadBytes(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data)
	if err != nil {
		var perr *errors.ParseError
		if errors.As(err, &perr) && perr.Path == "" {
			perr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// ReadBytes returns the XML content of path, decompressed if needed.
func ReadBytes(path string) ([]byte, error) {
	data, err := fileguard.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.NewNotFound("file", path)
		}
		return nil, errors.NewIO("read", path, err)
	}
	return Decompress(data)
}

// Decompress returns data unchanged unless it starts with the xz magic, in
// which case the decompressed content is returned. Output is size limited
// like any other input.
func Decompress(data []byte) ([]byte, error) {
	if fileguard.Detect(data) != fileguard.KindXZ {
		return data, nil
	}
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewIO("decompress", "", err)
	}
	out, err := fileguard.ReadLimited(r)
	if err != nil {
		return nil, errors.NewIO("decompress", "", err)
	}
	return out, nil
}

// Compress returns data as an xz stream.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, errors.NewIO("compress", "", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, errors.NewIO("compress", "", err)
	}
	if err := w.Close(); err != nil {
		return nil, errors.NewIO("compress", "", err)
	}
	return buf.Bytes(), nil
}

// WriteFile encodes doc to path. Paths ending in ".xz" are compressed.
func WriteFile(path string, doc *uddf.Document) error {
	if err := fileguard.ValidatePath(path); err != nil {
		return errors.NewIO("write", path, err)
	}

	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if strings.HasSuffix(strings.ToLower(path), CompressedSuffix) {
		if data, err = Compress(data); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}
