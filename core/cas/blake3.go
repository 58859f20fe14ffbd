package cas

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/uddf/core/errors"
)

// Digest holds both fingerprints of a document.
type Digest struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Sum computes both fingerprints of data without storing it.
func Sum(data []byte) Digest {
	return Digest{SHA256: SHA256(data), BLAKE3: BLAKE3(data)}
}

// BLAKE3 returns the hex BLAKE3-256 of data.
func BLAKE3(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// blake3Pointer is the content of an alias file.
type blake3Pointer struct {
	SHA256 string `json:"sha256"`
}

func (s *Store) pointerPath(b3 string) string {
	return filepath.Join(s.root, "blobs", "blake3", b3[:2], b3+".json")
}

func (s *Store) writePointer(d Digest) error {
	path := s.pointerPath(d.BLAKE3)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	data, err := json.Marshal(blake3Pointer{SHA256: d.SHA256})
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// ResolveBLAKE3 returns the SHA-256 digest aliased by a BLAKE3 digest.
func (s *Store) ResolveBLAKE3(b3 string) (string, error) {
	if !ValidHash(b3) {
		return "", errors.Wrapf(errors.ErrInvalidInput, "invalid hash %q", b3)
	}

	data, err := os.ReadFile(s.pointerPath(b3))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFound("blob", b3)
		}
		return "", errors.NewIO("read", s.pointerPath(b3), err)
	}

	var p blake3Pointer
	if err := json.Unmarshal(data, &p); err != nil {
		return "", &errors.ParseError{Format: "pointer", Path: s.pointerPath(b3), Message: err.Error(), Err: err}
	}
	return p.SHA256, nil
}

// GetBLAKE3 returns the archived bytes for a BLAKE3 digest.
func (s *Store) GetBLAKE3(b3 string) ([]byte, error) {
	sha, err := s.ResolveBLAKE3(b3)
	if err != nil {
		return nil, err
	}
	return s.Get(sha)
}
