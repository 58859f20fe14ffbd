// Package cas is a content-addressed archive for logbook files.
//
// Every document is keyed by the SHA-256 of its uncompressed bytes and stored
// xz-compressed under <root>/blobs/sha256/<first2>/<hash>.xz. A BLAKE3 alias
// pointer is written alongside so that callers holding a BLAKE3 fingerprint
// (the API report cache key) can find the same blob.
package cas

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/uddf/core/errors"
)

// osRename is a variable to allow testing of rename errors.
var osRename = os.Rename

// hashPattern matches a lowercase 256-bit hex digest.
var hashPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Store is a content-addressed archive rooted at a directory.
type Store struct {
	root string
}

// NewStore opens or creates an archive at root.
func NewStore(root string) (*Store, error) {
	for _, dir := range []string{"sha256", "blake3"} {
		if err := os.MkdirAll(filepath.Join(root, "blobs", dir), 0755); err != nil {
			return nil, errors.NewIO("create", filepath.Join(root, "blobs", dir), err)
		}
	}
	return &Store{root: root}, nil
}

// Root returns the archive directory.
func (s *Store) Root() string {
	return s.root
}

// Put archives data and returns its digests. Storing the same content twice
// is a no-op.
func (s *Store) Put(data []byte) (Digest, error) {
	d := Sum(data)

	blobPath := s.blobPath(d.SHA256)
	if _, err := os.Stat(blobPath); err != nil {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return Digest{}, fmt.Errorf("creating xz writer: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return Digest{}, fmt.Errorf("compressing blob: %w", err)
		}
		if err := w.Close(); err != nil {
			return Digest{}, fmt.Errorf("compressing blob: %w", err)
		}
		if err := writeAtomic(blobPath, buf.Bytes()); err != nil {
			return Digest{}, err
		}
	}

	if err := s.writePointer(d); err != nil {
		return Digest{}, fmt.Errorf("failed to create BLAKE3 pointer: %w", err)
	}
	return d, nil
}

// Get returns the archived bytes for a SHA-256 digest. The content is
// verified against the digest before it is returned.
func (s *Store) Get(sha string) ([]byte, error) {
	if !ValidHash(sha) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid hash %q", sha)
	}

	f, err := os.Open(s.blobPath(sha))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("blob", sha)
		}
		return nil, errors.NewIO("open", s.blobPath(sha), err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, errors.NewIO("decompress", s.blobPath(sha), err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("decompress", s.blobPath(sha), err)
	}

	if got := SHA256(data); got != sha {
		return nil, fmt.Errorf("blob %s is corrupt: content hashes to %s", sha, got)
	}
	return data, nil
}

// Has reports whether a blob with the SHA-256 digest is archived.
func (s *Store) Has(sha string) bool {
	if !ValidHash(sha) {
		return false
	}
	_, err := os.Stat(s.blobPath(sha))
	return err == nil
}

func (s *Store) blobPath(sha string) string {
	return filepath.Join(s.root, "blobs", "sha256", sha[:2], sha+".xz")
}

// writeAtomic writes data to a temp file in the target directory and renames
// it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return errors.NewIO("create", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewIO("close", tmpPath, err)
	}
	if err := osRename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.NewIO("rename", path, err)
	}
	return nil
}

// ValidHash reports whether s is a lowercase hex 256-bit digest.
func ValidHash(s string) bool {
	return hashPattern.MatchString(s)
}

// SHA256 returns the hex SHA-256 of data.
func SHA256(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
