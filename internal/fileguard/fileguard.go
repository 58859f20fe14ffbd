// Package fileguard validates user-supplied paths and files before they
// reach the decoder, to prevent path traversal and resource exhaustion.
package fileguard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Security limits to prevent DoS attacks (CWE-400).
const (
	// MaxFileSize is the maximum size of a logbook read from disk or a
	// request body (64 MB). Decompressed xz content is held to the same
	// limit.
	MaxFileSize = 64 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrPathTraversal    = errors.New("path traversal detected")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrFileTooLarge     = errors.New("file too large")
)

// SanitizePath validates a user-supplied path and ensures it does not escape
// baseDir. It returns the cleaned path relative to baseDir.
func SanitizePath(baseDir, userPath string) (string, error) {
	if err := ValidatePath(userPath); err != nil {
		return "", err
	}

	cleanPath := filepath.Clean(userPath)

	if strings.Contains(cleanPath, "..") {
		return "", ErrPathTraversal
	}
	if filepath.IsAbs(cleanPath) {
		return "", fmt.Errorf("%w: absolute path not allowed", ErrPathTraversal)
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(baseDir, cleanPath))
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	relPath, err := filepath.Rel(absBase, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return "", ErrPathTraversal
	}

	return cleanPath, nil
}

// ResolvePath is SanitizePath followed by joining the result onto baseDir.
func ResolvePath(baseDir, userPath string) (string, error) {
	clean, err := SanitizePath(baseDir, userPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, clean), nil
}

// ValidatePath checks a path for length limits and control characters
// without requiring a base directory.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// ReadFile reads path, refusing files larger than MaxFileSize.
func ReadFile(path string) ([]byte, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrFileTooLarge, path, info.Size(), MaxFileSize)
	}
	return ReadLimited(f)
}

// ReadLimited reads r to EOF, failing once more than MaxFileSize bytes have
// been read.
func ReadLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, MaxFileSize)
	}
	return data, nil
}

// Kind is a content type detected from leading bytes.
type Kind string

const (
	KindXZ      Kind = "xz"
	KindXML     Kind = "xml"
	KindUnknown Kind = "unknown"
)

var xzMagic = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Detect classifies data by its magic bytes. XML is recognized by a leading
// '<' after an optional byte order mark and whitespace.
func Detect(data []byte) Kind {
	if bytes.HasPrefix(data, xzMagic) {
		return KindXZ
	}
	rest := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")
	if len(rest) > 0 && rest[0] == '<' {
		return KindXML
	}
	return KindUnknown
}
