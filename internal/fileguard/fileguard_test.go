package fileguard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizePath(t *testing.T) {
	baseDir := "/srv/logbooks"

	tests := []struct {
		name      string
		userPath  string
		want      string
		wantError error
	}{
		{
			name:     "simple valid path",
			userPath: "dives.uddf",
			want:     "dives.uddf",
		},
		{
			name:     "nested valid path",
			userPath: "2024/red-sea.uddf",
			want:     filepath.Join("2024", "red-sea.uddf"),
		},
		{
			name:     "redundant separators",
			userPath: "2024//red-sea.uddf",
			want:     filepath.Join("2024", "red-sea.uddf"),
		},
		{
			name:     "dot component",
			userPath: "./dives.uddf",
			want:     "dives.uddf",
		},
		{
			name:      "path traversal with dotdot",
			userPath:  "../etc/passwd",
			wantError: ErrPathTraversal,
		},
		{
			name:      "path traversal in middle",
			userPath:  "2024/../../etc/passwd",
			wantError: ErrPathTraversal,
		},
		{
			name:      "absolute path",
			userPath:  "/etc/passwd",
			wantError: ErrPathTraversal,
		},
		{
			name:      "empty path",
			userPath:  "",
			wantError: ErrEmptyPath,
		},
		{
			name:      "null byte",
			userPath:  "dives\x00.uddf",
			wantError: ErrInvalidCharacter,
		},
		{
			name:      "too long",
			userPath:  strings.Repeat("a", MaxPathLength+1),
			wantError: ErrPathTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(baseDir, tt.userPath)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("SanitizePath() error = %v, want %v", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizePath() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SanitizePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	base := t.TempDir()

	got, err := ResolvePath(base, "trip/dive.uddf")
	if err != nil {
		t.Fatalf("ResolvePath() error: %v", err)
	}
	if want := filepath.Join(base, "trip", "dive.uddf"); got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}

	if _, err := ResolvePath(base, "../outside.uddf"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("ResolvePath(traversal) error = %v", err)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr error
	}{
		{"dives.uddf", nil},
		{"/abs/dives.uddf", nil},
		{"", ErrEmptyPath},
		{"tab\tname", ErrInvalidCharacter},
		{"nul\x00name", ErrInvalidCharacter},
	}
	for _, tt := range tests {
		if err := ValidatePath(tt.path); !errors.Is(err, tt.wantErr) {
			t.Errorf("ValidatePath(%q) = %v, want %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dive.uddf")
	if err := os.WriteFile(path, []byte("<uddf/>"), 0o600); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "<uddf/>" {
		t.Errorf("ReadFile() = %q", data)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.uddf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v", err)
	}
}

func TestReadFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.uddf")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	// Sparse file: no disk space is used.
	if err := f.Truncate(MaxFileSize + 1); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := ReadFile(path); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("ReadFile() error = %v, want ErrFileTooLarge", err)
	}
}

func TestReadLimited(t *testing.T) {
	data, err := ReadLimited(strings.NewReader("small"))
	if err != nil || string(data) != "small" {
		t.Errorf("ReadLimited() = %q, %v", data, err)
	}

	big := bytes.NewReader(make([]byte, MaxFileSize+10))
	if _, err := ReadLimited(big); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("ReadLimited(big) error = %v", err)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Kind
	}{
		{"xz", append([]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, 0x00, 0x04), KindXZ},
		{"xml declaration", []byte(`<?xml version="1.0"?><uddf/>`), KindXML},
		{"bare element", []byte("<uddf/>"), KindXML},
		{"leading whitespace", []byte("\n  <uddf/>"), KindXML},
		{"byte order mark", append([]byte{0xef, 0xbb, 0xbf}, "<uddf/>"...), KindXML},
		{"json", []byte(`{"dives":[]}`), KindUnknown},
		{"empty", nil, KindUnknown},
		{"short xz prefix", []byte{0xfd, 0x37}, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.data); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
