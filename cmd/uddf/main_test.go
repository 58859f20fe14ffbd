package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FocuswithJustin/uddf/core/cas"
	"github.com/FocuswithJustin/uddf/core/codec"
	"github.com/FocuswithJustin/uddf/internal/catalog"
	"github.com/FocuswithJustin/uddf/internal/fileguard"
)

const validLog = `<uddf version="3.2.1" xmlns="http://www.streit.cc/uddf/3.2/">
  <generator><name>divelog</name></generator>
  <diver>
    <owner id="owner"><personal><firstname>Ada</firstname><lastname>Diver</lastname></personal></owner>
    <buddy id="buddy1"><personal><firstname>Sam</firstname><lastname>Reef</lastname></personal></buddy>
  </diver>
  <divesite><site id="site1"><name>Blue Hole</name></site></divesite>
  <profiledata>
    <repetitiongroup id="rg1">
      <dive id="dive1">
        <informationbeforedive><notes><link ref="buddy1"/></notes></informationbeforedive>
      </dive>
    </repetitiongroup>
  </profiledata>
</uddf>`

const danglingLog = `<uddf version="3.2.1">
  <generator><name>divelog</name></generator>
  <profiledata>
    <repetitiongroup id="rg1">
      <dive id="dive1">
        <informationbeforedive><notes><link ref="ghost"/></notes></informationbeforedive>
      </dive>
    </repetitiongroup>
  </profiledata>
</uddf>`

const duplicateLog = `<uddf version="3.2.1">
  <generator><name>divelog</name></generator>
  <diver><owner id="same"/></diver>
  <gasdefinitions><mix id="same"><o2>0.21</o2><n2>0.79</n2></mix></gasdefinitions>
</uddf>`

const rangeLog = `<uddf version="3.2.1">
  <generator><name>divelog</name></generator>
  <divesite><site id="s"><geography><latitude>95.0</latitude></geography></site></divesite>
</uddf>`

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	return runWithConfig(t, nil, args...)
}

func runWithConfig(t *testing.T, configPaths []string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, configPaths...)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func TestVersion(t *testing.T) {
	r := runCLI(t, "version")
	if r.code != 0 || !strings.HasPrefix(r.stdout, "uddf version ") {
		t.Errorf("version: code %d, stdout %q", r.code, r.stdout)
	}
}

func TestHelp(t *testing.T) {
	r := runCLI(t, "--help")
	if r.code != 0 {
		t.Errorf("--help exit code = %d", r.code)
	}
	for _, cmd := range []string{"validate", "resolve", "catalog", "serve"} {
		if !strings.Contains(r.stdout, cmd) {
			t.Errorf("help does not mention %q", cmd)
		}
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"missing argument", []string{"validate"}},
		{"unknown command", []string{"dive"}},
		{"bad log level", []string{"--log-level", "loud", "version"}},
		{"missing file", []string{"validate", "/does/not/exist.uddf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, tt.args...)
			if r.code == 0 {
				t.Error("expected a non-zero exit code")
			}
			if !strings.Contains(r.stderr, "uddf: error:") {
				t.Errorf("stderr = %q", r.stderr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := createTestFile(t, dir, "good.uddf", validLog)
	dangling := createTestFile(t, dir, "dangling.uddf", danglingLog)
	broken := createTestFile(t, dir, "broken.uddf", "<uddf")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		want     []string
	}{
		{"valid", []string{"validate", good}, 0, []string{"good.uddf: valid (1 dive, 0 errors"}},
		{"dangling reference", []string{"validate", dangling}, 1, []string{"dangling.uddf: invalid", "  error    "}},
		{"references disabled", []string{"validate", "--no-references", dangling}, 0, []string{"dangling.uddf: valid"}},
		{"broken", []string{"validate", broken}, 1, []string{"broken.uddf: failed: "}},
		{"mixed", []string{"validate", "--workers", "2", good, dangling}, 1, []string{"good.uddf: valid", "dangling.uddf: invalid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, tt.args...)
			if r.code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstdout: %s\nstderr: %s", r.code, tt.wantCode, r.stdout, r.stderr)
			}
			for _, want := range tt.want {
				if !strings.Contains(r.stdout, want) {
					t.Errorf("stdout missing %q:\n%s", want, r.stdout)
				}
			}
		})
	}
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	good := createTestFile(t, dir, "good.uddf", validLog)
	bad := createTestFile(t, dir, "range.uddf", rangeLog)

	r := runCLI(t, "validate", "--json", good, bad)
	if r.code != 1 {
		t.Fatalf("exit code = %d", r.code)
	}

	var reports []struct {
		Path   string `json:"path"`
		Dives  int    `json:"dives"`
		Digest struct {
			SHA256 string `json:"sha256"`
		} `json:"digest"`
		Result struct {
			Errors []struct {
				Field string `json:"field"`
			} `json:"errors"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(r.stdout), &reports); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, r.stdout)
	}
	if len(reports) != 2 || reports[0].Path != good || reports[1].Path != bad {
		t.Fatalf("reports = %+v", reports)
	}
	if reports[0].Dives != 1 || reports[0].Digest.SHA256 != cas.SHA256([]byte(validLog)) {
		t.Errorf("good report = %+v", reports[0])
	}
	if len(reports[1].Result.Errors) != 1 || !strings.HasSuffix(reports[1].Result.Errors[0].Field, "latitude") {
		t.Errorf("range report errors = %+v", reports[1].Result.Errors)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	r := runCLI(t, "resolve", createTestFile(t, dir, "good.uddf", validLog))
	if r.code != 0 {
		t.Fatalf("exit code = %d: %s", r.code, r.stderr)
	}
	for _, want := range []string{"5 identifiers", "dive1", "buddy1"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, r.stdout)
		}
	}

	r = runCLI(t, "resolve", "--json", createTestFile(t, dir, "dangling.uddf", danglingLog))
	if r.code != 1 {
		t.Fatalf("dangling exit code = %d", r.code)
	}
	var out resolveOutput
	if err := json.Unmarshal([]byte(r.stdout), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, r.stdout)
	}
	if out.Identifiers != 2 || len(out.Dangling) != 1 || out.Dangling[0].Ref != "ghost" {
		t.Errorf("output = %+v", out)
	}

	r = runCLI(t, "resolve", createTestFile(t, dir, "dup.uddf", duplicateLog))
	if r.code != 1 || !strings.Contains(r.stderr, "same") {
		t.Errorf("duplicate: code %d, stderr %q", r.code, r.stderr)
	}
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	compressed, err := codec.Compress([]byte(validLog))
	if err != nil {
		t.Fatal(err)
	}
	path := createTestFile(t, dir, "log.uddf.xz", string(compressed))

	r := runCLI(t, "info", "--json", path)
	if r.code != 0 {
		t.Fatalf("exit code = %d: %s", r.code, r.stderr)
	}
	var out struct {
		Root       string `json:"root"`
		Version    string `json:"version"`
		Generator  string `json:"generator"`
		Dives      int    `json:"dives"`
		Compressed bool   `json:"compressed"`
		SHA256     string `json:"sha256"`
	}
	if err := json.Unmarshal([]byte(r.stdout), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, r.stdout)
	}
	if out.Root != "uddf" || out.Version != "3.2.1" || out.Generator != "divelog" || out.Dives != 1 || !out.Compressed {
		t.Errorf("info = %+v", out)
	}
	if out.SHA256 != cas.SHA256([]byte(validLog)) {
		t.Error("digest should cover the decompressed content")
	}

	r = runCLI(t, "info", createTestFile(t, dir, "other.xml", "<gpx/>"))
	if r.code != 1 || !strings.Contains(r.stdout, "Root:       gpx") {
		t.Errorf("non-UDDF: code %d, stdout %q", r.code, r.stdout)
	}
}

func TestFmt(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "flat.uddf", `<uddf version="3.2.1"><generator><name>divelog</name></generator></uddf>`)

	r := runCLI(t, "fmt", path)
	if r.code != 0 {
		t.Fatalf("exit code = %d: %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, "\n  <generator>\n    <name>divelog</name>") {
		t.Errorf("output not indented:\n%s", r.stdout)
	}

	r = runCLI(t, "fmt", "--tabs", "-w", path)
	if r.code != 0 || r.stdout != "" {
		t.Fatalf("fmt -w: code %d, stdout %q", r.code, r.stdout)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n\t<generator>") {
		t.Errorf("file not rewritten:\n%s", data)
	}

	if r := runCLI(t, "fmt", createTestFile(t, dir, "bad.uddf", "<uddf>")); r.code != 1 {
		t.Errorf("malformed input exit code = %d", r.code)
	}
}

func TestQuery(t *testing.T) {
	path := createTestFile(t, t.TempDir(), "log.uddf", validLog)

	tests := []struct {
		args     []string
		wantCode int
		want     string
	}{
		{[]string{"count(//dive)"}, 0, "1\n"},
		{[]string{"--text", "//site/name"}, 0, "Blue Hole\n"},
		{[]string{"string(//dive/@id)"}, 0, "dive1\n"},
		{[]string{"boolean(//gasdefinitions)"}, 0, "false\n"},
		{[]string{"//nothing"}, 1, ""},
	}
	for _, tt := range tests {
		args := append([]string{"query", path}, tt.args...)
		r := runCLI(t, args...)
		if r.code != tt.wantCode || r.stdout != tt.want {
			t.Errorf("query %v = (%d, %q), want (%d, %q)", tt.args, r.code, r.stdout, tt.wantCode, tt.want)
		}
	}

	if r := runCLI(t, "query", path, "//dive["); r.code != 1 || !strings.Contains(r.stderr, "xpath") {
		t.Errorf("invalid expression: code %d, stderr %q", r.code, r.stderr)
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := createTestFile(t, dir, "log.uddf", validLog)
	out := filepath.Join(dir, "log.uddf.xz")

	r := runCLI(t, "convert", in, out)
	if r.code != 0 {
		t.Fatalf("exit code = %d: %s", r.code, r.stderr)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if fileguard.Detect(data) != fileguard.KindXZ {
		t.Error("output should be xz compressed")
	}
	doc, err := codec.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile(converted) error: %v", err)
	}
	if doc.DiveCount() != 1 || doc.Generator.Name != "divelog" {
		t.Errorf("converted document lost content: %+v", doc.Generator)
	}

	if r := runCLI(t, "convert", in, out); r.code != 1 || !strings.Contains(r.stderr, "already exists") {
		t.Errorf("overwrite without --force: code %d, stderr %q", r.code, r.stderr)
	}
	if r := runCLI(t, "convert", "--force", in, out); r.code != 0 {
		t.Errorf("--force exit code = %d", r.code)
	}
}

func TestIndexAndCatalog(t *testing.T) {
	dir := t.TempDir()
	good := createTestFile(t, dir, "good.uddf", validLog)
	dangling := createTestFile(t, dir, "dangling.uddf", danglingLog)
	db := filepath.Join(dir, "catalog.db")
	archiveDir := filepath.Join(dir, "archive")

	r := runCLI(t, "index", "--db", db, "--archive", archiveDir, good, dangling)
	if r.code != 0 {
		t.Fatalf("index exit code = %d: %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, "Indexed 2 of 2 files") || !strings.Contains(r.stdout, "1 invalid") {
		t.Errorf("index output = %q", r.stdout)
	}

	r = runCLI(t, "catalog", "list", "--db", db)
	if r.code != 0 || !strings.Contains(r.stdout, "good.uddf") || !strings.Contains(r.stdout, "dangling.uddf") {
		t.Errorf("list: code %d\n%s", r.code, r.stdout)
	}

	r = runCLI(t, "catalog", "list", "--db", db, "--invalid", "--json")
	var entries []catalog.Entry
	if err := json.Unmarshal([]byte(r.stdout), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, r.stdout)
	}
	if len(entries) != 1 || entries[0].Path != dangling || !entries[0].Archived {
		t.Errorf("invalid entries = %+v", entries)
	}

	digest := cas.Sum([]byte(validLog))
	r = runCLI(t, "catalog", "show", "--db", db, digest.SHA256)
	if r.code != 0 || !strings.Contains(r.stdout, "Status:     valid") {
		t.Errorf("show: code %d\n%s", r.code, r.stdout)
	}

	r = runCLI(t, "catalog", "show", "--db", db, "--archive", archiveDir, "--content", digest.BLAKE3)
	if r.code != 0 || r.stdout != validLog {
		t.Errorf("show --content by BLAKE3: code %d, stdout %q", r.code, r.stdout)
	}

	r = runCLI(t, "catalog", "show", "--db", db, cas.SHA256([]byte("unknown")))
	if r.code != 1 || !strings.Contains(r.stderr, "not found") {
		t.Errorf("unknown hash: code %d, stderr %q", r.code, r.stderr)
	}
	if r := runCLI(t, "catalog", "show", "--db", db, "ABC"); r.code != 1 {
		t.Errorf("malformed hash exit code = %d", r.code)
	}
	if r := runCLI(t, "catalog", "show", "--db", db, "--content", digest.SHA256); r.code != 1 {
		t.Errorf("--content without --archive exit code = %d", r.code)
	}
}

func TestIndexSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	good := createTestFile(t, dir, "good.uddf", validLog)
	broken := createTestFile(t, dir, "broken.uddf", "<uddf")
	db := filepath.Join(dir, "catalog.db")

	r := runCLI(t, "index", "--db", db, good, broken)
	if r.code != 1 {
		t.Errorf("exit code = %d, want 1", r.code)
	}
	if !strings.Contains(r.stderr, "skipping "+broken) || !strings.Contains(r.stdout, "Indexed 1 of 2 files") {
		t.Errorf("stdout %q, stderr %q", r.stdout, r.stderr)
	}
}

func TestCatalogMissingDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "none.db")
	r := runCLI(t, "catalog", "list", "--db", db)
	if r.code != 1 {
		t.Errorf("exit code = %d", r.code)
	}
	if _, err := os.Stat(db); !os.IsNotExist(err) {
		t.Error("catalog list should not create a database")
	}
}

func TestConfigurationFile(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "range.uddf", rangeLog)
	config := createTestFile(t, dir, "config.json", `{"ranges": false}`)

	if r := runCLI(t, "validate", path); r.code != 1 {
		t.Fatalf("range check should fail by default, code %d", r.code)
	}
	if r := runWithConfig(t, []string{config}, "validate", path); r.code != 0 {
		t.Errorf("default config path: code %d\n%s", r.code, r.stdout)
	}
	if r := runCLI(t, "--config", config, "validate", path); r.code != 0 {
		t.Errorf("--config: code %d\n%s", r.code, r.stdout)
	}
	if r := runWithConfig(t, []string{config}, "validate", "--ranges", path); r.code != 1 {
		t.Errorf("flag should override config, code %d", r.code)
	}
	if r := runWithConfig(t, []string{filepath.Join(dir, "absent.json")}, "version"); r.code != 0 {
		t.Errorf("missing config file should be ignored, code %d", r.code)
	}
}

func TestServeRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short key", []string{"serve", "--api-key", "short"}, "auth"},
		{"missing root", []string{"serve", "--root", filepath.Join(t.TempDir(), "missing")}, "job root"},
		{"tls key without cert", []string{"serve", "--tls-key", "key.pem"}, "TLS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, tt.args...)
			if r.code != 1 || !strings.Contains(r.stderr, tt.want) {
				t.Errorf("code %d, stderr %q", r.code, r.stderr)
			}
		})
	}
}

func TestServeConfig(t *testing.T) {
	c := ServeCmd{Port: 9000, APIKey: "0123456789abcdef", TLSCert: "c.pem", TLSKey: "k.pem", Origins: []string{"https://a.example"}}
	cfg := c.config()
	if !cfg.Auth.Enabled || cfg.Auth.APIKey != c.APIKey {
		t.Errorf("Auth = %+v", cfg.Auth)
	}
	if !cfg.TLS.Enabled || cfg.TLS.CertFile != "c.pem" {
		t.Errorf("TLS = %+v", cfg.TLS)
	}
	if cfg.Version != version || cfg.Port != 9000 || len(cfg.AllowedOrigins) != 1 {
		t.Errorf("cfg = %+v", cfg)
	}

	if cfg := (&ServeCmd{}).config(); cfg.Auth.Enabled || cfg.TLS.Enabled {
		t.Error("auth and TLS should be off without flags")
	}
}
