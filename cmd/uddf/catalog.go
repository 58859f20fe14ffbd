package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/FocuswithJustin/uddf/core/cas"
	"github.com/FocuswithJustin/uddf/core/codec"
	"github.com/FocuswithJustin/uddf/core/errors"
	"github.com/FocuswithJustin/uddf/core/logbook"
	"github.com/FocuswithJustin/uddf/internal/catalog"
	"github.com/FocuswithJustin/uddf/internal/logging"
)

// IndexCmd validates logbooks and records the findings in a catalog.
// With --archive the document content is also kept in a content-addressed
// store so it can be retrieved by digest later.
type IndexCmd struct {
	ValidationFlags `embed:""`

	Paths   []string `arg:"" help:"Logbook files (.uddf or .uddf.xz)" type:"existingfile"`
	DB      string   `name:"db" help:"Catalog database" default:"uddf-catalog.db" type:"path"`
	Archive string   `help:"Archive document content in this directory" type:"path"`
	Workers int      `help:"Parallel workers (0 = one per CPU)" default:"0"`
}

func (c *IndexCmd) Run(g *Globals) error {
	ctx := context.Background()

	cat, err := catalog.Open(ctx, c.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	var store *cas.Store
	if c.Archive != "" {
		if store, err = cas.NewStore(c.Archive); err != nil {
			return err
		}
	}

	reports := logbook.ValidateFiles(ctx, c.Paths, c.options(), c.Workers)

	var indexed, invalid, failed int
	for _, report := range reports {
		if report.Err != nil {
			fmt.Fprintf(g.Stderr, "skipping %s: %s\n", report.Path, report.Error)
			failed++
			continue
		}

		archived := false
		if store != nil {
			if err := archive(store, report); err != nil {
				fmt.Fprintf(g.Stderr, "archiving %s: %v\n", report.Path, err)
				failed++
				continue
			}
			archived = true
		}

		if err := cat.Record(ctx, report, archived); err != nil {
			return err
		}
		indexed++
		if !report.Valid() {
			invalid++
		}
	}

	logging.Info("index_complete", "catalog", c.DB, "indexed", indexed, "invalid", invalid, "failed", failed)
	fmt.Fprintf(g.Stdout, "Indexed %d of %d files into %s (%d invalid, %d failed)\n",
		indexed, len(reports), c.DB, invalid, failed)

	if failed > 0 {
		return exitStatus(1)
	}
	return nil
}

// archive stores the decompressed content of a validated file. The digest
// of the stored bytes must match the one the report was indexed under.
func archive(store *cas.Store, report logbook.FileReport) error {
	data, err := codec.ReadBytes(report.Path)
	if err != nil {
		return err
	}
	d, err := store.Put(data)
	if err != nil {
		return err
	}
	if d.SHA256 != report.Digest.SHA256 {
		return fmt.Errorf("content changed while indexing (sha256 %s, indexed %s)", d.SHA256, report.Digest.SHA256)
	}
	return nil
}

// CatalogCmd groups catalog queries.
type CatalogCmd struct {
	List CatalogListCmd `cmd:"" help:"List catalogued logbooks"`
	Show CatalogShowCmd `cmd:"" help:"Show one catalogued logbook and its findings"`
}

// CatalogListCmd lists catalogued documents, most recently indexed first.
type CatalogListCmd struct {
	DB      string `name:"db" help:"Catalog database" default:"uddf-catalog.db" type:"path"`
	Invalid bool   `help:"Only list documents with errors"`
	Limit   int    `help:"Maximum number of entries (0 = all)" default:"0"`
	JSON    bool   `name:"json" help:"Print entries as JSON"`
}

func (c *CatalogListCmd) Run(g *Globals) error {
	ctx := context.Background()

	cat, err := openExisting(ctx, c.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	entries, err := cat.List(ctx, catalog.ListOptions{InvalidOnly: c.Invalid, Limit: c.Limit})
	if err != nil {
		return err
	}

	if c.JSON {
		if entries == nil {
			entries = []catalog.Entry{}
		}
		return writeJSON(g.Stdout, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(g.Stdout, "No documents catalogued.")
		return nil
	}
	fmt.Fprintf(g.Stdout, "%-12s  %-7s  %6s  %8s  %5s  %s\n", "SHA256", "STATUS", "ERRORS", "WARNINGS", "DIVES", "PATH")
	for _, e := range entries {
		fmt.Fprintf(g.Stdout, "%-12s  %-7s  %6d  %8d  %5d  %s\n", e.SHA256[:12], status(e.Valid), e.Errors, e.Warnings, e.Dives, e.Path)
	}
	return nil
}

// CatalogShowCmd prints a catalog entry. The hash may be a SHA-256 or a
// BLAKE3 digest.
type CatalogShowCmd struct {
	Hash    string `arg:"" help:"SHA-256 or BLAKE3 digest"`
	DB      string `name:"db" help:"Catalog database" default:"uddf-catalog.db" type:"path"`
	Archive string `help:"Archive directory to read content from" type:"path"`
	Content bool   `help:"Print the archived document instead of the entry (requires --archive)"`
	JSON    bool   `name:"json" help:"Print the entry as JSON"`
}

func (c *CatalogShowCmd) Run(g *Globals) error {
	if !cas.ValidHash(c.Hash) {
		return fmt.Errorf("invalid hash %q: want 64 lowercase hex digits", c.Hash)
	}
	if c.Content && c.Archive == "" {
		return fmt.Errorf("--content requires --archive")
	}
	ctx := context.Background()

	cat, err := openExisting(ctx, c.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	entry, err := cat.Lookup(ctx, c.Hash)
	if errors.Is(err, errors.ErrNotFound) {
		entry, err = cat.LookupBLAKE3(ctx, c.Hash)
	}
	if err != nil {
		return err
	}

	if c.Content {
		store, err := cas.NewStore(c.Archive)
		if err != nil {
			return err
		}
		data, err := store.Get(entry.SHA256)
		if err != nil {
			return err
		}
		_, err = g.Stdout.Write(data)
		return err
	}

	if c.JSON {
		return writeJSON(g.Stdout, entry)
	}
	printEntry(g.Stdout, entry)
	return nil
}

// openExisting opens a catalog for reading without creating one.
func openExisting(ctx context.Context, path string) (*catalog.Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewNotFound("catalog", path)
	}
	return catalog.OpenReadOnly(ctx, path)
}

func printEntry(w io.Writer, e *catalog.Entry) {
	fmt.Fprintf(w, "Path:       %s\n", e.Path)
	fmt.Fprintf(w, "SHA-256:    %s\n", e.SHA256)
	fmt.Fprintf(w, "BLAKE3:     %s\n", e.BLAKE3)
	fmt.Fprintf(w, "Version:    %s\n", e.Version)
	fmt.Fprintf(w, "Generator:  %s\n", e.Generator)
	fmt.Fprintf(w, "Dives:      %d\n", e.Dives)
	fmt.Fprintf(w, "Status:     %s (%s, %s)\n", status(e.Valid), plural(e.Errors, "error"), plural(e.Warnings, "warning"))
	fmt.Fprintf(w, "Archived:   %v\n", e.Archived)
	fmt.Fprintf(w, "Indexed:    %s\n", e.IndexedAt.Format("2006-01-02 15:04:05 MST"))
	for _, issue := range e.Issues {
		fmt.Fprintf(w, "  %-8s %s\n", issue.Severity, issue.Error())
	}
}

func status(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
