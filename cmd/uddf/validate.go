package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/FocuswithJustin/uddf/core/errors"
	"github.com/FocuswithJustin/uddf/core/logbook"
	"github.com/FocuswithJustin/uddf/core/resolve"
	"github.com/FocuswithJustin/uddf/core/validate"
)

// ValidationFlags select the checks run on each document.
type ValidationFlags struct {
	Strict     bool `help:"Report warnings as errors"`
	Ranges     bool `help:"Check values against physical ranges" default:"true" negatable:""`
	References bool `help:"Check that every reference resolves" default:"true" negatable:""`
}

func (f ValidationFlags) options() validate.Options {
	return validate.Options{
		ValidateRanges:     f.Ranges,
		ValidateReferences: f.References,
		StrictMode:         f.Strict,
	}
}

// ValidateCmd validates logbooks and exits non-zero if any is invalid.
type ValidateCmd struct {
	ValidationFlags `embed:""`

	Paths   []string `arg:"" help:"Logbook files (.uddf or .uddf.xz)" type:"existingfile"`
	Workers int      `help:"Parallel workers (0 = one per CPU)" default:"0"`
	JSON    bool     `name:"json" help:"Print reports as JSON"`
}

func (c *ValidateCmd) Run(g *Globals) error {
	reports := logbook.ValidateFiles(context.Background(), c.Paths, c.options(), c.Workers)

	if c.JSON {
		if err := writeJSON(g.Stdout, reports); err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			printReport(g.Stdout, report)
		}
	}

	for _, report := range reports {
		if !report.Valid() {
			return exitStatus(1)
		}
	}
	return nil
}

func printReport(w io.Writer, r logbook.FileReport) {
	if r.Err != nil {
		fmt.Fprintf(w, "%s: failed: %s\n", r.Path, r.Error)
		return
	}

	fmt.Fprintf(w, "%s: %s (%s, %s, %s)\n", r.Path, status(r.Result.IsValid()),
		plural(r.Dives, "dive"), plural(len(r.Result.Errors), "error"), plural(len(r.Result.Warnings), "warning"))
	for _, issue := range r.Result.Errors {
		fmt.Fprintf(w, "  error    %s\n", issue.Error())
	}
	for _, issue := range r.Result.Warnings {
		fmt.Fprintf(w, "  warning  %s\n", issue.Error())
	}
}

// ResolveCmd lists the identifiers of a logbook and any dangling references.
type ResolveCmd struct {
	Path string `arg:"" help:"Logbook file" type:"existingfile"`
	JSON bool   `name:"json" help:"Print the result as JSON"`
}

type resolveOutput struct {
	Identifiers int                       `json:"identifiers"`
	ByKind      map[resolve.Kind][]string `json:"by_kind"`
	Dangling    []danglingRef             `json:"dangling,omitempty"`
}

type danglingRef struct {
	Ref      string `json:"ref"`
	Location string `json:"location"`
}

func (c *ResolveCmd) Run(g *Globals) error {
	_, res, err := logbook.Load(c.Path)
	if res == nil {
		return err
	}
	if err != nil && !errors.Is(err, errors.ErrUnresolvedReference) {
		return err
	}

	out := resolveOutput{
		Identifiers: res.Registry.Len(),
		ByKind:      res.Registry.ByKind(),
	}
	for _, e := range res.Errors {
		out.Dangling = append(out.Dangling, danglingRef{Ref: e.Ref, Location: e.Location})
	}
	if c.JSON {
		if err := writeJSON(g.Stdout, out); err != nil {
			return err
		}
	} else {
		printResolve(g.Stdout, out)
	}

	if len(res.Errors) > 0 {
		return exitStatus(1)
	}
	return nil
}

func printResolve(w io.Writer, out resolveOutput) {
	kinds := make([]string, 0, len(out.ByKind))
	for kind := range out.ByKind {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	fmt.Fprintf(w, "%s\n", plural(out.Identifiers, "identifier"))
	for _, kind := range kinds {
		ids := out.ByKind[resolve.Kind(kind)]
		fmt.Fprintf(w, "  %-16s %d\n", kind, len(ids))
		for _, id := range ids {
			fmt.Fprintf(w, "    %s\n", id)
		}
	}
	for _, e := range out.Dangling {
		fmt.Fprintf(w, "dangling %q at %s\n", e.Ref, e.Location)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
