package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/uddf/core/cas"
	"github.com/FocuswithJustin/uddf/core/codec"
	"github.com/FocuswithJustin/uddf/core/errors"
	uddfxml "github.com/FocuswithJustin/uddf/core/xml"
	"github.com/FocuswithJustin/uddf/internal/fileguard"
)

// InfoCmd summarizes a file with a generic XML parse, so it also works on
// files the typed decoder rejects.
type InfoCmd struct {
	Path string `arg:"" help:"File to inspect" type:"existingfile"`
	JSON bool   `name:"json" help:"Print the summary as JSON"`
}

type infoOutput struct {
	*codec.ProbeResult
	Compressed bool   `json:"compressed"`
	Size       int    `json:"size"`
	SHA256     string `json:"sha256"`
	BLAKE3     string `json:"blake3"`
}

func (c *InfoCmd) Run(g *Globals) error {
	raw, err := fileguard.ReadFile(c.Path)
	if err != nil {
		return errors.NewIO("read", c.Path, err)
	}
	data, err := codec.Decompress(raw)
	if err != nil {
		return err
	}
	probe, err := codec.Probe(data)
	if err != nil {
		return err
	}

	digest := cas.Sum(data)
	out := infoOutput{
		ProbeResult: probe,
		Compressed:  fileguard.Detect(raw) == fileguard.KindXZ,
		Size:        len(data),
		SHA256:      digest.SHA256,
		BLAKE3:      digest.BLAKE3,
	}
	if c.JSON {
		if err := writeJSON(g.Stdout, out); err != nil {
			return err
		}
	} else {
		printInfo(g.Stdout, c.Path, out)
	}

	if !probe.IsUDDF() {
		return fmt.Errorf("%s: root element is <%s>, not <uddf>", c.Path, probe.Root)
	}
	return nil
}

func printInfo(w io.Writer, path string, out infoOutput) {
	fmt.Fprintf(w, "File:       %s\n", path)
	fmt.Fprintf(w, "Root:       %s\n", out.Root)
	if out.Namespace != "" {
		fmt.Fprintf(w, "Namespace:  %s\n", out.Namespace)
	}
	if out.Version != "" {
		fmt.Fprintf(w, "Version:    %s\n", out.Version)
	}
	if out.GeneratorName != "" {
		fmt.Fprintf(w, "Generator:  %s\n", out.GeneratorName)
	}
	fmt.Fprintf(w, "Dives:      %d\n", out.Dives)
	fmt.Fprintf(w, "Mixes:      %d\n", out.Mixes)
	fmt.Fprintf(w, "Sites:      %d\n", out.Sites)
	fmt.Fprintf(w, "Size:       %d bytes (compressed: %v)\n", out.Size, out.Compressed)
	fmt.Fprintf(w, "SHA-256:    %s\n", out.SHA256)
	fmt.Fprintf(w, "BLAKE3:     %s\n", out.BLAKE3)
}

// FmtCmd pretty-prints a logbook to stdout or back into the file.
type FmtCmd struct {
	Path   string `arg:"" help:"Logbook file" type:"existingfile"`
	Indent int    `help:"Spaces per indentation level" default:"2"`
	Tabs   bool   `help:"Indent with tabs"`
	Write  bool   `short:"w" help:"Write the result back to the file"`
}

func (c *FmtCmd) Run(g *Globals) error {
	if c.Indent < 0 {
		return fmt.Errorf("--indent must not be negative")
	}
	data, err := codec.ReadBytes(c.Path)
	if err != nil {
		return err
	}

	opts := uddfxml.FormatOptions{Indent: strings.Repeat(" ", c.Indent)}
	if c.Tabs {
		opts.Indent = "\t"
	}
	out, err := uddfxml.Format(data, opts)
	if err != nil {
		return &errors.ParseError{Format: "XML", Path: c.Path, Message: err.Error(), Err: err}
	}

	if !c.Write {
		_, err := g.Stdout.Write(out)
		return err
	}
	if strings.HasSuffix(strings.ToLower(c.Path), codec.CompressedSuffix) {
		if out, err = codec.Compress(out); err != nil {
			return err
		}
	}
	return writeFile(c.Path, out)
}

// QueryCmd evaluates an XPath expression. Node sets print one node per
// line; an empty node set exits with status 1.
type QueryCmd struct {
	Path string `arg:"" help:"Logbook file" type:"existingfile"`
	Expr string `arg:"" help:"XPath expression, e.g. //dive/@id or count(//dive)"`
	Text bool   `help:"Print the text content of matched nodes instead of their XML"`
}

func (c *QueryCmd) Run(g *Globals) error {
	data, err := codec.ReadBytes(c.Path)
	if err != nil {
		return err
	}
	doc, err := uddfxml.Parse(data)
	if err != nil {
		return &errors.ParseError{Format: "XML", Path: c.Path, Message: err.Error(), Err: err}
	}

	result, err := doc.Evaluate(c.Expr)
	if err != nil {
		return err
	}

	switch v := result.(type) {
	case []*uddfxml.Node:
		if len(v) == 0 {
			return exitStatus(1)
		}
		for _, n := range v {
			if c.Text {
				fmt.Fprintln(g.Stdout, n.Text())
			} else {
				fmt.Fprintln(g.Stdout, n.XML())
			}
		}
	case float64:
		fmt.Fprintln(g.Stdout, strconv.FormatFloat(v, 'f', -1, 64))
	default:
		fmt.Fprintln(g.Stdout, v)
	}
	return nil
}

// ConvertCmd decodes a logbook and encodes it again. The output is xz
// compressed when its name ends in .xz.
type ConvertCmd struct {
	Input  string `arg:"" help:"Source logbook" type:"existingfile"`
	Output string `arg:"" help:"Destination path" type:"path"`
	Force  bool   `short:"f" help:"Overwrite an existing output file"`
}

func (c *ConvertCmd) Run(g *Globals) error {
	if _, err := os.Stat(c.Output); err == nil && !c.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", c.Output)
	}

	doc, err := codec.ReadFile(c.Input)
	if err != nil {
		return err
	}
	if err := codec.WriteFile(c.Output, doc); err != nil {
		return err
	}
	fmt.Fprintf(g.Stdout, "Converted %s -> %s (%s)\n", c.Input, c.Output, plural(doc.DiveCount(), "dive"))
	return nil
}

func writeFile(path string, data []byte) error {
	if err := fileguard.ValidatePath(path); err != nil {
		return errors.NewIO("write", path, err)
	}
	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}
