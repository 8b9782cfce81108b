package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/ericchiang/cssengine"
)

func readFile(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func loadPalette(name string) (cssengine.Palette, error) {
	if name == "" {
		return cssengine.DefaultPalette(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cssengine.LoadPalette(f)
}

func synthesisMode(s string) (cssengine.SynthesisMode, error) {
	switch s {
	case "miss":
		return cssengine.SynthesizeOnMiss, nil
	case "always":
		return cssengine.SynthesizeAlways, nil
	case "never":
		return cssengine.SynthesizeNever, nil
	}
	return 0, fmt.Errorf("unknown synthesis mode %q", s)
}

// htmlQueries returns the query of every element in an HTML document, in
// document order and without duplicates.
func htmlQueries(data []byte) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	var (
		queries []string
		seen    = make(map[string]bool)
		walk    func(*html.Node)
	)
	walk = func(n *html.Node) {
		if q := cssengine.QueryForNode(n); q != "" && !seen[q] {
			seen[q] = true
			queries = append(queries, q)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return queries, nil
}

func printStyles(w io.Writer, query string, groups []cssengine.StyleGroup) {
	fmt.Fprintf(w, "%s\n", query)
	if len(groups) == 0 {
		fmt.Fprintf(w, "  (no styles)\n")
		return
	}
	for _, g := range groups {
		state := g.Pseudo.String()
		if state == "" {
			state = "(base)"
		}
		fmt.Fprintf(w, "  %s {\n", state)
		for _, d := range g.Declarations {
			fmt.Fprintf(w, "    %s;\n", d)
		}
		fmt.Fprintf(w, "  }\n")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd.Bool("debug"))
	if err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	defer log.Sync()

	data, err := readFile(cmd.String("css"))
	if err != nil {
		return fmt.Errorf("reading stylesheet: %w", err)
	}
	palette, err := loadPalette(cmd.String("palette"))
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}
	mode, err := synthesisMode(cmd.String("synthesis"))
	if err != nil {
		return err
	}

	sheet, err := cssengine.Parse(string(data),
		cssengine.WithLogger(log),
		cssengine.WithPalette(palette),
		cssengine.WithSynthesis(mode))
	for _, serr := range cssengine.SyntaxErrors(err) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.String("css"), serr)
	}
	if err != nil && cmd.Bool("strict") {
		return fmt.Errorf("stylesheet has %d syntax errors", len(cssengine.SyntaxErrors(err)))
	}

	queries := cmd.Args().Slice()
	if name := cmd.String("html"); name != "" {
		doc, err := readFile(name)
		if err != nil {
			return fmt.Errorf("reading html: %w", err)
		}
		q, err := htmlQueries(doc)
		if err != nil {
			return err
		}
		queries = append(queries, q...)
	}

	log.Debug("Resolving styles", zap.Int("queries", len(queries)), zap.Int("entries", sheet.Len()))
	for _, q := range queries {
		printStyles(os.Stdout, q, sheet.GetStyles(q))
	}
	return nil
}

func main() {
	app := &cli.Command{
		Name:      "cssquery",
		Usage:     "resolve the styles a stylesheet applies to element queries",
		ArgsUsage: "[QUERY...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "css", Aliases: []string{"c"}, Required: true, Usage: "load the stylesheet from `FILE` (- for stdin)"},
			&cli.StringFlag{Name: "html", Usage: "also query every element of the HTML document in `FILE`"},
			&cli.StringFlag{Name: "palette", Aliases: []string{"p"}, Usage: "load the color palette from `FILE` (YAML), defaults to Tailwind CSS colors"},
			&cli.StringFlag{Name: "synthesis", Value: "miss", Usage: "when to derive utility classes from the palette: miss, always or never"},
			&cli.BoolFlag{Name: "strict", Usage: "fail on syntax errors"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log parsing and query details"},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cssquery: %v\n", err)
		os.Exit(1)
	}
}
