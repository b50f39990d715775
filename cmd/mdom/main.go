package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/insomnimus/mdom"
	"github.com/insomnimus/mdom/ast"
	"github.com/insomnimus/mdom/engine"
)

var (
	engineName string
	useTree    bool
	strict     bool
	verbose    bool
)

var root = &cobra.Command{
	Use:   "mdom [input] [output]",
	Short: "Render Markdown to HTML",
	Long: `Render Markdown to HTML.

Reads from a file or stdin, writes to a file or stdout. By default the
events stream straight to markup; --tree builds the document tree
first and renders that instead.`,
	Args: cobra.MaximumNArgs(2),
	RunE: run,

	SilenceUsage: true,
}

func init() {
	root.Flags().StringVarP(&engineName, "engine", "e", "goldmark", "parse engine: goldmark or gomarkdown")
	root.Flags().BoolVarP(&useTree, "tree", "t", false, "build the document tree before rendering")
	root.Flags().BoolVar(&strict, "strict", false, "fail on mismatched leave events instead of warning")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine and builder activity to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	log := zerolog.Nop()
	if verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	opts := []mdom.Option{mdom.WithLogger(log)}
	switch engineName {
	case "goldmark":
		opts = append(opts, mdom.WithEngine(engine.NewGoldmark(engine.GoldmarkWithLogger(log))))
	case "gomarkdown":
		opts = append(opts, mdom.WithEngine(engine.NewGomarkdown(engine.GomarkdownWithLogger(log))))
	default:
		return fmt.Errorf("unknown engine %q", engineName)
	}
	if strict {
		opts = append(opts, mdom.StrictNesting())
	}

	in := io.Reader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	out, err := render(src, opts)
	if err != nil {
		return err
	}

	if len(args) > 1 {
		return os.WriteFile(args[1], out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func render(src []byte, opts []mdom.Option) ([]byte, error) {
	if !useTree {
		return mdom.ToHTMLBytes(src, opts...)
	}
	node, warnings, err := mdom.Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return ast.RenderHTMLBytes(node)
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
