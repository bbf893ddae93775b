package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formcode/pkg/orchestrator"
	"github.com/goliatone/go-formcode/pkg/source"
)

// NewGenerate builds the generate command.
func NewGenerate(r *Root) *cobra.Command {
	g := &Generate{root: r}
	cmd := &cobra.Command{
		Use:   "generate [flags] FILE|URL|-",
		Short: "Generate the schema and component for a form document",
		Example: `
formcode generate contact.yaml
formcode generate contact.yaml --renderer html --out preview.html
formcode generate api.yaml --operation createUser --out-dir src/forms
cat contact.json | formcode generate -`,
		Args: cobra.ExactArgs(1),
		RunE: g.Run,
	}
	flags := cmd.Flags()
	g.Output.bind(flags)
	flags.StringVar(&g.Operation, "operation", "", "OpenAPI operation id to import when the document is an OpenAPI description")
	flags.BoolVar(&g.AllowHTTP, "allow-http", false, "Allow loading documents over HTTP(S)")
	flags.DurationVar(&g.Timeout, "timeout", 30*time.Second, "Timeout for remote documents")
	return cmd
}

// Generate runs the full pipeline over one document.
type Generate struct {
	Output
	Operation string
	AllowHTTP bool
	Timeout   time.Duration

	root *Root
}

func (g *Generate) Run(cmd *cobra.Command, args []string) error {
	options, err := g.options(g.root, loaderOptions(g.AllowHTTP, g.Timeout)...)
	if err != nil {
		return err
	}

	req := orchestrator.Request{OperationID: g.Operation}
	if args[0] == "-" {
		doc, err := readStdin(g.root.ctx.StdIn)
		if err != nil {
			return err
		}
		req.Document = &doc
	} else {
		src, err := source.Parse(args[0])
		if err != nil {
			return err
		}
		req.Source = src
	}
	return g.run(cmd.Context(), g.root, req, options)
}

func readStdin(in io.Reader) (source.Document, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return source.Document{}, fmt.Errorf("read stdin: %w", err)
	}
	return source.NewDocument(source.FromFile("stdin"), data)
}
