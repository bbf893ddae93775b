package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	formcode "github.com/goliatone/go-formcode"
	"github.com/goliatone/go-formcode/pkg/openapi"
	"github.com/goliatone/go-formcode/pkg/source"
)

// NewImport builds the OpenAPI import command.
func NewImport(r *Root) *cobra.Command {
	i := &Import{root: r}
	cmd := &cobra.Command{
		Use:   "import [flags] OPENAPI_FILE|URL",
		Short: "Convert an OpenAPI request body into a form document",
		Example: `
formcode import api.yaml --list
formcode import api.yaml --operation createUser --name "Sign up" --out signup.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: i.Run,
	}
	flags := cmd.Flags()
	flags.StringVar(&i.Operation, "operation", "", "Operation id to import")
	flags.StringVar(&i.Name, "name", "", "Form name (defaults to the operation summary)")
	flags.StringVarP(&i.Out, "out", "o", "", "Write the form document to FILE instead of stdout")
	flags.BoolVar(&i.List, "list", false, "List the operations of the document")
	flags.BoolVar(&i.AllowHTTP, "allow-http", false, "Allow loading documents over HTTP(S)")
	flags.DurationVar(&i.Timeout, "timeout", 30*time.Second, "Timeout for remote documents")
	return cmd
}

// Import maps one OpenAPI operation onto a YAML form document.
type Import struct {
	Operation string
	Name      string
	Out       string
	List      bool
	AllowHTTP bool
	Timeout   time.Duration

	root *Root
}

func (i *Import) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if !i.List && i.Operation == "" {
		return errors.New("--operation is required (use --list to see the available ids)")
	}

	src, err := source.Parse(args[0])
	if err != nil {
		return err
	}
	doc, err := formcode.NewLoader(loaderOptions(i.AllowHTTP, i.Timeout)...).Load(ctx, src)
	if err != nil {
		return err
	}
	importer := openapi.NewImporter()

	if i.List {
		operations, err := importer.Operations(ctx, doc.Raw())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(i.root.ctx.StdOut, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "OPERATION\tMETHOD\tPATH\tSUMMARY")
		for _, op := range operations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", op.ID, op.Method, op.Path, op.Summary)
		}
		return w.Flush()
	}

	result, err := importer.Import(ctx, doc.Raw(), i.Operation)
	if err != nil {
		return err
	}
	if len(result.Skipped) > 0 {
		i.root.logger.Warnf("skipped properties without a field equivalent: %s", strings.Join(result.Skipped, ", "))
	}
	form := result.Form
	if i.Name != "" {
		form.Name = i.Name
	}

	data, err := source.Encode(form)
	if err != nil {
		return err
	}
	return i.root.write(i.Out, data)
}
