// Package cli implements the formcode command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formcode/pkg/validation"
)

// CommandContext carries the streams commands read from and write to.
type CommandContext struct {
	StdOut io.Writer
	StdErr io.Writer
	StdIn  io.Reader
}

// DefaultContext binds the process streams.
func DefaultContext() CommandContext {
	return CommandContext{StdOut: os.Stdout, StdErr: os.Stderr, StdIn: os.Stdin}
}

// Root holds the persistent flags shared by every subcommand.
type Root struct {
	LogLevel  string
	LogFormat string

	ctx    CommandContext
	logger *logrus.Logger
}

// New builds the formcode root command.
func New(c CommandContext) *cobra.Command {
	root := newRoot(c)

	cmd := &cobra.Command{
		Use:   "formcode",
		Short: "Generate zod schemas and React form components from field descriptors",
		Example: `
# Generate a component from a form document
formcode generate contact.yaml

# Write schema and component files for a JavaScript/React project
formcode generate contact.yaml --language javascript --framework react --out-dir src/forms

# Turn an OpenAPI operation into a form document
formcode import api.yaml --operation createUser --out signup.yaml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: root.PersistentPre,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	cmd.SetOut(c.StdOut)
	cmd.SetErr(c.StdErr)
	cmd.SetIn(c.StdIn)

	flags := cmd.PersistentFlags()
	flags.StringVar(&root.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&root.LogFormat, "log-format", "text", "Log format (text or json)")

	cmd.AddCommand(
		NewGenerate(root),
		NewEdit(root),
		NewImport(root),
		NewTypes(root),
	)
	return cmd
}

func newRoot(c CommandContext) *Root {
	logger := logrus.New()
	logger.SetOutput(c.StdErr)
	return &Root{ctx: c, logger: logger, LogLevel: "warn", LogFormat: "text"}
}

// PersistentPre configures logging before any subcommand runs.
func (r *Root) PersistentPre(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(r.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	r.logger.SetLevel(level)

	switch strings.ToLower(r.LogFormat) {
	case "text":
		r.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		r.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid --log-format %q (want text or json)", r.LogFormat)
	}
	return nil
}

// PrintError writes err to w, one diagnostic per line when err carries
// validation diagnostics.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if diags, ok := validation.AsDiagnostics(err); ok && len(diags) > 0 {
		for _, message := range diags.Messages() {
			fmt.Fprintf(w, "error: %s\n", message)
		}
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
