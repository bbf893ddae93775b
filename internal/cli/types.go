package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formcode/pkg/model"
)

// NewTypes builds the command listing supported field types.
func NewTypes(r *Root) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported field types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(r.ctx.StdOut, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tNAME\tOPTIONS")
			for _, fieldType := range model.FieldTypes() {
				options := "no"
				if fieldType.HasOptions() {
					options = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", fieldType, fieldType.DisplayName(), options)
			}
			return w.Flush()
		},
	}
}
