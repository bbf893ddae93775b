package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formcode/pkg/editor"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/orchestrator"
	"github.com/goliatone/go-formcode/pkg/prompt"
	"github.com/goliatone/go-formcode/pkg/source"
)

// NewEdit builds the interactive edit command.
func NewEdit(r *Root) *cobra.Command {
	e := &Edit{root: r}
	cmd := &cobra.Command{
		Use:   "edit [flags]",
		Short: "Build or change a form interactively, then generate it",
		Example: `
formcode edit
formcode edit --from contact.yaml --save contact.yaml --out-dir src/forms`,
		Args: cobra.NoArgs,
		RunE: e.Run,
	}
	flags := cmd.Flags()
	e.Output.bind(flags)
	flags.StringVar(&e.From, "from", "", "Start from an existing form document")
	flags.StringVar(&e.Save, "save", "", "Write the edited form document to FILE")
	return cmd
}

// Edit drives an interactive editing session.
type Edit struct {
	Output
	From string
	Save string

	root     *Root
	driver   prompt.Driver
	notifier prompt.Notifier
}

func (e *Edit) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	options, err := e.options(e.root)
	if err != nil {
		return err
	}

	var sessionOptions []editor.Option
	if e.From != "" {
		form, err := readForm(e.From)
		if err != nil {
			return err
		}
		sessionOptions = append(sessionOptions, editor.WithForm(form))
	}

	driver := e.driver
	if driver == nil {
		driver = prompt.NewSurveyDriver(prompt.WithOutput(e.root.ctx.StdOut))
	}
	notifier := e.notifier
	if notifier == nil {
		notifier = prompt.NewPtermNotifier(e.root.ctx.StdErr)
	}

	session := editor.NewSession(sessionOptions...)
	for _, warning := range session.Warnings() {
		notifier.Warn(warning.Message)
	}
	form, err := editor.NewInteractive(session, driver, editor.WithNotifier(notifier)).Run(ctx)
	if errors.Is(err, editor.ErrQuit) {
		notifier.Info("Quit without generating.")
		return nil
	}
	if err != nil {
		return err
	}

	if e.Save != "" {
		data, err := source.Encode(form)
		if err != nil {
			return err
		}
		if err := os.WriteFile(e.Save, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", e.Save, err)
		}
		notifier.Success("Saved " + e.Save)
	}
	return e.run(ctx, e.root, orchestrator.Request{Form: &form}, options)
}

func readForm(path string) (model.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := source.NewDocument(source.FromFile(path), data)
	if err != nil {
		return model.Form{}, err
	}
	return doc.Form()
}
