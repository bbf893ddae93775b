package editor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/prompt"
	"github.com/goliatone/go-formcode/pkg/validation"
)

// ErrQuit is returned when the user leaves the editor without generating.
var ErrQuit = errors.New("editor: quit without generating")

// Menu entries in presentation order.
const (
	ActionAdd = iota
	ActionEdit
	ActionMove
	ActionRemove
	ActionClear
	ActionSettings
	ActionGenerate
	ActionQuit
)

var menuLabels = []string{
	"Add field",
	"Edit field",
	"Move field",
	"Remove field",
	"Clear all fields",
	"Form settings",
	"Generate",
	"Quit",
}

const noDefaultOption = "(none)"

// InteractiveOption configures an Interactive editor.
type InteractiveOption func(*Interactive)

// WithNotifier routes warnings and validation failures to n.
func WithNotifier(n prompt.Notifier) InteractiveOption {
	return func(i *Interactive) {
		if n != nil {
			i.notifier = n
		}
	}
}

// Interactive drives a Session through a prompt.Driver menu loop.
type Interactive struct {
	session  *Session
	driver   prompt.Driver
	notifier prompt.Notifier
}

// NewInteractive wires a session to a driver. A nil session starts empty.
func NewInteractive(session *Session, driver prompt.Driver, options ...InteractiveOption) *Interactive {
	if session == nil {
		session = NewSession()
	}
	i := &Interactive{
		session:  session,
		driver:   driver,
		notifier: prompt.Discard{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(i)
	}
	return i
}

// Session exposes the underlying session.
func (i *Interactive) Session() *Session {
	return i.session
}

// Run loops over the main menu until the user generates a valid form or
// quits. Generate only returns once validation passes; failures are reported
// through the notifier and the loop continues.
func (i *Interactive) Run(ctx context.Context) (model.Form, error) {
	if i.driver == nil {
		return model.Form{}, errors.New("editor: prompt driver is required")
	}
	for {
		if err := ctx.Err(); err != nil {
			return model.Form{}, err
		}
		choice, err := i.driver.Select(ctx, prompt.SelectConfig{
			Message: fmt.Sprintf("Form builder (%d fields)", i.session.Len()),
			Options: menuLabels,
		})
		if err != nil {
			return model.Form{}, err
		}

		switch choice {
		case ActionAdd:
			err = i.addField(ctx)
		case ActionEdit:
			err = i.withField(ctx, "Edit which field?", i.editField)
		case ActionMove:
			err = i.withField(ctx, "Move which field?", i.moveField)
		case ActionRemove:
			err = i.withField(ctx, "Remove which field?", i.removeField)
		case ActionClear:
			err = i.clearFields(ctx)
		case ActionSettings:
			err = i.editSettings(ctx)
		case ActionGenerate:
			if err := i.session.Validate(); err != nil {
				i.reportFailure(err)
				continue
			}
			return i.session.Snapshot(), nil
		case ActionQuit:
			return model.Form{}, ErrQuit
		default:
			err = fmt.Errorf("editor: unknown menu choice %d", choice)
		}
		if err != nil {
			return model.Form{}, err
		}
	}
}

func (i *Interactive) addField(ctx context.Context) error {
	types := model.FieldTypes()
	labels := make([]string, len(types))
	for idx, t := range types {
		labels[idx] = t.DisplayName()
	}
	choice, err := i.driver.Select(ctx, prompt.SelectConfig{Message: "Field type", Options: labels})
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(types) {
		return fmt.Errorf("%w: field type %d", ErrIndexOutOfRange, choice)
	}
	field, warnings, err := i.session.AddField(types[choice])
	if err != nil {
		return err
	}
	i.warn(warnings)
	return i.editField(ctx, field.ID)
}

// withField asks the user to pick a field and hands its id to fn.
func (i *Interactive) withField(ctx context.Context, message string, fn func(context.Context, string) error) error {
	fields := i.session.Fields()
	if len(fields) == 0 {
		i.notifier.Info("No fields yet.")
		return nil
	}
	choice, err := i.driver.Select(ctx, prompt.SelectConfig{Message: message, Options: fieldLabels(fields)})
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(fields) {
		return fmt.Errorf("%w: field %d", ErrIndexOutOfRange, choice)
	}
	return fn(ctx, fields[choice].ID)
}

func (i *Interactive) editField(ctx context.Context, id string) error {
	if err := i.promptLabel(ctx, id); err != nil {
		return err
	}
	field, _ := i.session.Field(id)

	placeholder, err := i.driver.Input(ctx, prompt.InputConfig{Message: "Placeholder", Default: field.Placeholder})
	if err != nil {
		return err
	}
	if err := i.apply(i.session.SetPlaceholder(id, placeholder)); err != nil {
		return err
	}

	description, err := i.driver.Input(ctx, prompt.InputConfig{Message: "Description", Default: field.Description})
	if err != nil {
		return err
	}
	if err := i.apply(i.session.SetDescription(id, description)); err != nil {
		return err
	}

	required, err := i.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Required?", Default: field.Required})
	if err != nil {
		return err
	}
	if err := i.apply(i.session.SetRequired(id, required)); err != nil {
		return err
	}

	disabled, err := i.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Disabled?", Default: field.Disabled})
	if err != nil {
		return err
	}
	if err := i.apply(i.session.SetDisabled(id, disabled)); err != nil {
		return err
	}

	if field.Type.HasOptions() {
		if err := i.editOptions(ctx, id); err != nil {
			return err
		}
	} else if err := i.promptDefault(ctx, field); err != nil {
		return err
	}

	return i.promptValidation(ctx, field)
}

// promptLabel re-asks until the label's derived name is free.
func (i *Interactive) promptLabel(ctx context.Context, id string) error {
	field, ok := i.session.Field(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	current := field.Label
	for {
		label, err := i.driver.Input(ctx, prompt.InputConfig{Message: "Label", Default: current})
		if err != nil {
			return err
		}
		warnings, err := i.session.SetLabel(id, label)
		if err == nil {
			i.warn(warnings)
			return nil
		}
		if diags, ok := validation.AsDiagnostics(err); ok && diags.Has(validation.KindDuplicateName) {
			i.notifier.Error(diags[0].Message + "; choose another label")
			current = label
			continue
		}
		return err
	}
}

func (i *Interactive) editOptions(ctx context.Context, id string) error {
	for idx := 0; ; {
		field, _ := i.session.Field(id)
		if idx >= len(field.Options) {
			break
		}
		label, err := i.driver.Input(ctx, prompt.InputConfig{
			Message: fmt.Sprintf("Option %d label (blank to remove)", idx+1),
			Default: field.Options[idx].Label,
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(label) == "" {
			if err := i.apply(i.session.RemoveOption(id, idx)); err != nil {
				return err
			}
			continue
		}
		if err := i.apply(i.session.SetOptionLabel(id, idx, label)); err != nil {
			return err
		}
		idx++
	}

	for {
		label, err := i.driver.Input(ctx, prompt.InputConfig{Message: "New option label (blank to finish)"})
		if err != nil {
			return err
		}
		if strings.TrimSpace(label) == "" {
			break
		}
		if err := i.apply(i.session.AddOption(id, label)); err != nil {
			return err
		}
	}

	field, _ := i.session.Field(id)
	if len(field.Options) == 0 {
		i.notifier.Warn(fmt.Sprintf("%s has no options yet", field.DisplayLabel()))
		return nil
	}
	choices := []string{noDefaultOption}
	current := 0
	for idx, opt := range field.Options {
		choices = append(choices, opt.Label)
		if opt.IsDefault {
			current = idx + 1
		}
	}
	choice, err := i.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Default option",
		Options:      choices,
		DefaultIndex: current,
	})
	if err != nil {
		return err
	}
	return i.apply(i.session.SetDefaultOption(id, choice-1))
}

func (i *Interactive) promptDefault(ctx context.Context, field model.Field) error {
	switch field.Type {
	case model.FieldTypeFile:
		return nil
	case model.FieldTypeCheckbox:
		checked, err := i.driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: "Checked by default?",
			Default: field.DefaultValue == "true",
		})
		if err != nil {
			return err
		}
		value := ""
		if checked {
			value = "true"
		}
		return i.apply(i.session.SetDefaultValue(field.ID, value))
	}

	cfg := prompt.InputConfig{Message: "Default value", Default: field.DefaultValue}
	switch field.Type {
	case model.FieldTypeDate:
		cfg.Help = "YYYY-MM-DD"
	case model.FieldTypeNumber:
		cfg.Validator = optionalNumber
	}
	value, err := i.driver.Input(ctx, cfg)
	if err != nil {
		return err
	}
	return i.apply(i.session.SetDefaultValue(field.ID, value))
}

// promptValidation collects bounds for numeric and text-like fields and a
// pattern for text-like fields.
func (i *Interactive) promptValidation(ctx context.Context, field model.Field) error {
	numeric := field.Type == model.FieldTypeNumber
	if !numeric && !textLike(field.Type) {
		return nil
	}
	current := field.Validation
	if current == nil {
		current = &model.Validation{}
	}
	minLabel, maxLabel := "Minimum length", "Maximum length"
	if numeric {
		minLabel, maxLabel = "Minimum value", "Maximum value"
	}

	next := &model.Validation{}
	var err error
	if next.Min, err = i.promptBound(ctx, minLabel, current.Min); err != nil {
		return err
	}
	if next.Max, err = i.promptBound(ctx, maxLabel, current.Max); err != nil {
		return err
	}
	if !numeric {
		pattern, err := i.driver.Input(ctx, prompt.InputConfig{
			Message: "Pattern (blank for none)",
			Default: current.Pattern,
			Help:    "JavaScript regular expression source, without slashes",
		})
		if err != nil {
			return err
		}
		next.Pattern = pattern
	}
	return i.apply(i.session.SetValidation(field.ID, next))
}

func (i *Interactive) promptBound(ctx context.Context, message string, current *float64) (*float64, error) {
	def := ""
	if current != nil {
		def = strconv.FormatFloat(*current, 'f', -1, 64)
	}
	raw, err := i.driver.Input(ctx, prompt.InputConfig{
		Message:   message + " (blank for none)",
		Default:   def,
		Validator: optionalNumber,
	})
	if err != nil {
		return nil, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		i.notifier.Warn(fmt.Sprintf("ignoring %s %q: not a number", strings.ToLower(message), raw))
		return nil, nil
	}
	return &value, nil
}

func (i *Interactive) moveField(ctx context.Context, id string) error {
	fields := i.session.Fields()
	from := -1
	positions := make([]string, len(fields))
	for idx, f := range fields {
		positions[idx] = strconv.Itoa(idx + 1)
		if f.ID == id {
			from = idx
		}
	}
	to, err := i.driver.Select(ctx, prompt.SelectConfig{
		Message:      "New position",
		Options:      positions,
		DefaultIndex: from,
	})
	if err != nil {
		return err
	}
	return i.apply(i.session.Move(from, to))
}

func (i *Interactive) removeField(ctx context.Context, id string) error {
	field, _ := i.session.Field(id)
	ok, err := i.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: fmt.Sprintf("Remove %s?", field.DisplayLabel()),
	})
	if err != nil || !ok {
		return err
	}
	return i.apply(i.session.Remove(id))
}

func (i *Interactive) clearFields(ctx context.Context) error {
	if i.session.Len() == 0 {
		i.notifier.Info("No fields yet.")
		return nil
	}
	ok, err := i.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Remove every field?"})
	if err != nil || !ok {
		return err
	}
	i.warn(i.session.Clear())
	return nil
}

func (i *Interactive) editSettings(ctx context.Context) error {
	snapshot := i.session.Snapshot()
	name, err := i.driver.Input(ctx, prompt.InputConfig{Message: "Form name", Default: snapshot.Name})
	if err != nil {
		return err
	}
	description, err := i.driver.Input(ctx, prompt.InputConfig{Message: "Form description", Default: snapshot.Description})
	if err != nil {
		return err
	}

	modes := snapshot.Modes
	languages := []model.Language{model.LanguageTypeScript, model.LanguageJavaScript}
	lang, err := i.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Language",
		Options:      []string{"TypeScript", "JavaScript"},
		DefaultIndex: boolIndex(!modes.TypeScript()),
	})
	if err != nil {
		return err
	}
	frameworks := []model.Framework{model.FrameworkNext, model.FrameworkReact}
	fw, err := i.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Framework",
		Options:      []string{"Next.js", "React"},
		DefaultIndex: boolIndex(!modes.Router()),
	})
	if err != nil {
		return err
	}
	if lang >= 0 && lang < len(languages) {
		modes.Language = languages[lang]
	}
	if fw >= 0 && fw < len(frameworks) {
		modes.Framework = frameworks[fw]
	}

	i.session.SetFormName(name)
	i.session.SetFormDescription(description)
	i.session.SetModes(modes)
	return nil
}

// apply surfaces warnings and reports rejected edits without leaving the
// loop. Only prompt-level failures are returned.
func (i *Interactive) apply(warnings validation.Diagnostics, err error) error {
	if err != nil {
		i.notifier.Error(err.Error())
		return nil
	}
	i.warn(warnings)
	return nil
}

func (i *Interactive) warn(warnings validation.Diagnostics) {
	for _, w := range warnings {
		i.notifier.Warn(w.Message)
	}
}

func (i *Interactive) reportFailure(err error) {
	if diags, ok := validation.AsDiagnostics(err); ok {
		for _, d := range diags {
			i.notifier.Error(d.Message)
		}
		return
	}
	i.notifier.Error(err.Error())
}

func fieldLabels(fields []model.Field) []string {
	out := make([]string, len(fields))
	for idx, f := range fields {
		out[idx] = fmt.Sprintf("%d. %s (%s)", idx+1, f.DisplayLabel(), f.Type.DisplayName())
	}
	return out
}

func textLike(t model.FieldType) bool {
	switch t {
	case model.FieldTypeText, model.FieldTypeTextarea, model.FieldTypeEmail, model.FieldTypePassword:
		return true
	default:
		return false
	}
}

func optionalNumber(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return fmt.Errorf("%q is not a number", value)
	}
	return nil
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
