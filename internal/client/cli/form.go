package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/stockdesk/internal/client/draft"
	"github.com/dmitrijs2005/stockdesk/internal/client/flow"
	"github.com/dmitrijs2005/stockdesk/internal/client/lists"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

const formNextPrompt = "Field to change, 'submit' to try again, or 'cancel'"

// Local rule failures and API failures are reported on separate lines.
const (
	msgInvalidPrefix  = "Invalid input:"
	msgNotSavedPrefix = "Not saved:"
)

// fieldEditor is the part of a flow.Modal the prompts need.
type fieldEditor interface {
	SetField(key, value string) error
	Draft() *draft.Draft
}

// runForm opens m with d, prompts for every visible field and submits.
// After a rejected or failed submission the user may change fields and
// resubmit, or cancel. The modal is always closed when runForm returns.
func runForm[T any](ctx context.Context, a *App, m *flow.Modal[T], d *draft.Draft, cat *lists.Catalog) error {
	if err := m.Open(d); err != nil {
		return err
	}
	defer func() { _ = m.Cancel() }()

	schema := d.Schema()
	for _, f := range schema.Fields {
		if f.Hidden {
			continue
		}
		if err := a.promptField(m, f, cat); err != nil {
			return err
		}
	}

	for {
		out, err := m.Submit(ctx)
		switch out {
		case flow.OutcomeSucceeded:
			return nil
		case flow.OutcomeRejected:
			fmt.Fprintln(a.out, msgInvalidPrefix, m.ValidationError())
		case flow.OutcomeFailed:
			fmt.Fprintln(a.out, msgNotSavedPrefix, m.SubmitError())
		default:
			return err
		}

		if done, err := a.amend(m, schema, cat); done || err != nil {
			return err
		}
	}
}

// amend lets the user change fields until they resubmit (done=false) or
// cancel (done=true).
func (a *App) amend(m fieldEditor, schema draft.Schema, cat *lists.Catalog) (bool, error) {
	for {
		next, err := getSimpleText(a.reader, formNextPrompt, a.out)
		if err != nil {
			return true, err
		}
		switch strings.ToLower(next) {
		case "", "s", "submit":
			return false, nil
		case "c", "cancel":
			fmt.Fprintln(a.out, "Cancelled")
			return true, nil
		}

		f, ok := visibleField(schema, next)
		if !ok {
			fmt.Fprintf(a.out, "Unknown field %q\n", next)
			continue
		}
		if err := a.promptField(m, f, cat); err != nil {
			return true, err
		}
	}
}

func visibleField(s draft.Schema, name string) (draft.Field, bool) {
	for _, f := range s.Fields {
		if f.Hidden {
			continue
		}
		if strings.EqualFold(f.Key, name) || strings.EqualFold(f.Label, name) {
			return f, true
		}
	}
	return draft.Field{}, false
}

// promptField asks for one field. An empty answer keeps the current value.
// Reference and category fields list their choices and also accept the
// choice number.
func (a *App) promptField(m fieldEditor, f draft.Field, cat *lists.Catalog) error {
	choices := fieldChoices(f, cat)
	for i, c := range choices {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, c.label)
	}

	current := m.Draft().Get(f.Key)
	prompt := f.Label
	if current != "" {
		prompt += " [" + current + "]"
	}

	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if v == "" && current != "" {
		return nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(choices) {
		v = choices[n-1].value
	}
	return m.SetField(f.Key, v)
}

type choice struct {
	value string
	label string
}

func fieldChoices(f draft.Field, cat *lists.Catalog) []choice {
	var out []choice
	switch f.Type {
	case draft.Category:
		for _, c := range models.StoreCategories {
			out = append(out, choice{value: string(c), label: string(c)})
		}
	case draft.ProductRef:
		if cat == nil {
			return nil
		}
		for _, p := range cat.Products.Items() {
			out = append(out, choice{value: p.ID, label: fmt.Sprintf("%s (stock %d)", p.Name, p.Stock)})
		}
	case draft.StoreRef:
		if cat == nil {
			return nil
		}
		for _, s := range cat.Stores.Items() {
			out = append(out, choice{value: s.ID, label: fmt.Sprintf("%s, %s", s.Name, s.City)})
		}
	}
	return out
}
