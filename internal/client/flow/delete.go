package flow

import (
	"context"

	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// DeleteFlow removes one entity after an explicit confirmation.
type DeleteFlow struct {
	Prompt         string
	Do             func(ctx context.Context) error
	Signal         *RefreshSignal
	SuccessNotice  string
	FailureMessage string
}

// Run asks for confirmation and, if given, issues the delete. A declined
// confirmation sends nothing. On failure the list is left alone until the
// next refresh.
func (f DeleteFlow) Run(ctx context.Context, n Notifier, log logging.Logger) (Outcome, error) {
	if !n.Confirm(ctx, f.Prompt) {
		return OutcomeDeclined, nil
	}

	if err := f.Do(ctx); err != nil {
		log.Error(ctx, "delete failed", "error", err)
		n.Alert(ctx, f.FailureMessage)
		return OutcomeFailed, err
	}

	if f.Signal != nil {
		f.Signal.Invalidate(ctx)
	}
	n.Alert(ctx, f.SuccessNotice)
	return OutcomeSucceeded, nil
}
