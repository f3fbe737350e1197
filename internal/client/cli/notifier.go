package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// getConfirmation is a test seam for GetConfirmation.
var getConfirmation = GetConfirmation

// consoleNotifier shows flow notifications on the console. Alerts block
// only as long as printing takes; confirmations wait for an answer.
type consoleNotifier struct {
	reader *bufio.Reader
	out    io.Writer
}

func (n consoleNotifier) Alert(_ context.Context, msg string) {
	fmt.Fprintf(n.out, "! %s\n", msg)
}

func (n consoleNotifier) Confirm(_ context.Context, prompt string) bool {
	return getConfirmation(n.reader, prompt, n.out)
}

func (a *App) notifier() consoleNotifier {
	return consoleNotifier{reader: a.reader, out: a.out}
}
