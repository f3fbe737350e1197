package cli

import "context"

// Root greets the user, restores a persisted session, starts the status
// watcher and runs the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to stockdesk (type 'help' for commands)")

	a.checkOnline(ctx)
	if err := a.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(wctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
