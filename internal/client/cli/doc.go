// Package cli provides the interactive stockdesk console.
//
// It wires configuration, the local session store, the API client and an
// interactive REPL. Typical flow: restore the previous session (or log in),
// start a background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - List products, purchases, sales and stores
//   - Add products, purchases, sales and stores through form flows
//   - Edit and delete products and stores
//
// Every add and edit command runs a flow.Modal: the fields are prompted one
// by one, the draft is validated locally, and on a failed submission the
// user can fix a field and resubmit or cancel. Nothing is retried
// automatically.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
