// Package flow implements the create/edit/delete protocol shared by every
// entity form in the console.
//
// A Modal owns one Draft from Open until it closes. Submit runs the
// coordinator state machine:
//
//	open -> validating -> rejected (inline error, stays open)
//	                   -> submitting -> success (refresh, notify, close)
//	                                 -> failed  (notify, stays open, draft kept)
//
// Only one submission can be in flight per modal; extra Submit calls while
// submitting return ErrBusy without reaching the API. Nothing is retried: a
// failed submission is re-initiated by the user.
//
// Successful mutations call RefreshSignal.Invalidate so the owning list
// re-fetches from the API. Lists are never patched from a modal.
package flow
