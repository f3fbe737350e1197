// Package session persists the signed-in user between console runs.
//
// The record is stored as key/value rows of the session table created by
// the client migrations. Save writes every key, so callers that need the
// write to be atomic run it inside dbx.WithTx with a transactional DBTX.
package session
