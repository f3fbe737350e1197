// Package models defines the inventory entities exchanged with the remote API
// and the request bodies the console sends when creating or editing them.
//
// Identifiers are opaque strings assigned by the API; the client never
// generates them. Money is represented with shopspring/decimal and calendar
// dates with Date, which travels as YYYY-MM-DD.
package models
