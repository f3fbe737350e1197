// Package draft holds the transient, per-modal copy of an entity being
// created or edited.
//
// A Draft is seeded once when its modal opens, either from a Schema's
// defaults or field by field from a fetched entity, and is then mutated only
// through SetField. Values are kept exactly as typed; conversion to decimals,
// integers and dates happens at submit time (see Coerce and Decode) so a
// half-typed number never corrupts the draft.
package draft
