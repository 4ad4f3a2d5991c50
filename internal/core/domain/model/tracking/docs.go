// Package tracking contains the append-only tracking ledger entry.
// Every parcel status change, whether driven by a mission, an operator
// action, or a forced override, writes one Entry. The ledger is never
// rewritten; the parcel's current status is a denormalized copy of the
// latest entry.
package tracking
