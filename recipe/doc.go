// Package recipe defines the value records exchanged between the ingestion
// layer, the optimizer and the report layer of prodchain.
//
// A production economy is described by a list of technologies (recipes). Each
// Technology consumes a list of input Items and produces a list of output Items
// over one cycle of duration Time:
//
//	   iron-ore ×1 ──┐
//	                 ├─► [iron-plate, 3.2s] ──► iron-plate ×1
//	                 │
//
// Item.Amount is the quantity per cycle and is always non-negative; whether the
// item is consumed or produced is implied by the list that holds it.
//
// # Value semantics
//
// All records are plain values. Nothing in prodchain mutates a record after it
// was constructed; "updating" a record means producing a copy with one field
// overridden:
//
//	faster := t.WithTime(t.Time / 2)
//	doubled := t.WithOutputs(scaled)
//
// Slices are copied by the With* helpers and by Clone, so a derived record never
// aliases the backing arrays of its origin.
//
// # Adjustment
//
// Adjust rewrites cycle times and output amounts by per-category multipliers
// (crafting speed and productivity bonuses). It is a pure record transform
// applied before the records reach the optimizer.
//
// # Resolved technologies
//
// Resolved pairs a Technology with the number of cycles the optimizer requires
// of it. Only the optimizer produces Resolved values.
package recipe
