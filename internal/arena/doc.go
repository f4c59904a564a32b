// Package arena provides a generation-checked slot table.
//
// Values live in a dense slice of slots. Each allocation returns a Ref made of
// the slot index and the slot's generation. Freeing a slot bumps its
// generation, so every Ref issued before the free becomes stale and is
// rejected instead of aliasing whatever is allocated into the slot next.
//
// # Features
//
//   - O(1) Alloc, Get and Free with slot reuse via a free list
//   - Index 0 is reserved, so the zero Ref is always invalid
//   - Slots whose generation counter is exhausted are retired, never reused
//
// # Safety
//
// All methods return errors instead of panicking. Arena is safe for
// concurrent use.
package arena
