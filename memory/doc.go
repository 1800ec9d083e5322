// Package memory persists the finalized standup of each cycle.
//
// Persistence model:
//   - One JSON snapshot per install: the last finalized draft, item by item,
//     with a resolution status. Overwritten at every finalization.
//   - The next cycle reads it as carry-over input and never mutates it.
package memory
