// Package terminal owns the tcell screen the rain is drawn on.
//
// Features:
//   - True color (24-bit) and 256-color palette support
//   - Incremental refresh through tcell's double buffer, full repaint on resize
//   - Non-blocking keystroke polling fed by a single event pump goroutine
//   - Color themes and #rrggbb parsing
//   - Clean terminal restoration on exit/panic
package terminal
