// Package gridview lays out fixed-size cells in a scrolling grid for Bubble Tea
// TUI applications.
//
// Only the rows that fit in the viewport are rendered, so a few hundred cards
// cost the same to draw as a dozen. Key features:
//   - Column count derived from the viewport width
//   - Keyboard navigation (arrows, hjkl, pgup/pgdn, home/end)
//   - Mapping of a terminal cell to the item drawn there, for mouse clicks
package gridview
