// Package detail provides on-demand loading of records shown in TUI detail views.
//
// A detail record is fetched only when its view is opened, so moving through
// the card grid never waits on the network. Key features:
//   - Async loading issued as a Bubble Tea command, with the loading state shown
//     immediately by the caller
//   - Request ids, so a response that arrives after a newer request was started
//     (or after the request was cancelled) is recognised and dropped
//   - Context cancellation of superseded requests
package detail
