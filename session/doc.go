// Package session wires user actions to the persisted state store and
// exposes the read-only views the presentation layer renders.
//
// Session state is not a set of discrete modes but independent, composable
// flags: whether the search surface is open, whether the filter panel is
// visible, and the current query. No state is terminal; the controller runs
// for the lifetime of the hosting session.
package session
