// Package pkgroutine runs background work with bounded concurrency.
//
// A Manager caps how many tasks run at once, joins the errors they return and
// turns panics into errors, so a failing incident worker shows up in Wait
// instead of taking the process down.
package pkgroutine
