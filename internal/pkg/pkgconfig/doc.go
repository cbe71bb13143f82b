// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Business code depends on the Config interface so it stays easy to test and
// does not care where values come from. The Viper implementation reads a file
// and lets WSGATE_* environment variables override any key.
//
// Lists are comma separated ("a,b,c") and maps are "k:v,k:v" pairs.
package pkgconfig
