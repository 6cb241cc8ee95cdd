// Package levels is the read-only persistence boundary for game level
// data. Levels are authored out of band; this package only lists them
// and picks a random one for the "play a random level" feature.
package levels
