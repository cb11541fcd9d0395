// Package models ships the section models built into the library.
//
// Currently that is the camera section used by the supported capture
// application: sensor orientation and sensitivity, tuning file selection,
// multimedia output location, timestamp overlay rendering, and snapshot
// settings. Register adds every built-in model to a registry;
// DefaultRegistry returns one preloaded with them.
package models
