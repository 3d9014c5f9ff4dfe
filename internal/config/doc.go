// Package config loads hotkey configuration from TOML.
//
// A configuration names the document to load, the log level, and the
// bindings to make:
//
//	log_level = "info"
//	document  = "page.yaml"
//	strict    = false
//
//	[[binding]]
//	selector = "input.search"
//	keys     = "ctrl + alt + h"
//	action   = "echo"
//	message  = "help requested"
//
//	[[binding]]
//	selector = "body"
//	keys     = "ctrl + q"
//	action   = "quit"
//
// Relative document paths are resolved against the directory of the
// configuration file.
package config
