// Package config provides configuration loading, merging, and validation
// facilities for go-pin-keeper.
//
// Configuration is assembled from several sources; for every field the first
// source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetBackgroundConfig] returns the view used by the background process and
// [GetClientConfig] the view used by interactive contexts.
package config
