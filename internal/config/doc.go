// Package config provides configuration loading, merging, and validation
// facilities for the skillscope client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to whatever is still unset, then the result is
// validated. The main entry points are [GetStructuredConfig] and
// [GetClientConfig].
package config
