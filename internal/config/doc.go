// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources, from lowest to highest
// priority (non-zero fields of a higher source win):
//  1. JSON or YAML config file
//  2. Environment variables
//  3. Command-line flags
//
// The main entry points are [GetStructuredConfig] for server/runtime
// configuration and [GetClientConfig] for client-specific configuration.
package config
