// Package config provides configuration loading, merging, and validation
// facilities for the site-vault server.
//
// Configuration is assembled from multiple sources. For every field the first
// source that provides a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c / -config)
//  4. Built-in defaults
//
// The merged configuration is validated once and must be treated as
// immutable afterwards. The main entry point is [GetStructuredConfig].
package config
