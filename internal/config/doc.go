// Package config provides configuration loading, merging, and validation
// facilities for the sealnote client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig], which loads the merged
// [StructuredConfig] and projects the validated client view from it.
package config
