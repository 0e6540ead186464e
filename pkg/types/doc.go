// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared across slr-engine:
// survey papers and their identifiers, classification methods and
// dimensions, bibliographic entries, and configuration.
package types
