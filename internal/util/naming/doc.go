// Package naming provides consistent naming functions for BCCE resources.
//
// Every per-developer resource name is a pure function of the developer's
// email address (plus an account discriminator for globally-scoped names
// like S3 buckets), so the same email always maps to the same footprint.
package naming
