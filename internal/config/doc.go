// Package config loads and validates the organization configuration that
// drives onboarding runs.
//
// The configuration has four top-level sections: organization (identity of
// the deploying org), authentication (identity-store integration),
// governance (shared BCCE resources and tier tables), and departments
// (budget and allowed access tiers per department). Files may be YAML or
// JSON, selected by extension.
package config
