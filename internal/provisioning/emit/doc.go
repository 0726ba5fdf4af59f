// Package emit renders the developer-facing onboarding artifacts: the BCCE
// client configuration, a shell-exportable environment block, and a
// getting-started guide. Rendering is a pure function of the provisioning
// outputs and the run timestamp.
package emit
