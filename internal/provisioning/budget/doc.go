// Package budget creates the per-developer monthly cost budget. The budget
// is keyed by the Owner cost-allocation tag and carries exactly two
// actual-spend notifications: 80% (developer) and 100% (developer plus
// manager, when a manager email is known).
package budget
