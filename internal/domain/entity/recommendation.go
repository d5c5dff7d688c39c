// Package entity contains the core business objects of the project.
package entity

// Recommendation is the transient result of a recommendation run. It is
// returned to the caller and never persisted.
type Recommendation struct {
	Clothes []*Cloth // Selected clothes, in deterministic order.
	Reason  string   // Human-readable justification for the selection.
}
