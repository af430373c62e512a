// Package autohext builds Hext extraction templates from example HTML
// records. The values to extract are marked on an element tree; the lowest
// common ancestor of the marked nodes is lowered into a template that an
// external Hext engine applies to structurally similar documents.
//
// This package contains domain types, the core tree algorithms and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, htmltomarkdown/).
package autohext
