// Package wordhord turns a digitized dictionary published as a single HTML
// document into an in-memory full-text index and answers "search" and
// "define" queries against it.
//
// This package contains domain types, interfaces and the pure extraction
// and query-parsing logic, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, http/).
package wordhord
