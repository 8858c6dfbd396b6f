// Package dataminer extracts flat records from HTML pages.
// It fetches a fixed list of pages, locates repeated container nodes with a
// CSS selector, resolves named field selectors relative to each container and
// serializes the collected records as JSON or CSV.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, rod/, fs/).
package dataminer
