// Package novelgrab retrieves chapters from long-form web-fiction sites.
// It fetches a remote HTML document, resolves its byte encoding from
// headers and byte-level heuristics, extracts clean narrative text from
// noisy reader markup, and rejects extractions contaminated by reading-UI
// chrome.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, charset/, sqlite/).
package novelgrab
