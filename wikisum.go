// Package wikisum fetches wiki articles by title, reduces their rendered HTML
// to boilerplate-free plain text, and produces short extractive summaries with
// a canonical link back to the source article.
//
// This package contains domain types, interfaces and the library-independent
// cleanup heuristics, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, gin/, sentences/).
package wikisum
