// Package pagination provides sorting and paging for CLI list output.
//
// It contains the pieces the list command needs to cut a large result set
// down to something readable:
//   - Params: --limit/--offset and --page/--page-size parsing and validation
//   - Meta: page numbers for the footer printed under a paged table
//   - CountrySorter: --sort field:order handling for country summaries
//
// Paging always runs after sorting so that page N is stable for a given
// sort expression.
package pagination
