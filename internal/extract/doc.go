// Package extract turns a free-form description of billable work into an
// invoice record.
//
// Each field family has its own extractor. Extractors read the same
// immutable Input, never depend on each other's output and never fail:
// anything they cannot find degrades to a value from Defaults. Where more
// than one pattern can apply, patterns are tried in a fixed order and the
// first accepted result wins.
package extract
