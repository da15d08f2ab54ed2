// Package cleaning implements the data-quality pipeline for the student
// performance dataset.
//
// The pipeline is a strict linear sequence of stages over the record table:
//
//  1. deduplicate        — drop exact full-row duplicates, keep first
//  2. normalize-missing  — sentinel markers ("N/A", "-", ...) become absent
//  3. coerce-numeric     — parse numeric columns; failures become absent
//  4. impute             — median fill for numeric, mode fill for categorical
//  5. standardize        — trim + canonical casing + gender alias map
//  6. age-bounds         — integerize age, overwrite out-of-range with median
//  7. clamp-ranges       — bound percent columns into [0,100]
//
// Ordering is contractual: coercion must precede imputation so medians are
// computed over parsed values, and deduplication precedes sentinel
// normalization so duplicate detection sees the raw rows.
//
// Each stage takes a table and returns a new one; diagnostics flow through an
// Observer so the transformations stay pure and independently testable.
//
// Two policies are intentionally asymmetric and must stay that way: an
// out-of-range age is overwritten with the dataset median, while out-of-range
// attendance and scores are clamped to the nearest boundary.
package cleaning
