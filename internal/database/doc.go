// Package database provides the relational storage layer for the book catalog.
//
// The catalog (books) and the audit trail share one SQLite database, opened
// through gorm and migrated at startup. Reviews have their own package,
// internal/database/reviews, backed by the document store — there is no
// foreign key or transaction spanning the two.
package database
