// Package persistence contains the GORM-backed repository implementations
// and database connection management.
package persistence
