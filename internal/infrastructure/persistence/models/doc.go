// Package models contains the GORM database models (infrastructure concern),
// kept separate from the domain entities they map to.
package models
