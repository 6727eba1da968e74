// Package config defines the settings structures for the REST API and the
// admin CLI, loaded from YAML and validated with go-playground/validator.
package config
