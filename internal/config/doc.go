// Package config loads and validates the cxrextract TOML configuration.
//
// Resolution order: an explicit --config path, then
// ~/.config/cxrextract/config.toml, then a project-local cxrextract.toml.
// Missing files fall back to defaults; path values are tilde-expanded and
// made absolute during normalization.
package config
