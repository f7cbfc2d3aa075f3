// Package services defines shared utilities consumed by the extraction
// workflow and external tool integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that tag failures so the
//     CLI boundary can classify them (validation vs tool missing vs tool
//     failure) without parsing messages.
//   - A home for the external tool clients (see the coronaimage subpackage)
//     so command execution stays testable.
package services
