// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project, domain/validation).
// This root package holds sentinel errors and the field-level ValidationError.
package domain
