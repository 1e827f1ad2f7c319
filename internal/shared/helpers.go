// Package shared provides common utility functions used across multiple
// packages in the transition-planner codebase.
package shared

import "strings"

// NormalizeRepository lowercases and trims a repository label so that
// origins compare and print consistently.
func NormalizeRepository(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
