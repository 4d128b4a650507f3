package config

import (
	"fmt"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// ParseEnvironment maps the ENV value onto an Environment. An empty value
// means development.
func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(s))); env {
	case "":
		return Development, nil
	case Development, Test, CI, Production:
		return env, nil
	default:
		return "", ValidationError{Field: "ENV", Message: fmt.Sprintf("unknown environment %q", s)}
	}
}

// IsProduction returns true for production deployments
func (e Environment) IsProduction() bool {
	return e == Production
}

// ReleaseMode reports whether gin should run in release mode
func (e Environment) ReleaseMode() bool {
	return e == Production || e == CI
}
