package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a configured value to an Environment. Short aliases ("dev",
// "stage", "prod") are accepted and matching ignores case. Anything else is
// returned as a custom environment, with Development for the empty string.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", string(Development):
		return Development
	case "stage", string(Staging):
		return Staging
	case "prod", string(Production):
		return Production
	default:
		return Environment(strings.ToLower(strings.TrimSpace(s)))
	}
}

func (e Environment) String() string { return string(e) }

func (e Environment) IsProduction() bool  { return Parse(string(e)) == Production }
func (e Environment) IsStaging() bool     { return Parse(string(e)) == Staging }
func (e Environment) IsDevelopment() bool { return Parse(string(e)) == Development }
