package authorization

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed destinations.yaml
var destinationsYAML []byte

// DestinationTable maps a role to its post-login landing route. The table
// is fixed at build time; every lookup that misses falls through to the
// explicit default so the mapping stays exhaustive.
type DestinationTable struct {
	destinations       map[UserRole]string
	defaultDestination string
	verificationNotice string
}

type destinationsFile struct {
	Destinations       map[string]string `yaml:"destinations"`
	Default            string            `yaml:"default"`
	VerificationNotice string            `yaml:"verification_notice"`
}

// LoadDestinationTable parses the embedded table and validates that every
// configured role is a known role.
func LoadDestinationTable() (*DestinationTable, error) {
	var file destinationsFile
	if err := yaml.Unmarshal(destinationsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse destination table: %w", err)
	}
	if file.Default == "" {
		return nil, fmt.Errorf("destination table has no default route")
	}
	if file.VerificationNotice == "" {
		return nil, fmt.Errorf("destination table has no verification notice route")
	}

	destinations := make(map[UserRole]string, len(file.Destinations))
	for roleName, route := range file.Destinations {
		role := UserRole(roleName)
		if !role.IsValid() {
			return nil, fmt.Errorf("destination table references unknown role %q", roleName)
		}
		if route == "" {
			return nil, fmt.Errorf("destination table has empty route for role %q", roleName)
		}
		destinations[role] = route
	}

	return &DestinationTable{
		destinations:       destinations,
		defaultDestination: file.Default,
		verificationNotice: file.VerificationNotice,
	}, nil
}

// DestinationFor returns the landing route for a role, or the default
// route when the role is unknown or unmapped.
func (t *DestinationTable) DestinationFor(role UserRole) string {
	if route, ok := t.destinations[role]; ok {
		return route
	}
	return t.defaultDestination
}

// VerificationNotice is the landing route for accounts that still need to
// verify their email, regardless of role.
func (t *DestinationTable) VerificationNotice() string {
	return t.verificationNotice
}
