package parsers

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dephub/versync/providers/versioneer"
)

// ExtractConstraints extracts the version requirement of the dependency
// called name from a TOML manifest snippet.
//
// Both the 'dependencies' and 'dev-dependencies' tables are consulted.
// Within an entry the resolution order is: an explicit 'version' field in
// the table form, then the presence of a 'git' field (which never pins a
// registry version and resolves to the wildcard requirement), then a bare
// version string.
func ExtractConstraints(block, name string) (versioneer.Constraints, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal([]byte(block), &doc); err != nil {
		return versioneer.Constraints{}, fmt.Errorf("TOML parse error: %v", err)
	}

	raw, ok := dependencyVersion(doc, name)
	if !ok {
		return versioneer.Constraints{}, fmt.Errorf("no dependency on %s", name)
	}

	constr, err := versioneer.NewConstraints(raw)
	if err != nil {
		return versioneer.Constraints{}, fmt.Errorf("could not parse dependency: %v", err)
	}
	return constr, nil
}

// dependencyVersion resolves the raw requirement string for name.
func dependencyVersion(doc map[string]interface{}, name string) (string, bool) {
	table, ok := doc["dependencies"]
	if !ok {
		table, ok = doc["dev-dependencies"]
	}
	if !ok {
		return "", false
	}
	deps, ok := table.(map[string]interface{})
	if !ok {
		return "", false
	}

	switch dep := deps[name].(type) {
	case string:
		// name = "1.2.3"
		return dep, true
	case map[string]interface{}:
		if version, ok := dep["version"].(string); ok {
			// name = { version = "1.2.3", ... }
			return version, true
		}
		if _, ok := dep["git"]; ok {
			// name = { git = "..." }
			return "*", true
		}
	}
	return "", false
}
