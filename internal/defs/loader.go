// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadFighterDefinitions reads the fighter configuration file and populates the FighterLibrary.
// Classes missing from the file keep their built-in definitions.
func LoadFighterDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fighter definitions file: %w", err)
	}

	var fighterDefs []FighterDefinition
	if err := json.Unmarshal(file, &fighterDefs); err != nil {
		return fmt.Errorf("failed to unmarshal fighter definitions: %w", err)
	}

	library := DefaultFighters()
	for _, def := range fighterDefs {
		if _, err := ParseClass(string(def.ID)); err != nil {
			return fmt.Errorf("fighter definition %q: %w", def.ID, err)
		}
		library[def.ID] = def
	}
	FighterLibrary = library

	log.Printf("Loaded %d fighter definitions from %s", len(fighterDefs), path)
	return nil
}

// LoadRules reads match rules from a JSON file. Fields absent from the file
// keep their defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	file, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := json.Unmarshal(file, &rules); err != nil {
		return DefaultRules(), fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	return rules.Normalize(), nil
}
