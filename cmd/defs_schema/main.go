// cmd/defs_schema/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"go-arena-brawl/internal/defs"
)

// Генерирует JSON-схемы для файлов assets/data: rules.json и элементов fighters.json.
func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "assets/schema", "directory to write the JSON schemas to")
	flag.Parse()

	schemas := map[string]*jsonschema.Schema{
		"rules.schema.json":   buildSchema(new(defs.Rules), "Arena Rules", "Match setup read from assets/data/rules.json"),
		"fighter.schema.json": buildSchema(new(defs.FighterDefinition), "Fighter Definition", "One element of the array in assets/data/fighters.json"),
	}

	for name, schema := range schemas {
		if err := writeSchema(filepath.Join(outDir, name), schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
			os.Exit(1)
		}
	}
}

func buildSchema(v interface{}, title, description string) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(v)
	schema.Title = title
	schema.Description = description
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
