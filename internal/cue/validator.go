// Package cue validates lexicon and weight override files against embedded
// CUE schemas before their contents reach the scoring tables.
package cue

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator handles CUE schema validation for override files.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator compiles every embedded schema and returns a ready Validator.
func NewValidator() (*Validator, error) {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}
		name := strings.TrimSuffix(entry.Name(), ".cue")
		v.schemas[name] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return nil, fmt.Errorf("no CUE schemas loaded")
	}
	return v, nil
}

// Validate checks data against the named schema. The schema file must define
// a definition matching its own name, e.g. lexicon.cue defines #Lexicon.
func (v *Validator) Validate(schemaName string, data map[string]any) error {
	schema, ok := v.schemas[schemaName]
	if !ok {
		return fmt.Errorf("no schema named %q", schemaName)
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return fmt.Errorf("encoding data: %w", encErr)
	}

	defPath := cue.ParsePath("#" + strings.ToUpper(schemaName[:1]) + schemaName[1:])
	def := schema.LookupPath(defPath)
	if !def.Exists() {
		return fmt.Errorf("schema %s does not define %s", schemaName, defPath)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return fmt.Errorf("schema validation failed: %v", err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %v", err)
	}
	return nil
}
