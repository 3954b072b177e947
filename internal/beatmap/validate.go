package beatmap

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// setSchema constrains beatmap set documents accepted by the importer.
const setSchema = `{
  "type": "object",
  "required": ["online_id", "title", "artist", "creator", "beatmaps"],
  "properties": {
    "online_id": {"type": "integer", "minimum": 1},
    "title": {"type": "string", "minLength": 1},
    "artist": {"type": "string", "minLength": 1},
    "creator": {"type": "string", "minLength": 1},
    "source": {"type": "string"},
    "beatmaps": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "ruleset", "star_rating", "drain_seconds", "bpm_min"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "ruleset": {"enum": ["circles", "drums", "fruits", "keys"]},
          "star_rating": {"type": "number", "minimum": 0},
          "drain_seconds": {"type": "integer", "minimum": 0},
          "bpm_min": {"type": "number", "exclusiveMinimum": 0},
          "bpm_max": {"type": "number", "minimum": 0},
          "circles": {"type": "integer", "minimum": 0},
          "sliders": {"type": "integer", "minimum": 0},
          "spinners": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

// ErrInvalidSet wraps a schema or decode failure for one import document.
type ErrInvalidSet struct {
	Path string
	Err  error
}

func (e *ErrInvalidSet) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid beatmap set: %v", e.Err)
	}
	return fmt.Sprintf("invalid beatmap set %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidSet) Unwrap() error {
	return e.Err
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(setSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse set schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://beatmap_set.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://beatmap_set.json")
	})
	return compiledSchema, compileErr
}

// ParseSet validates raw JSON against the set schema and decodes it.
// path is only used for error reporting.
func ParseSet(raw []byte, path string) (*Set, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidSet{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiled()
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidSet{Path: path, Err: err}
	}

	var set Set
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, &ErrInvalidSet{Path: path, Err: err}
	}
	return &set, nil
}
