package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// MaxID is the largest task ID that can be stored or given on the command line.
const MaxID = 1<<32 - 1

// tasksSchema describes the on-disk task list.
var tasksSchema = fmt.Sprintf(`{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "description", "completed"],
    "properties": {
      "id": {"type": "integer", "minimum": 0, "maximum": %d},
      "description": {"type": "string"},
      "completed": {"type": "boolean"}
    }
  }
}`, uint64(MaxID))

const tasksSchemaURL = "tasks.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

var missingPropRe = regexp.MustCompile(`['"]([^'"]+)['"]`)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(tasksSchemaURL, strings.NewReader(tasksSchema)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile(tasksSchemaURL)
	})
	return compiled, compileErr
}

// DecodeTasks parses a task list from JSON.
// The whole document is validated before any task is built, so a failure
// never yields a partial list. IDs must be unique.
func DecodeTasks(data []byte) ([]Task, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Err: errors.New("unexpected data after top-level value")}
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compile task schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	items := doc.([]interface{})
	tasks := make([]Task, 0, len(items))
	seen := make(map[int]bool, len(items))
	for i, item := range items {
		obj := item.(map[string]interface{})

		// "1.0" passes the integer check but is not a valid ID
		id, err := obj["id"].(json.Number).Int64()
		if err != nil {
			return nil, &SchemaError{Index: i, Field: "id", Message: "must be a whole number"}
		}
		if seen[int(id)] {
			return nil, &SchemaError{Index: i, Field: "id", Message: fmt.Sprintf("duplicate id %d", id)}
		}
		seen[int(id)] = true

		tasks = append(tasks, Task{
			ID:          int(id),
			Description: obj["description"].(string),
			Completed:   obj["completed"].(bool),
		})
	}
	return tasks, nil
}

// EncodeTasks serializes tasks as a compact JSON array.
// A nil list is encoded as an empty array.
func EncodeTasks(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, &SerializeError{Err: err}
	}
	return data, nil
}

// schemaError converts a jsonschema validation failure into a SchemaError
// describing the first leaf cause.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &SchemaError{Index: -1, Message: err.Error()}
	}

	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	loc := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if loc == "" {
		return &SchemaError{Index: -1, Message: "must be an array"}
	}

	segs := strings.Split(loc, "/")
	idx, convErr := strconv.Atoi(segs[0])
	if convErr != nil {
		return &SchemaError{Index: -1, Message: leaf.Message}
	}

	if len(segs) > 1 {
		return &SchemaError{Index: idx, Field: segs[1], Message: leaf.Message}
	}
	if strings.HasPrefix(leaf.Message, "missing properties") {
		if m := missingPropRe.FindStringSubmatch(leaf.Message); m != nil {
			return &SchemaError{Index: idx, Field: m[1], Message: "field is missing"}
		}
	}
	return &SchemaError{Index: idx, Message: leaf.Message}
}
