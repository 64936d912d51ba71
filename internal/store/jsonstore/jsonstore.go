package jsonstore

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Makepad-fr/tada/internal/model"
)

// Read-only JSON seed for the in-memory store. A todo list is loaded once
// at startup; nothing is ever written back.

//go:embed seed.json
var defaultSeed []byte

// Load reads the todos in the JSON array at path. An empty path loads the
// built-in seed.
func Load(path string) ([]model.Todo, error) {
	if path == "" {
		return decode(defaultSeed)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return decode(b)
}

func decode(b []byte) ([]model.Todo, error) {
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}
