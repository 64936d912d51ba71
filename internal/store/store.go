// Package store holds the in-memory todo accessor.
//
// A Store owns its ordered list of todos for the lifetime of the process.
// All operations are synchronous and there is no locking: a Store must only
// be used from one goroutine at a time.
//
// Create appends the new todo, so it is visible to later List and Get calls.
// Delete removes the todo. Complete and Delete fail closed: when the id is
// unknown they return a NotFoundError and change nothing.
package store

import (
	"strconv"

	"github.com/Makepad-fr/tada/internal/model"
)

// DeletedMessage is the confirmation returned by Delete.
const DeletedMessage = "Todo deleted successfully"

type Store struct {
	todos []*model.Todo
	ids   IDGenerator
}

type Option func(*Store)

// WithIDGenerator replaces the default Sequence generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// New builds a store preloaded with todos, in order.
func New(todos []model.Todo, opts ...Option) *Store {
	s := &Store{
		todos: make([]*model.Todo, 0, len(todos)),
		ids:   &Sequence{},
	}
	for i := range todos {
		t := todos[i]
		s.todos = append(s.todos, &t)
	}
	for _, opt := range opts {
		opt(s)
	}
	if o, ok := s.ids.(interface{ Observe([]*model.Todo) }); ok {
		o.Observe(s.todos)
	}
	return s
}

// List returns every todo in insertion order. The records are shared with
// the store.
func (s *Store) List() []*model.Todo {
	out := make([]*model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Get returns the first todo with the given id.
func (s *Store) Get(id int) (*model.Todo, error) {
	i := s.index(id)
	if i < 0 {
		return nil, NotFound(strconv.Itoa(id))
	}
	return s.todos[i], nil
}

// Create stores a new todo built from d and returns it.
func (s *Store) Create(d model.Draft) *model.Todo {
	t := &model.Todo{
		ID:    s.ids.NextID(s.todos),
		Title: d.Title,
	}
	if d.Completed != nil {
		t.Completed = *d.Completed
	}
	s.todos = append(s.todos, t)
	return t
}

// Complete marks the todo done in place.
func (s *Store) Complete(id int) (*model.Todo, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	t.Completed = true
	return t, nil
}

// Delete removes the todo and returns a confirmation message.
func (s *Store) Delete(id int) (string, error) {
	i := s.index(id)
	if i < 0 {
		return "", NotFound(strconv.Itoa(id))
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	return DeletedMessage, nil
}

func (s *Store) index(id int) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
