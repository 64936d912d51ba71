package store

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// ParseID normalizes a caller-supplied id the way a lenient integer parse
// does: surrounding whitespace, an optional sign and an optional 0x prefix
// (hex) are accepted, then the leading run of digits is used and anything
// after it is ignored. Input without leading digits can never match a todo,
// so it is reported as not found.
func ParseID(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, NotFound(raw)
	}
	n, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		// out of int range
		return 0, NotFound(raw)
	}
	if neg {
		n = -n
	}
	return int(n), nil
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16:
		c |= 0x20
		return c >= 'a' && c <= 'f'
	}
	return false
}

// IDGenerator picks the id for a newly created todo.
type IDGenerator interface {
	NextID(existing []*model.Todo) int
}

// Sequence hands out ids one above the highest id seen so far. It never
// reuses an id, even after the todo holding the maximum was deleted.
type Sequence struct {
	last int
}

// Observe raises the counter to the highest id in todos.
func (s *Sequence) Observe(todos []*model.Todo) {
	for _, t := range todos {
		if t.ID > s.last {
			s.last = t.ID
		}
	}
}

// NextID returns one more than the highest id observed so far.
func (s *Sequence) NextID(existing []*model.Todo) int {
	s.Observe(existing)
	s.last++
	return s.last
}

// RandomRange reproduces the legacy scheme: an id drawn from [4, 13].
// Ids may collide with existing ones.
type RandomRange struct {
	Rand *rand.Rand // nil uses the package-level source
}

// NextID draws an id from [4, 13], ignoring existing todos.
func (r RandomRange) NextID([]*model.Todo) int {
	f := rand.Float64
	if r.Rand != nil {
		f = r.Rand.Float64
	}
	return int(4 + f()*10)
}
