package async

import "strings"

// Errors is a collected, non-aborting list of errors. Persistence and load
// operations accumulate into it instead of failing fast: the in-memory state
// stays authoritative even when some files failed to load or save.
type Errors struct {
	E []error
}

var _ error = (*Errors)(nil)

func (e *Errors) Push(err error) {
	if err != nil {
		e.E = append(e.E, err)
	}
}

// Wrapped returns nil when no error was collected, and the list itself
// otherwise, so it can be returned directly from an error-typed function.
func (e Errors) Wrapped() error {
	if len(e.E) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	var sb strings.Builder
	l := len(e.E)
	for i, err := range e.E {
		sb.WriteString(err.Error())
		if i < l-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// Strings renders each collected error on its own, for JSON responses.
func (e Errors) Strings() []string {
	s := make([]string, 0, len(e.E))
	for _, err := range e.E {
		s = append(s, err.Error())
	}
	return s
}
