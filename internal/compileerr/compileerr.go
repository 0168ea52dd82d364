// Package compileerr provides the error and logging plumbing shared
// across the compiler's phases. Unlike the teacher's position-aware
// error formatter, this language's error design (spec §7) carries no
// source location: a message with enough context to identify the
// offending construct is sufficient.
package compileerr

import "fmt"

// Phase wraps a plain error message with the name of the compiler
// phase that produced it ("lex", "parse", "semantic", "irgen"), the
// way the teacher's CompilerError prefixes a message with file and
// position.
type Phase struct {
	Name    string
	Message string
}

// New builds a Phase error for phase name with message formatted
// like fmt.Sprintf.
func New(name, format string, args ...any) *Phase {
	return &Phase{Name: name, Message: fmt.Sprintf(format, args...)}
}

func (e *Phase) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}
