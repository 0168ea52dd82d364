package irgen

import (
	"fmt"
	"io"
)

// Disassembler writes a debug-readable rendering of a Code sequence,
// one record per line, to an underlying writer.
type Disassembler struct {
	writer io.Writer
}

// NewDisassembler returns a Disassembler writing to w.
func NewDisassembler(w io.Writer) *Disassembler {
	return &Disassembler{writer: w}
}

// Disassemble writes every instruction in code, in order.
func (d *Disassembler) Disassemble(code []Code) error {
	for offset, c := range code {
		if err := d.DisassembleInstruction(offset, c); err != nil {
			return err
		}
	}
	return nil
}

// DisassembleInstruction writes a single instruction prefixed with its
// offset within the enclosing sequence.
func (d *Disassembler) DisassembleInstruction(offset int, c Code) error {
	_, err := fmt.Fprintf(d.writer, "%04d  %s\n", offset, c)
	return err
}
