package semantic

import "github.com/tacscript/tac/internal/ast"

// Symbol carries the declared type of a variable.
type Symbol struct {
	Type ast.TypeKind
}

// SymbolTable maps identifier names to symbols. Unlike the
// interpreter-style outer-chained scope, this table is
// value-copyable: entering a block clones the whole map so that
// declarations made inside do not escape once the block ends, per
// the language's "symbol tables are value-copyable" design note.
type SymbolTable struct {
	symbols map[string]Symbol
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol)}
}

// Clone returns a deep-enough copy of the table: a fresh map with the
// same entries, so that writes through the clone never affect t.
func (t *SymbolTable) Clone() *SymbolTable {
	clone := make(map[string]Symbol, len(t.symbols))
	for name, sym := range t.symbols {
		clone[name] = sym
	}
	return &SymbolTable{symbols: clone}
}

// Define records name's type in the table, replacing any existing
// entry with the same name.
func (t *SymbolTable) Define(name string, typ ast.TypeKind) {
	t.symbols[name] = Symbol{Type: typ}
}

// Lookup returns the symbol bound to name, if any.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}
