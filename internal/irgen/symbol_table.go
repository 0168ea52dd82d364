package irgen

// counters holds the three monotonic sequences IR generation draws
// names from. It is shared (via pointer) across every clone of a
// SymbolTable, so a name handed out inside a nested block is never
// reused once control returns to an outer scope — unlike the
// bindings map, which is scoped.
type counters struct {
	temp int
	ifN  int
	forN int
}

// SymbolTable maps identifier names to the Address holding their
// value. Like the semantic analyser's table it is value-copyable:
// entering a block clones the bindings so inner declarations do not
// escape. The counters are deliberately NOT part of that clone-and-
// discard scoping — they are a compilation-wide resource, shared by
// every clone, so that Temp and label numerals stay globally unique
// per the naming discipline.
type SymbolTable struct {
	bindings map[string]Address
	counters *counters
}

// NewSymbolTable returns an empty table with counters starting at zero.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{bindings: make(map[string]Address), counters: &counters{}}
}

// Clone returns a table with its own copy of the bindings map but the
// same shared counters.
func (t *SymbolTable) Clone() *SymbolTable {
	clone := make(map[string]Address, len(t.bindings))
	for name, addr := range t.bindings {
		clone[name] = addr
	}
	return &SymbolTable{bindings: clone, counters: t.counters}
}

// Bind records the Address holding name's value.
func (t *SymbolTable) Bind(name string, addr Address) {
	t.bindings[name] = addr
}

// Lookup returns the Address bound to name, if any.
func (t *SymbolTable) Lookup(name string) (Address, bool) {
	addr, ok := t.bindings[name]
	return addr, ok
}

// NewTemp allocates and returns the next Temp address.
func (t *SymbolTable) NewTemp() Address {
	t.counters.temp++
	return TempAddress(t.counters.temp)
}

// NewIfLabel returns the next numeral for an if-statement's label.
func (t *SymbolTable) NewIfLabel() int {
	t.counters.ifN++
	return t.counters.ifN
}

// NewForLabels returns the next numeral shared by a for-loop's
// before/after label pair.
func (t *SymbolTable) NewForLabels() int {
	t.counters.forN++
	return t.counters.forN
}
