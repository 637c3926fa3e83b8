package jung

// Table is the string-keyed associative container backing objects, scope
// frames, and the runtime registries. Iteration follows insertion order;
// deleting a key preserves the order of the remaining entries.
type Table struct {
	entries map[string]Value
	keys    []string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Value)}
}

// Set inserts or updates key.
func (t *Table) Set(key string, v Value) {
	if _, ok := t.entries[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = v
}

// Get retrieves key.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Delete removes key if present.
func (t *Table) Delete(key string) {
	if _, ok := t.entries[key]; !ok {
		return
	}
	delete(t.entries, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Keys collects all keys, in insertion order, as an array value.
func (t *Table) Keys() Value {
	items := make([]Value, 0, len(t.keys))
	for _, k := range t.keys {
		items = append(items, Str(k))
	}
	return Arr(items)
}

// Values collects all values, in key insertion order, as an array value.
func (t *Table) Values() Value {
	items := make([]Value, 0, len(t.keys))
	for _, k := range t.keys {
		items = append(items, t.entries[k])
	}
	return Arr(items)
}

// KeyList exposes the insertion-ordered key slice for iteration.
func (t *Table) KeyList() []string { return t.keys }
