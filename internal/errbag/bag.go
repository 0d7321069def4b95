// Package errbag provides an open-keyed error container: a mapping from
// an unconstrained set of field names to textual error messages.
package errbag

import "sort"

// Bag maps field names to error messages. The key set is unconstrained -
// any number of entries, including zero, is valid. Every value is textual
// regardless of key.
type Bag map[string]string

// New creates an empty bag.
func New() Bag {
	return Bag{}
}

// Set inserts or overwrites the message for a field.
func (b Bag) Set(field, message string) {
	b[field] = message
}

// Get returns the message for a field. An absent field yields ("", false),
// never an error - lookups are total.
func (b Bag) Get(field string) (string, bool) {
	msg, ok := b[field]
	return msg, ok
}

// Len returns the number of entries.
func (b Bag) Len() int {
	return len(b)
}

// Keys returns the field names in sorted order for deterministic
// iteration.
func (b Bag) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge copies all entries from other into b, overwriting on collision.
func (b Bag) Merge(other Bag) {
	for f, msg := range other {
		b[f] = msg
	}
}
