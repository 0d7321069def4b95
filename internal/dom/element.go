package dom

import (
	"context"
	"fmt"
)

// TagInput is the tag carried by input-shaped elements.
const TagInput = "input"

// Element is a handle into the element store.
type Element struct {
	ID    string
	Tag   string
	Value string
}

// InputElement is the richer input shape: an element whose value field is
// writable through the store. Obtained only via MustInput or WithInput.
type InputElement struct {
	st *Store
	el *Element
}

// ID returns the element identifier.
func (i *InputElement) ID() string { return i.el.ID }

// Value returns the current value field.
func (i *InputElement) Value() string { return i.el.Value }

// SetValue performs exactly one field write with the given value.
func (i *InputElement) SetValue(ctx context.Context, value string) error {
	if err := i.st.setValue(ctx, i.el.ID, value); err != nil {
		return err
	}
	i.el.Value = value
	return nil
}

// MustInput asserts that the element with the given id is present AND has
// the input shape, and returns the writable handle.
//
// This is the unchecked-assertion primitive: the caller vouches for
// presence and shape. A wrong assertion - absent element, or present but
// not input-shaped - panics immediately. By contract this path is never
// guarded; callers who cannot vouch must use WithInput instead.
//
// A store error (as opposed to absence) is returned, not panicked: it
// says nothing about the caller's assertion.
func (s *Store) MustInput(ctx context.Context, id string) (*InputElement, error) {
	el, err := s.ElementByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if el == nil {
		panic(fmt.Sprintf("dom: asserted element %q is absent", id))
	}
	if el.Tag != TagInput {
		panic(fmt.Sprintf("dom: asserted element %q has tag %q, not %q", id, el.Tag, TagInput))
	}
	return &InputElement{st: s, el: el}, nil
}

// WithInput runs fn with the writable input handle only when the element
// is present and input-shaped. Absence - and a present element of another
// shape - is a no-op success: this path cannot fail on absence, since
// absence is excluded before the shape assertion.
func (s *Store) WithInput(ctx context.Context, id string, fn func(*InputElement) error) error {
	el, err := s.ElementByID(ctx, id)
	if err != nil {
		return err
	}
	if el == nil || el.Tag != TagInput {
		return nil
	}
	return fn(&InputElement{st: s, el: el})
}
