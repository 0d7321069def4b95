// Package fauna models a closed tagged union of animal variants.
//
// Unlike roster, where optional capabilities are probed structurally, the
// animal variants carry a true discriminator: every value knows its Kind,
// and the Kind uniquely determines which speed field is present and valid
// to read. The union is sealed - only Bird and Horse implement Animal -
// and New rejects unknown kinds at construction time, so no value with an
// out-of-domain discriminator can exist past the constructor.
package fauna

import (
	"errors"
	"fmt"
)

// Kind is the discriminator selecting an animal variant.
type Kind string

const (
	KindBird  Kind = "bird"
	KindHorse Kind = "horse"
)

// ErrUnknownKind is returned by New for a discriminator outside the
// closed set of variants.
var ErrUnknownKind = errors.New("unknown animal kind")

// Animal is the sealed union of animal variants.
// Only Bird and Horse implement it.
type Animal interface {
	Kind() Kind
	animal() // sealed
}

// Bird moves by flying.
type Bird struct {
	FlyingSpeed int64
}

// Horse moves by running.
type Horse struct {
	RunningSpeed int64
}

func (Bird) Kind() Kind  { return KindBird }
func (Horse) Kind() Kind { return KindHorse }

func (Bird) animal()  {}
func (Horse) animal() {}

// New constructs the variant selected by kind, carrying speed in the
// variant-specific field. An out-of-domain kind is a construction error,
// not a latent dispatch hazard.
func New(kind Kind, speed int64) (Animal, error) {
	switch kind {
	case KindBird:
		return Bird{FlyingSpeed: speed}, nil
	case KindHorse:
		return Horse{RunningSpeed: speed}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Move reports the animal's movement using the speed field selected by
// its discriminator. The default branch is unreachable for values built
// through New; hitting it means the sealed-union invariant was violated,
// which is a programming error and panics.
func Move(a Animal) string {
	switch v := a.(type) {
	case Bird:
		return fmt.Sprintf("Moving with speed: %d", v.FlyingSpeed)
	case Horse:
		return fmt.Sprintf("Moving with speed: %d", v.RunningSpeed)
	default:
		panic(fmt.Sprintf("fauna: impossible animal variant %T", a))
	}
}
