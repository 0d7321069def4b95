// Package fleet models capability-gated dispatch over vehicle variants.
//
// Every vehicle exposes the shared Drive capability. Trucks additionally
// expose LoadCargo. Use dispatches on the runtime shape of the value - a
// structural check for the extra capability - rather than on a tag field.
package fleet

import "fmt"

// Vehicle is the shared capability every variant exposes.
type Vehicle interface {
	Drive() string
}

// CargoLoader is the extra capability only some variants expose.
type CargoLoader interface {
	LoadCargo(amount int64) string
}

// Car drives and nothing more.
type Car struct{}

// Drive implements Vehicle.
func (Car) Drive() string { return "Driving..." }

// Truck drives and can load cargo.
type Truck struct{}

// Drive implements Vehicle.
func (Truck) Drive() string { return "Driving a truck..." }

// LoadCargo implements CargoLoader.
func (Truck) LoadCargo(amount int64) string {
	return fmt.Sprintf("Loading cargo: %d", amount)
}

// Use invokes the shared capability on every vehicle, and the cargo
// capability only on vehicles that structurally expose it. Total: the
// shared capability never fails, and absence of the extra capability is
// an ordinary outcome, not an error.
func Use(v Vehicle, cargoAmount int64, emit func(string)) {
	emit(v.Drive())
	if loader, ok := v.(CargoLoader); ok {
		emit(loader.LoadCargo(cargoAmount))
	}
}
