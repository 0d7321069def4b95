// Package roster models employee records built by structural composition.
//
// Two base shapes exist: an Admin (name + privileges) and a Contractor
// (name + start date). ElevatedEmployee is the combined shape satisfying
// both simultaneously - every field constraint of both sources holds on
// the combined record at once.
//
// Describe works on any value exposing a name and inspects the value's
// capabilities structurally: the privileges line is printed iff the value
// exposes a privilege list, and the start-date line iff it exposes a
// start date. There is no discriminator field to compare against - the
// two optional capabilities are independent, so presence is a per-field
// structural question, not a tag dispatch.
package roster

import (
	"fmt"
	"strings"
	"time"
)

// Admin is an employee with elevated privileges.
type Admin struct {
	Name       string
	Privileges []string
}

// Contractor is an employee with a contract start date.
type Contractor struct {
	Name      string
	StartDate time.Time
}

// ElevatedEmployee combines Admin and Contractor: it carries the union of
// both field sets and is usable wherever either shape is expected.
type ElevatedEmployee struct {
	Name       string
	Privileges []string
	StartDate  time.Time
}

// AsAdmin projects the combined record onto the Admin shape.
// Always succeeds - the combined record satisfies every Admin constraint.
func (e ElevatedEmployee) AsAdmin() Admin {
	return Admin{Name: e.Name, Privileges: e.Privileges}
}

// AsContractor projects the combined record onto the Contractor shape.
func (e ElevatedEmployee) AsContractor() Contractor {
	return Contractor{Name: e.Name, StartDate: e.StartDate}
}

// Named is the minimum shape Describe accepts: anything with a name.
type Named interface {
	EmployeeName() string
}

// Privileged is the optional privilege-list capability.
type Privileged interface {
	PrivilegeList() []string
}

// Dated is the optional start-date capability.
type Dated interface {
	Start() time.Time
}

func (a Admin) EmployeeName() string    { return a.Name }
func (a Admin) PrivilegeList() []string { return a.Privileges }

func (c Contractor) EmployeeName() string { return c.Name }
func (c Contractor) Start() time.Time     { return c.StartDate }

func (e ElevatedEmployee) EmployeeName() string    { return e.Name }
func (e ElevatedEmployee) PrivilegeList() []string { return e.Privileges }
func (e ElevatedEmployee) Start() time.Time        { return e.StartDate }

// Describe emits one line per piece of information the value actually
// carries. The name line is unconditional. The privileges and start-date
// lines are each emitted iff the value structurally exposes that
// capability, independent of each other.
//
// Describe is total: presence inspection never fails.
func Describe(e Named, emit func(string)) {
	emit(fmt.Sprintf("Name: %s", e.EmployeeName()))
	if p, ok := e.(Privileged); ok {
		emit(fmt.Sprintf("Privileges: %s", strings.Join(p.PrivilegeList(), ", ")))
	}
	if d, ok := e.(Dated); ok {
		emit(fmt.Sprintf("Start date: %s", d.Start().Format("2006-01-02")))
	}
}
