// Package form implements the per-form validation rules of the demo
// backend.
//
// Every form kind owns an ordered list of field rules. Rules are
// evaluated in order and the first one that fails decides the outcome;
// later fields are never looked at. The package holds no mutable state
// and every function is safe for concurrent use.
package form

import "fmt"

// FormKind selects one of the supported forms.
type FormKind int

const (
	Buttons FormKind = iota
	Customer
	Product
	Employee
)

// Kinds lists every form kind in registration order.
var Kinds = []FormKind{Buttons, Customer, Product, Employee}

// String returns the lower-case name used in routes, logs and metrics.
func (k FormKind) String() string {
	switch k {
	case Buttons:
		return "buttons"
	case Customer:
		return "customer"
	case Product:
		return "product"
	case Employee:
		return "employee"
	}
	return fmt.Sprintf("FormKind(%d)", int(k))
}

// ParseKind is the inverse of FormKind.String.
func ParseKind(name string) (FormKind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown form kind %q", name)
}

// NewRequest returns an empty request value for kind, ready to be
// decoded into.
func NewRequest(kind FormKind) (Request, error) {
	switch kind {
	case Buttons:
		return &ButtonsRequest{}, nil
	case Customer:
		return &CustomerRequest{}, nil
	case Product:
		return &ProductRequest{}, nil
	case Employee:
		return &EmployeeRequest{}, nil
	}
	return nil, fmt.Errorf("unknown form kind %d", int(kind))
}
