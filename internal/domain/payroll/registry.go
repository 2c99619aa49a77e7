package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Registry holds employees in insertion order. Ids are unique.
type Registry struct {
	employees []Employee
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) IsIDUnique(id string) bool {
	for _, emp := range r.employees {
		if emp.ID() == id {
			return false
		}
	}
	return true
}

func (r *Registry) Add(emp Employee) error {
	if !r.IsIDUnique(emp.ID()) {
		return fmt.Errorf("%s: %w", emp.ID(), ErrDuplicateID)
	}
	r.employees = append(r.employees, emp)
	return nil
}

func (r *Registry) Employees() []Employee {
	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

func (r *Registry) Len() int {
	return len(r.employees)
}

func (r *Registry) TotalPay() decimal.Decimal {
	return TotalPay(r.employees)
}
