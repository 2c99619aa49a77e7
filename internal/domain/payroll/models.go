package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"payroll/internal/domain/validate"
)

// Employee is implemented only by the variants in this package.
type Employee interface {
	ID() string
	Name() string
	Kind() Kind
	Pay() decimal.Decimal
	ReportLines() []ReportLine
	sealed()
}

type ReportLine struct {
	Label string
	Value string
}

type identity struct {
	id   string
	name string
}

func newIdentity(id, name string) (identity, error) {
	if err := validate.CheckID(id); err != nil {
		return identity{}, fmt.Errorf("id: %w", err)
	}
	if name == "" {
		return identity{}, fmt.Errorf("name: %w", validate.ErrEmpty)
	}
	return identity{id: id, name: name}, nil
}

func (i identity) ID() string   { return i.id }
func (i identity) Name() string { return i.name }
func (identity) sealed()       {}

type FullTime struct {
	identity
	MonthlySalary decimal.Decimal
}

func NewFullTime(id, name string, monthlySalary decimal.Decimal) (*FullTime, error) {
	ident, err := newIdentity(id, name)
	if err != nil {
		return nil, err
	}
	if monthlySalary.IsNegative() {
		return nil, fmt.Errorf("monthly salary: %w", validate.ErrRange)
	}
	return &FullTime{identity: ident, MonthlySalary: monthlySalary}, nil
}

func (e *FullTime) Kind() Kind { return KindFullTime }

type PartTime struct {
	identity
	HourlyWage  decimal.Decimal
	HoursWorked decimal.Decimal
}

func NewPartTime(id, name string, hourlyWage, hoursWorked decimal.Decimal) (*PartTime, error) {
	ident, err := newIdentity(id, name)
	if err != nil {
		return nil, err
	}
	if !hourlyWage.IsPositive() {
		return nil, fmt.Errorf("hourly wage: %w", validate.ErrRange)
	}
	if !hoursWorked.IsPositive() {
		return nil, fmt.Errorf("hours worked: %w", validate.ErrRange)
	}
	return &PartTime{identity: ident, HourlyWage: hourlyWage, HoursWorked: hoursWorked}, nil
}

func (e *PartTime) Kind() Kind { return KindPartTime }

type Contractual struct {
	identity
	PaymentPerProject decimal.Decimal
	ProjectsCompleted int
}

func NewContractual(id, name string, paymentPerProject decimal.Decimal, projectsCompleted int) (*Contractual, error) {
	ident, err := newIdentity(id, name)
	if err != nil {
		return nil, err
	}
	if !paymentPerProject.IsPositive() {
		return nil, fmt.Errorf("payment per project: %w", validate.ErrRange)
	}
	if projectsCompleted < 0 {
		return nil, fmt.Errorf("projects completed: %w", validate.ErrRange)
	}
	return &Contractual{identity: ident, PaymentPerProject: paymentPerProject, ProjectsCompleted: projectsCompleted}, nil
}

func (e *Contractual) Kind() Kind { return KindContractual }
