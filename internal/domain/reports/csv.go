package reports

import (
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"payroll/internal/domain/payroll"
)

type Row struct {
	ID                string `csv:"id"`
	Name              string `csv:"name"`
	Type              string `csv:"type"`
	MonthlySalary     string `csv:"monthly_salary"`
	HourlyWage        string `csv:"hourly_wage"`
	HoursWorked       string `csv:"hours_worked"`
	PaymentPerProject string `csv:"payment_per_project"`
	ProjectsCompleted string `csv:"projects_completed"`
	TotalPay          string `csv:"total_pay"`
}

func Rows(employees []payroll.Employee) []Row {
	rows := make([]Row, 0, len(employees))
	for _, emp := range employees {
		row := Row{
			ID:       emp.ID(),
			Name:     emp.Name(),
			Type:     string(emp.Kind()),
			TotalPay: emp.Pay().StringFixed(2),
		}
		switch e := emp.(type) {
		case *payroll.FullTime:
			row.MonthlySalary = e.MonthlySalary.StringFixed(2)
		case *payroll.PartTime:
			row.HourlyWage = e.HourlyWage.StringFixed(2)
			row.HoursWorked = e.HoursWorked.String()
		case *payroll.Contractual:
			row.PaymentPerProject = e.PaymentPerProject.StringFixed(2)
			row.ProjectsCompleted = strconv.Itoa(e.ProjectsCompleted)
		}
		rows = append(rows, row)
	}
	return rows
}

func WriteCSV(w io.Writer, employees []payroll.Employee) error {
	rows := Rows(employees)
	return gocsv.Marshal(&rows, w)
}
