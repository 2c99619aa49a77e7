package reports

import (
	"fmt"
	"strings"

	"payroll/internal/domain/payroll"
)

const (
	EmptyNotice = "No employees to display."
	Header      = "------ Employee Payroll Report ------"
)

// Render produces the plain-text payroll report in registry order.
func Render(employees []payroll.Employee) string {
	var b strings.Builder
	if len(employees) == 0 {
		b.WriteString(EmptyNotice + "\n")
		return b.String()
	}

	b.WriteString(Header + "\n")
	for _, emp := range employees {
		fmt.Fprintf(&b, "%s\n", employeeHeading(emp))
		for _, line := range emp.ReportLines() {
			fmt.Fprintf(&b, "%s: %s\n", line.Label, line.Value)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total Payroll: %s\n", payroll.FormatMoney(payroll.TotalPay(employees)))
	return b.String()
}

func employeeHeading(emp payroll.Employee) string {
	return fmt.Sprintf("Employee: %s (ID: %s)", emp.Name(), emp.ID())
}
