package payroll

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func (e *FullTime) Pay() decimal.Decimal {
	return e.MonthlySalary
}

func (e *PartTime) Pay() decimal.Decimal {
	return e.HourlyWage.Mul(e.HoursWorked)
}

func (e *Contractual) Pay() decimal.Decimal {
	return e.PaymentPerProject.Mul(decimal.NewFromInt(int64(e.ProjectsCompleted)))
}

// TotalPay sums Pay over employees without rounding.
func TotalPay(employees []Employee) decimal.Decimal {
	total := decimal.Zero
	for _, emp := range employees {
		total = total.Add(emp.Pay())
	}
	return total
}

// FormatMoney renders an amount as dollars with exactly two decimals.
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func (e *FullTime) ReportLines() []ReportLine {
	return []ReportLine{
		{Label: LabelMonthlySalary, Value: FormatMoney(e.MonthlySalary)},
	}
}

func (e *PartTime) ReportLines() []ReportLine {
	return []ReportLine{
		{Label: LabelHourlyWage, Value: FormatMoney(e.HourlyWage)},
		{Label: LabelHoursWorked, Value: e.HoursWorked.String()},
		{Label: LabelTotalSalary, Value: FormatMoney(e.Pay())},
	}
}

func (e *Contractual) ReportLines() []ReportLine {
	return []ReportLine{
		{Label: LabelPaymentPerProject, Value: FormatMoney(e.PaymentPerProject)},
		{Label: LabelProjectsCompleted, Value: strconv.Itoa(e.ProjectsCompleted)},
		{Label: LabelTotalSalary, Value: FormatMoney(e.Pay())},
	}
}
