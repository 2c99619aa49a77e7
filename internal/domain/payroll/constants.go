package payroll

type Kind string

const (
	KindFullTime    Kind = "full_time"
	KindPartTime    Kind = "part_time"
	KindContractual Kind = "contractual"
)

func (k Kind) Label() string {
	switch k {
	case KindFullTime:
		return "Full-time"
	case KindPartTime:
		return "Part-time"
	case KindContractual:
		return "Contractual"
	}
	return string(k)
}

const (
	LabelMonthlySalary     = "Fixed Monthly Salary"
	LabelHourlyWage        = "Hourly Wage"
	LabelHoursWorked       = "Hours Worked"
	LabelPaymentPerProject = "Contract Payment Per Project"
	LabelProjectsCompleted = "Projects Completed"
	LabelTotalSalary       = "Total Salary"
)
