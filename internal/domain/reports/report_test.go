package reports

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain/payroll"
)

func sampleEmployees(t *testing.T) []payroll.Employee {
	t.Helper()
	ft, err := payroll.NewFullTime("E1", "Ann", decimal.RequireFromString("1000.00"))
	require.NoError(t, err)
	pt, err := payroll.NewPartTime("E2", "Bo", decimal.RequireFromString("10.5"), decimal.RequireFromString("8"))
	require.NoError(t, err)
	ct, err := payroll.NewContractual("E3", "Cy", decimal.RequireFromString("200"), 3)
	require.NoError(t, err)
	return []payroll.Employee{ft, pt, ct}
}

func TestRenderEmpty(t *testing.T) {
	out := Render(nil)
	assert.Equal(t, EmptyNotice+"\n", out)
	assert.NotContains(t, out, "Employee:")
}

func TestRenderFullTimeOnly(t *testing.T) {
	out := Render(sampleEmployees(t)[:1])
	assert.Contains(t, out, Header)
	assert.Contains(t, out, "Employee: Ann (ID: E1)")
	assert.Contains(t, out, "Fixed Monthly Salary: $1000.00")
	assert.NotContains(t, out, "Hourly")
}

func TestRenderAllVariantsInOrder(t *testing.T) {
	out := Render(sampleEmployees(t))

	want := strings.Join([]string{
		Header,
		"Employee: Ann (ID: E1)",
		"Fixed Monthly Salary: $1000.00",
		"",
		"Employee: Bo (ID: E2)",
		"Hourly Wage: $10.50",
		"Hours Worked: 8",
		"Total Salary: $84.00",
		"",
		"Employee: Cy (ID: E3)",
		"Contract Payment Per Project: $200.00",
		"Projects Completed: 3",
		"Total Salary: $600.00",
		"",
		"Total Payroll: $1684.00",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}
