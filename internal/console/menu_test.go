package console

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain/reports"
)

func TestDriverRejectsOutOfRangeChoices(t *testing.T) {
	h := newHarness(t, lines("6", "0", " 1", "abc", "5"))

	require.NoError(t, NewDriver(h.session).Run(context.Background()))

	out := h.out.String()
	assert.Equal(t, 4, strings.Count(out, msgInvalidChoice))
	assert.Equal(t, 5, strings.Count(out, "[5] Exit"))
	assert.True(t, strings.HasSuffix(out, msgGoodbye+"\n"))

	snap := h.metrics.Snapshot()
	assert.Equal(t, 2.0, snap["payroll_input_rejections_total{reason=range}"])
	assert.Equal(t, 2.0, snap["payroll_input_rejections_total{reason=format}"])
}

func TestDriverExitStopsReading(t *testing.T) {
	h := newHarness(t, lines("5", "1", "E1", "Ann", "100"))

	require.NoError(t, NewDriver(h.session).Run(context.Background()))
	assert.Equal(t, 0, h.registry.Len())
	assert.Equal(t, 1, strings.Count(h.out.String(), PromptMenu))
}

func TestDriverSignedOrPaddedExitChoiceExits(t *testing.T) {
	for _, choice := range []string{"+5", "05"} {
		t.Run(choice, func(t *testing.T) {
			h := newHarness(t, lines(choice, "1", "E1", "Ann", "100"))

			require.NoError(t, NewDriver(h.session).Run(context.Background()))
			out := h.out.String()
			assert.True(t, strings.HasSuffix(out, msgGoodbye+"\n"))
			assert.NotContains(t, out, msgInvalidChoice)
			assert.Equal(t, 1, strings.Count(out, PromptMenu))
			assert.Equal(t, 0, h.registry.Len())
		})
	}
}

func TestDriverEmptyReport(t *testing.T) {
	h := newHarness(t, lines("4", "5"))

	require.NoError(t, NewDriver(h.session).Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, reports.EmptyNotice)
	assert.NotContains(t, out, "Employee:")
	assert.Equal(t, 1.0, h.metrics.Snapshot()["payroll_reports_rendered_total"])
}

func TestDriverFullSession(t *testing.T) {
	h := newHarness(t, lines(
		"1", "E1", "Ann", "1000.00",
		"2", "E2", "Bo", "10.5", "8",
		"3", "E1", "E3", "Cy", "200", "3",
		"4",
		"5",
	))

	require.NoError(t, NewDriver(h.session).Run(context.Background()))
	require.Equal(t, 3, h.registry.Len())

	out := h.out.String()
	report := out[strings.Index(out, reports.Header):]
	assert.Contains(t, report, "Employee: Ann (ID: E1)")
	assert.Contains(t, report, "Fixed Monthly Salary: $1000.00")
	assert.Contains(t, report, "Total Salary: $84.00")
	assert.Contains(t, report, "Total Salary: $600.00")
	assert.Contains(t, report, "Total Payroll: $1684.00")
	assert.Contains(t, out, msgIDDuplicate)
	assert.Less(t, strings.Index(report, "Ann"), strings.Index(report, "Bo"))
	assert.Less(t, strings.Index(report, "Bo"), strings.Index(report, "Cy"))
}

func TestDriverFullTimeReportHasNoHourlyLines(t *testing.T) {
	h := newHarness(t, lines("1", "E1", "Ann", "1000.00", "4", "5"))

	require.NoError(t, NewDriver(h.session).Run(context.Background()))
	report := h.out.String()[strings.Index(h.out.String(), reports.Header):]
	assert.Contains(t, report, "Ann")
	assert.Contains(t, report, "1000")
	assert.NotContains(t, report, "Hourly")
}

func TestDriverEndsOnClosedInput(t *testing.T) {
	h := newHarness(t, lines("1", "E1"))

	require.NoError(t, NewDriver(h.session).Run(context.Background()))
	assert.Equal(t, 0, h.registry.Len())
	assert.NotContains(t, h.out.String(), msgGoodbye)
}

func TestDriverHonoursCancelledContext(t *testing.T) {
	h := newHarness(t, lines("5"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewDriver(h.session).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
