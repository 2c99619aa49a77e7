package console

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"payroll/internal/domain/payroll"
	"payroll/internal/platform/metrics"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type harness struct {
	session  *Session
	out      *bytes.Buffer
	registry *payroll.Registry
	metrics  *metrics.Collector
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	h := &harness{
		out:      &bytes.Buffer{},
		registry: payroll.NewRegistry(),
		metrics:  metrics.New(),
	}
	h.session = NewSession(strings.NewReader(input), h.out, h.registry, zaptest.NewLogger(t), h.metrics)
	return h
}

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func seed(t *testing.T, reg *payroll.Registry, id string) {
	t.Helper()
	emp, err := payroll.NewContractual(id, "Seed", decimal.NewFromInt(1), 1)
	require.NoError(t, err)
	require.NoError(t, reg.Add(emp))
}
