package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain/payroll"
)

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleEmployees(t), time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	buf.Reset()
	require.NoError(t, WritePDF(&buf, nil, time.Now()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFEncodesNamesForCoreFont(t *testing.T) {
	emp, err := payroll.NewFullTime("E7", "José", decimal.NewFromInt(1200))
	require.NoError(t, err)

	pdf := buildPDF([]payroll.Employee{emp}, time.Now())
	pdf.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	assert.Contains(t, buf.String(), "Employee: Jos\xe9")
	assert.NotContains(t, buf.String(), "Jos\xc3\xa9")
}
