package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"payroll/internal/domain/payroll"
	"payroll/internal/domain/validate"
	"payroll/internal/platform/metrics"
)

// ErrInputClosed is returned by every prompt once the input stream ends.
var ErrInputClosed = errors.New("input closed")

const (
	PromptID                = "Enter Employee ID: "
	PromptName              = "Enter Employee Name: "
	PromptMonthlySalary     = "Enter Monthly Salary: $"
	PromptHourlyWage        = "Enter Hourly Wage: $"
	PromptHoursWorked       = "Enter Number of Hours Worked: "
	PromptPaymentPerProject = "Enter Payment Per Project: $"
	PromptProjectsCompleted = "Enter Number of Projects Completed: "
)

// Session collects validated employee records from an operator and stores
// them in a registry. Every prompt loops until valid input arrives.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	registry *payroll.Registry
	logger   *zap.Logger
	metrics  *metrics.Collector
}

func NewSession(in io.Reader, out io.Writer, registry *payroll.Registry, logger *zap.Logger, collector *metrics.Collector) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		registry: registry,
		logger:   logger,
		metrics:  collector,
	}
}

func (s *Session) PromptID() (string, error) {
	for {
		id, err := s.readLine(PromptID)
		if err != nil {
			return "", err
		}
		switch {
		case id == "":
			s.reject(reasonEmpty, msgIDEmpty)
		case !validate.ValidID(id):
			s.reject(reasonFormat, msgIDFormat)
		case !s.registry.IsIDUnique(id):
			s.reject(reasonDuplicate, msgIDDuplicate)
		default:
			return id, nil
		}
	}
}

func (s *Session) PromptName() (string, error) {
	for {
		name, err := s.readLine(PromptName)
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		s.reject(reasonEmpty, msgNameEmpty)
	}
}

func (s *Session) PromptDecimal(prompt string, mustBePositive bool) (decimal.Decimal, error) {
	for {
		text, err := s.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		value, err := validate.ParseDecimal(text)
		if err != nil {
			s.reject(reasonFormat, msgDecimalFormat)
			continue
		}
		if mustBePositive && !value.IsPositive() {
			s.reject(reasonRange, msgNotPositive)
			continue
		}
		return value, nil
	}
}

func (s *Session) PromptNonNegativeInteger(prompt string) (int, error) {
	for {
		text, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := validate.ParseInteger(text)
		if err != nil {
			s.reject(reasonFormat, msgIntegerFormat)
			continue
		}
		if value < 0 {
			s.reject(reasonRange, msgNegative)
			continue
		}
		return value, nil
	}
}

func (s *Session) AddFullTime() error {
	id, name, err := s.promptIdentity()
	if err != nil {
		return err
	}
	salary, err := s.PromptDecimal(PromptMonthlySalary, true)
	if err != nil {
		return err
	}
	emp, err := payroll.NewFullTime(id, name, salary)
	if err != nil {
		return err
	}
	return s.add(emp)
}

func (s *Session) AddPartTime() error {
	id, name, err := s.promptIdentity()
	if err != nil {
		return err
	}
	wage, err := s.PromptDecimal(PromptHourlyWage, true)
	if err != nil {
		return err
	}
	hours, err := s.PromptDecimal(PromptHoursWorked, true)
	if err != nil {
		return err
	}
	emp, err := payroll.NewPartTime(id, name, wage, hours)
	if err != nil {
		return err
	}
	return s.add(emp)
}

func (s *Session) AddContractual() error {
	id, name, err := s.promptIdentity()
	if err != nil {
		return err
	}
	payment, err := s.PromptDecimal(PromptPaymentPerProject, true)
	if err != nil {
		return err
	}
	projects, err := s.PromptNonNegativeInteger(PromptProjectsCompleted)
	if err != nil {
		return err
	}
	emp, err := payroll.NewContractual(id, name, payment, projects)
	if err != nil {
		return err
	}
	return s.add(emp)
}

func (s *Session) promptIdentity() (string, string, error) {
	id, err := s.PromptID()
	if err != nil {
		return "", "", err
	}
	name, err := s.PromptName()
	if err != nil {
		return "", "", err
	}
	return id, name, nil
}

func (s *Session) add(emp payroll.Employee) error {
	if err := s.registry.Add(emp); err != nil {
		return err
	}
	s.metrics.RecordAdded(string(emp.Kind()))
	s.logger.Info("employee added",
		zap.String("employeeId", emp.ID()),
		zap.String("kind", string(emp.Kind())),
		zap.Int("registrySize", s.registry.Len()),
	)
	successColor.Fprintf(s.out, "%s employee added successfully!\n", emp.Kind().Label())
	return nil
}

func (s *Session) reject(reason, message string) {
	s.metrics.RecordRejection(reason)
	s.logger.Debug("input rejected", zap.String("reason", reason))
	errorColor.Fprintln(s.out, message)
}

// readLine strips the line terminator, including a trailing CR. A final
// unterminated line is returned; the read after it reports ErrInputClosed.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			fmt.Fprintln(s.out)
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
