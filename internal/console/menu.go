package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"payroll/internal/domain/reports"
	"payroll/internal/domain/validate"
	"payroll/internal/platform/metrics"
)

const (
	OptionFullTime = iota + 1
	OptionPartTime
	OptionContractual
	OptionReport
	OptionExit
)

const (
	menuRule   = "============================="
	menuTitle  = "    PAYROLL SYSTEM MENU    "
	PromptMenu = "Enter your choice: "
)

var menuItems = []string{
	"[1] Full-time Employee",
	"[2] Part-time Employee",
	"[3] Contractual Employee",
	"[4] Display Payroll Report",
	"[5] Exit",
}

// Driver runs the menu loop on top of a Session until the operator picks
// Exit or the input ends.
type Driver struct {
	session *Session
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewDriver(session *Session) *Driver {
	return &Driver{session: session, logger: session.logger, metrics: session.metrics}
}

// Run returns nil on Exit and on end of input; other errors are I/O failures.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.printMenu()
		line, err := d.session.readLine(PromptMenu)
		if errors.Is(err, ErrInputClosed) {
			d.logger.Info("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := validate.ParseMenuChoice(line, OptionFullTime, OptionExit)
		if err != nil {
			reason := reasonFormat
			if errors.Is(err, validate.ErrRange) {
				reason = reasonRange
			}
			d.session.reject(reason, msgInvalidChoice)
			continue
		}
		if choice == OptionExit {
			fmt.Fprintln(d.session.out, msgGoodbye)
			return nil
		}

		if err := d.dispatch(choice); err != nil {
			if errors.Is(err, ErrInputClosed) {
				d.logger.Info("input closed during prompt, ending session")
				return nil
			}
			return err
		}
	}
}

func (d *Driver) dispatch(choice int) error {
	d.logger.Debug("menu choice", zap.Int("choice", choice))
	switch choice {
	case OptionFullTime:
		return d.session.AddFullTime()
	case OptionPartTime:
		return d.session.AddPartTime()
	case OptionContractual:
		return d.session.AddContractual()
	case OptionReport:
		d.displayReport()
	}
	return nil
}

func (d *Driver) displayReport() {
	employees := d.session.registry.Employees()
	d.metrics.RecordReport()
	d.logger.Debug("report rendered", zap.Int("employees", len(employees)))
	fmt.Fprint(d.session.out, reports.Render(employees))
}

func (d *Driver) printMenu() {
	out := d.session.out
	fmt.Fprintln(out)
	headerColor.Fprintln(out, menuRule)
	headerColor.Fprintln(out, menuTitle)
	headerColor.Fprintln(out, menuRule)
	fmt.Fprintln(out, strings.Join(menuItems, "\n"))
	headerColor.Fprintln(out, menuRule)
}
