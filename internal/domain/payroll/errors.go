package payroll

import "errors"

var ErrDuplicateID = errors.New("employee id already exists")
