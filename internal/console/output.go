package console

import "github.com/fatih/color"

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

// Rejection reasons reported to metrics.
const (
	reasonEmpty     = "empty"
	reasonFormat    = "format"
	reasonDuplicate = "duplicate"
	reasonRange     = "range"
)

const (
	msgIDEmpty       = "ID cannot be empty. Please try again."
	msgIDFormat      = "Invalid ID format! ID must contain only alphanumeric characters: ID must contain only letters and numbers with no spaces or special characters."
	msgIDDuplicate   = "Duplicate ID! Please enter a unique ID."
	msgNameEmpty     = "Name cannot be empty. Please try again."
	msgDecimalFormat = "Invalid format. Please enter a valid number."
	msgNotPositive   = "Value must be greater than zero. Please try again."
	msgIntegerFormat = "Invalid input. Please enter a valid number."
	msgNegative      = "Value cannot be negative. Please try again."
	msgInvalidChoice = "Invalid choice. Please enter a number between 1 and 5."
	msgGoodbye       = "Exiting program. Goodbye!"
)
