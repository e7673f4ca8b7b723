// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/finsheet/annuity-core/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateTiming checks if the timing code is one of the two supported
// payment timing conventions.
func ValidateTiming(timing int) error {
	if timing != constants.TimingOrdinary && timing != constants.TimingDue {
		return fmt.Errorf("expected timing of %d (ordinary) or %d (due), got %d",
			constants.TimingOrdinary, constants.TimingDue, timing)
	}
	return nil
}
