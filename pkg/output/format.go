// Package output provides utilities for formatting and displaying
// amortization schedules.
package output

import (
	"fmt"

	"github.com/finsheet/annuity-core/pkg/annuity"
	"github.com/finsheet/annuity-core/pkg/datetime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// rowLabel returns the display label for a schedule row: the YYYY-MM date
// offset from startDate when one is set, otherwise the period number.
func rowLabel(startDate string, period int) (string, error) {
	if startDate == "" {
		return fmt.Sprintf("%d", period), nil
	}
	return datetime.OffsetDate(startDate, datetime.DateTimeLayout, period-1)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(schedule []annuity.Step, startDate string) error {
	p := message.NewPrinter(language.English)
	fmt.Printf("Period  | Payment       | Interest      | Principal     | Balance\n")
	fmt.Printf("______  | _____________ | _____________ | _____________ | _____________\n")
	for _, step := range schedule {
		label, err := rowLabel(startDate, step.Period)
		if err != nil {
			return err
		}
		_, _ = p.Printf("%-7s | $%.2f | $%.2f | $%.2f | $%.2f\n",
			label, step.Payment, step.Interest, step.Principal, step.Balance)
	}
	return nil
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(schedule []annuity.Step, startDate string) error {
	fmt.Printf(`"period","payment","interest","principal","balance"`)
	fmt.Printf("\n")
	for _, step := range schedule {
		label, err := rowLabel(startDate, step.Period)
		if err != nil {
			return err
		}
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.2f"`,
			label, step.Payment, step.Interest, step.Principal, step.Balance)
		fmt.Printf("\n")
	}
	return nil
}
