// Package annuity implements spreadsheet-compatible annuity payment math:
// the constant periodic payment for a cash flow (PMT) and the decomposition
// of an individual payment into its interest and principal components
// (IPMT/PPMT).
//
// Sign convention follows the spreadsheet model: cash received is positive
// and cash paid is negative, so the payment on a loan with a positive
// present value comes back negative. Domain errors (an invalid timing code,
// or a period outside the schedule) are reported as NaN in the value
// channel rather than as a Go error, matching how formula engines render
// error results as ordinary cell values.
package annuity

import (
	"math"

	"github.com/finsheet/annuity-core/pkg/constants"
	"github.com/finsheet/annuity-core/pkg/mathutil"
)

// Step holds the values for one period of an amortization schedule.
type Step struct {
	Period    int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64 // balance remaining after this period's payment
}

// validTiming reports whether timing is one of the two supported payment
// timing codes.
func validTiming(timing int) bool {
	return timing == constants.TimingOrdinary || timing == constants.TimingDue
}

// Pmt calculates the constant periodic payment for a cash flow with the
// given per-period interest rate, period count, present value, future
// value, and payment timing. An unsupported timing code yields NaN.
//
// periods == 0 in the zero-rate branch divides by zero and propagates the
// IEEE result as-is; this mirrors the spreadsheet behavior and is not
// converted into an error.
func Pmt(rate float64, periods int, presentValue, futureValue float64, timing int) float64 {
	if !validTiming(timing) {
		return math.NaN()
	}

	if rate == 0 {
		// For zero interest, simply divide the balance by the term
		return -(presentValue + futureValue) / float64(periods)
	}

	compound := math.Pow(1.00+rate, float64(periods))
	annuityFactor := (compound - 1.00) / rate
	return -(futureValue + presentValue*compound) / (1 + rate*float64(timing)) / annuityFactor
}

// Ipmt calculates the interest portion of the payment for the given period,
// with period counted from 1. A period outside [1, periods] or an
// unsupported timing code yields NaN.
func Ipmt(rate float64, period, periods int, presentValue, futureValue float64, timing int) float64 {
	interest, _ := split(rate, period, periods, presentValue, futureValue, timing)
	return interest
}

// Ppmt calculates the principal portion of the payment for the given
// period, with period counted from 1. A period outside [1, periods] or an
// unsupported timing code yields NaN.
func Ppmt(rate float64, period, periods int, presentValue, futureValue float64, timing int) float64 {
	_, principal := split(rate, period, periods, presentValue, futureValue, timing)
	return principal
}

// split walks the amortization schedule from period 1 up to the requested
// period and returns the interest and principal components of that
// period's payment. The walk recomputes from the start on every call;
// the cost is bounded by the period count and keeps the function stateless.
func split(rate float64, period, periods int, presentValue, futureValue float64, timing int) (float64, float64) {
	if !validTiming(timing) || period < 1 || period > periods {
		return math.NaN(), math.NaN()
	}

	payment := Pmt(rate, periods, presentValue, futureValue, timing)

	var interest, principal float64
	balance := presentValue
	for i := 1; i <= period; i++ {
		if timing == constants.TimingDue && i == 1 {
			// The first payment of an annuity due occurs before any
			// interest accrues.
			interest = 0
		} else {
			interest = -balance * rate
		}
		principal = payment - interest
		balance += principal
	}

	return interest, principal
}

// Schedule materializes the full amortization schedule as one Step per
// period. It returns nil for an unsupported timing code or a non-positive
// period count.
func Schedule(rate float64, periods int, presentValue, futureValue float64, timing int) []Step {
	if !validTiming(timing) || periods < 1 {
		return nil
	}

	payment := Pmt(rate, periods, presentValue, futureValue, timing)

	schedule := make([]Step, 0, periods)
	balance := presentValue
	for i := 1; i <= periods; i++ {
		var interest float64
		if timing == constants.TimingDue && i == 1 {
			interest = 0
		} else {
			interest = -balance * rate
		}
		principal := payment - interest
		balance += principal
		if i == periods && futureValue == 0 && mathutil.Round(balance) == 0 {
			// We will get machine error otherwise so just set to 0.
			balance = 0.00
		}
		schedule = append(schedule, Step{
			Period:    i,
			Payment:   payment,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}

	return schedule
}
