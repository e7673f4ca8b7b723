// Package sheetfn exposes the annuity calculations behind the loosely-typed
// argument surface a formula engine calls: variadic scalars in whatever Go
// type the engine resolved them to, trailing optional arguments defaulted,
// and two distinct failure channels. A scalar that cannot be coerced to a
// number produces a descriptive error; type-correct values that violate a
// domain constraint (bad timing code, period outside the schedule) produce
// NaN in the value channel with a nil error.
package sheetfn

import (
	"fmt"

	"github.com/finsheet/annuity-core/pkg/annuity"
	"github.com/finsheet/annuity-core/pkg/scalar"
)

// cashFlowArgs holds the validated trailing arguments shared by all three
// functions: present value, future value, and payment timing, in that
// order, each defaulting to zero when absent.
type cashFlowArgs struct {
	presentValue float64
	futureValue  float64
	timing       int
}

// parseCashFlowArgs validates the optional trailing arguments beginning at
// args[offset].
func parseCashFlowArgs(args []interface{}, offset int) (cashFlowArgs, error) {
	parsed := cashFlowArgs{}
	var err error

	if len(args) > offset {
		parsed.presentValue, err = scalar.Float(args[offset])
		if err != nil {
			return parsed, err
		}
	}
	if len(args) > offset+1 {
		parsed.futureValue, err = scalar.Float(args[offset+1])
		if err != nil {
			return parsed, err
		}
	}
	if len(args) > offset+2 {
		parsed.timing, err = scalar.Int(args[offset+2])
		if err != nil {
			return parsed, err
		}
	}

	return parsed, nil
}

// Pmt computes the constant periodic payment. Arguments: rate, periods,
// [presentValue, futureValue, timing].
func Pmt(args ...interface{}) (float64, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("pmt: requires at least 2 arguments (rate, periods), got %d", len(args))
	}

	rate, err := scalar.Float(args[0])
	if err != nil {
		return 0, err
	}
	periods, err := scalar.Int(args[1])
	if err != nil {
		return 0, err
	}
	flow, err := parseCashFlowArgs(args, 2)
	if err != nil {
		return 0, err
	}

	return annuity.Pmt(rate, periods, flow.presentValue, flow.futureValue, flow.timing), nil
}

// Ppmt computes the principal portion of the payment for a specific period.
// Arguments: rate, period, periods, [presentValue, futureValue, timing].
func Ppmt(args ...interface{}) (float64, error) {
	rate, period, periods, flow, err := parseSplitArgs("ppmt", args)
	if err != nil {
		return 0, err
	}
	return annuity.Ppmt(rate, period, periods, flow.presentValue, flow.futureValue, flow.timing), nil
}

// Ipmt computes the interest portion of the payment for a specific period.
// Arguments: rate, period, periods, [presentValue, futureValue, timing].
func Ipmt(args ...interface{}) (float64, error) {
	rate, period, periods, flow, err := parseSplitArgs("ipmt", args)
	if err != nil {
		return 0, err
	}
	return annuity.Ipmt(rate, period, periods, flow.presentValue, flow.futureValue, flow.timing), nil
}

func parseSplitArgs(name string, args []interface{}) (float64, int, int, cashFlowArgs, error) {
	flow := cashFlowArgs{}

	if len(args) < 3 {
		return 0, 0, 0, flow, fmt.Errorf("%s: requires at least 3 arguments (rate, period, periods), got %d", name, len(args))
	}

	rate, err := scalar.Float(args[0])
	if err != nil {
		return 0, 0, 0, flow, err
	}
	period, err := scalar.Int(args[1])
	if err != nil {
		return 0, 0, 0, flow, err
	}
	periods, err := scalar.Int(args[2])
	if err != nil {
		return 0, 0, 0, flow, err
	}
	flow, err = parseCashFlowArgs(args, 3)
	if err != nil {
		return 0, 0, 0, flow, err
	}

	return rate, period, periods, flow, nil
}
