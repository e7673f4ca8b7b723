package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	if err := ValidateOutputFormat("pretty"); err != nil {
		t.Errorf("ValidateOutputFormat(pretty) = %v, expected nil", err)
	}
	if err := ValidateOutputFormat("csv"); err != nil {
		t.Errorf("ValidateOutputFormat(csv) = %v, expected nil", err)
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(xml) = nil, expected error")
	}
}

func TestValidateTiming(t *testing.T) {
	for _, timing := range []int{0, 1} {
		if err := ValidateTiming(timing); err != nil {
			t.Errorf("ValidateTiming(%d) = %v, expected nil", timing, err)
		}
	}
	for _, timing := range []int{-1, 2, 12} {
		if err := ValidateTiming(timing); err == nil {
			t.Errorf("ValidateTiming(%d) = nil, expected error", timing)
		}
	}
}
