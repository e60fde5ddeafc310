package common

import "fmt"

// RequirePositive returns an error naming field when v <= 0
func RequirePositive(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", field, v)
	}
	return nil
}

// RequireNonNegative returns an error naming field when v < 0
func RequireNonNegative(field string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %d", field, v)
	}
	return nil
}

// RequireAtLeast returns an error naming field when v < minimum
func RequireAtLeast(field string, v, minimum int) error {
	if v < minimum {
		return fmt.Errorf("%s must be at least %d, got %d", field, minimum, v)
	}
	return nil
}

// RequireProbability returns an error naming field when p is outside [0, 1]
func RequireProbability(field string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be between 0 and 1, got %g", field, p)
	}
	return nil
}
