package brain

import (
	"fmt"
	"sort"
	"strings"
)

// Activation maps a node's accumulated sum to its final value.
type Activation func(float64) float64

// Identity keeps the raw weighted sum so negative signals stay observable.
func Identity(x float64) float64 { return x }

// Threshold collapses the sum to 1 when positive and 0 otherwise.
func Threshold(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

var activations = map[string]Activation{
	"identity":  Identity,
	"threshold": Threshold,
}

// ActivationByName resolves a configured activation name.
func ActivationByName(name string) (Activation, error) {
	fn, ok := activations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unsupported activation %q (valid: %s)", name, strings.Join(ActivationNames(), ", "))
	}
	return fn, nil
}

// ActivationNames lists the registered activation names in sorted order.
func ActivationNames() []string {
	names := make([]string, 0, len(activations))
	for name := range activations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
