package position

import (
	"github.com/pkg/errors"
	"github.com/thlorenz/raycast/util"
	"math"
	"strings"
)

// Precision selects how many decimal digits the relative offsets of tile positions keep. The zero value is the
// production regime.
type Precision int

const (
	ProductionPrecision Precision = iota
	TestPrecision
)

const (
	productionDigits = 8
	testDigits       = 3
)

// ParsePrecision accepts "production" and "test" (case-insensitive).
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production":
		return ProductionPrecision, nil
	case "test":
		return TestPrecision, nil
	}
	return ProductionPrecision, errors.Errorf("Unknown precision '%s', expected 'production' or 'test'", s)
}

func (p Precision) Digits() int {
	if p == TestPrecision {
		return testDigits
	}
	return productionDigits
}

func (p Precision) Round(value float64) float64 {
	return util.Round(value, p.Digits())
}

// Epsilon is the smallest offset difference this precision can tell apart.
func (p Precision) Epsilon() float64 {
	return math.Pow10(-p.Digits())
}

// Equal reports whether both values are the same once rounded to this precision.
func (p Precision) Equal(a float64, b float64) bool {
	return p.Round(a) == p.Round(b)
}

func (p Precision) String() string {
	if p == TestPrecision {
		return "test"
	}
	return "production"
}

// coarser returns the precision with fewer digits. Positions of mixed precision compare and combine at that one.
func coarser(a Precision, b Precision) Precision {
	if a.Digits() <= b.Digits() {
		return a
	}
	return b
}
