package internal

import (
	"math"
	"strconv"
)

// number is an int64 until a division with a remainder makes it
// fractional; fractional numbers stay fractional.
type number struct {
	i    int64
	f    float64
	frac bool
}

func intNumber(i int64) number {
	return number{i: i}
}

func fracNumber(f float64) (number, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return number{}, errOverflow
	}
	return number{f: f, frac: true}, nil
}

func (n number) float() float64 {
	if n.frac {
		return n.f
	}
	return float64(n.i)
}

func (n number) isZero() bool {
	if n.frac {
		return n.f == 0
	}
	return n.i == 0
}

func (n number) negate() (number, error) {
	if n.frac {
		return number{f: -n.f, frac: true}, nil
	}
	if n.i == math.MinInt64 {
		return number{}, errOverflow
	}
	return intNumber(-n.i), nil
}

func (n number) String() string {
	if n.frac {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

var numberOperations = map[operator]operatorApply{
	opAdd: func(a, b number) (number, error) {
		if a.frac || b.frac {
			return fracNumber(a.float() + b.float())
		}
		r := a.i + b.i
		if (a.i^r)&(b.i^r) < 0 {
			return number{}, errOverflow
		}
		return intNumber(r), nil
	},
	opSub: func(a, b number) (number, error) {
		if a.frac || b.frac {
			return fracNumber(a.float() - b.float())
		}
		r := a.i - b.i
		if (a.i^b.i)&(a.i^r) < 0 {
			return number{}, errOverflow
		}
		return intNumber(r), nil
	},
	opMul: func(a, b number) (number, error) {
		if a.frac || b.frac {
			return fracNumber(a.float() * b.float())
		}
		if a.i == 0 || b.i == 0 {
			return intNumber(0), nil
		}
		r := a.i * b.i
		if r/b.i != a.i || (a.i == -1 && b.i == math.MinInt64) || (b.i == -1 && a.i == math.MinInt64) {
			return number{}, errOverflow
		}
		return intNumber(r), nil
	},
	opDiv: func(a, b number) (number, error) {
		if b.isZero() {
			return number{}, errDivisionByZero
		}
		if a.frac || b.frac {
			return fracNumber(a.float() / b.float())
		}
		if a.i == math.MinInt64 && b.i == -1 {
			return number{}, errOverflow
		}
		if a.i%b.i == 0 {
			return intNumber(a.i / b.i), nil
		}
		return fracNumber(float64(a.i) / float64(b.i))
	},
}

func (n number) apply(op operator, other number) (number, error) {
	return numberOperations[op](n, other)
}
