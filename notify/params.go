package notify

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
)

const boolEvalTimeout = 250 * time.Millisecond

// paramReader parses raw parameter strings and collects every error.
type paramReader struct {
	params map[string]string
	errs   []error
}

func newParamReader(params map[string]string) *paramReader {
	return &paramReader{params: params}
}

func (p *paramReader) raw(name string) string {
	if v, ok := p.params[name]; ok {
		return strings.TrimSpace(v)
	}
	return DefaultParams[name]
}

func (p *paramReader) fail(name, value, reason string) {
	p.errs = append(p.errs, &ConfigError{Param: name, Value: value, Reason: reason})
}

func (p *paramReader) str(name string) string {
	return p.raw(name)
}

func (p *paramReader) number(name string) float64 {
	value := p.raw(name)
	f, err := parseNumber(value)
	if err != nil {
		p.fail(name, value, err.Error())
		return math.NaN()
	}
	return f
}

func (p *paramReader) integer(name string) int {
	value := p.raw(name)
	f, err := parseNumber(value)
	if err != nil {
		p.fail(name, value, err.Error())
		return 0
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		p.fail(name, value, "not a whole frame count")
		return 0
	}
	return int(f)
}

func (p *paramReader) boolean(name string) bool {
	value := p.raw(name)
	b, err := parseBool(value)
	if err != nil {
		p.fail(name, value, err.Error())
		return false
	}
	return b
}

type parseError string

func (e parseError) Error() string { return string(e) }

const (
	errEmpty       = parseError("empty value")
	errNotNumber   = parseError("not a number")
	errNotFinite   = parseError("not a finite number")
	errNotBoolean  = parseError("expression does not evaluate to a boolean")
	errBadBoolExpr = parseError("invalid boolean expression")
)

func parseNumber(value string) (float64, error) {
	if value == "" {
		return math.NaN(), errEmpty
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return math.NaN(), errNotNumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return math.NaN(), errNotFinite
	}
	return f, nil
}

// parseBool evaluates value as a script expression, so "true", "false" and
// comparisons such as "1 < 2" are all accepted.
func parseBool(value string) (bool, error) {
	switch value {
	case "":
		return false, errEmpty
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), boolEvalTimeout)
	defer cancel()

	res, err := tengo.Eval(ctx, value, nil)
	if err != nil {
		return false, errBadBoolExpr
	}
	b, ok := res.(bool)
	if !ok {
		return false, errNotBoolean
	}
	return b, nil
}
