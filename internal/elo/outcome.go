package elo

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidArgument = errors.New("invalid argument")

func errInvalidOutcome(code int) error {
	return fmt.Errorf("%w: outcome must be 0 (draw), 1 (A wins), or 2 (B wins), got %d", ErrInvalidArgument, code)
}

func errInvalidMethod(code int) error {
	return fmt.Errorf("%w: method must be 0, 1, or 2, got %d", ErrInvalidArgument, code)
}

// Outcome of a match between side A and side B.
type Outcome int

const (
	Draw Outcome = iota
	AWins
	BWins
)

var outcomeNames = map[Outcome]string{
	Draw:  "draw",
	AWins: "a",
	BWins: "b",
}

func ParseOutcome(code int) (Outcome, error) {
	o := Outcome(code)
	if !o.valid() {
		return 0, errInvalidOutcome(code)
	}
	return o, nil
}

func (o Outcome) valid() bool {
	_, ok := outcomeNames[o]
	return ok
}

// scores returns actual scores of A and B.
func (o Outcome) scores() (float64, float64, error) {
	switch o {
	case Draw:
		return 0.5, 0.5, nil
	case AWins:
		return 1, 0, nil
	case BWins:
		return 0, 1, nil
	}
	return 0, 0, errInvalidOutcome(int(o))
}

// Swap returns the outcome seen from the other side.
func (o Outcome) Swap() Outcome {
	switch o {
	case AWins:
		return BWins
	case BWins:
		return AWins
	}
	return o
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "Outcome(" + strconv.Itoa(int(o)) + ")"
}

func (o Outcome) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, fmt.Errorf("%w: outcome %d", ErrInvalidArgument, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText accepts a name ("draw", "a", "b") or a numeric code.
func (o *Outcome) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for k, v := range outcomeNames {
		if v == s {
			*o = k
			return nil
		}
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: unknown outcome %q", ErrInvalidArgument, s)
	}
	parsed, err := ParseOutcome(code)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// UnmarshalJSON accepts both a json string and a json number.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	return o.UnmarshalText(bytes.Trim(data, `"`))
}

// Method selects how points affect the update.
type Method int

const (
	Classic Method = iota
	Fraction
	Bonus
)

var methodNames = map[Method]string{
	Classic:  "classic",
	Fraction: "fraction",
	Bonus:    "bonus",
}

func ParseMethod(code int) (Method, error) {
	m := Method(code)
	if !m.valid() {
		return 0, errInvalidMethod(code)
	}
	return m, nil
}

func (m Method) valid() bool {
	_, ok := methodNames[m]
	return ok
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "Method(" + strconv.Itoa(int(m)) + ")"
}

func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: method %d", ErrInvalidArgument, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts a name ("classic", "fraction", "bonus") or a numeric code.
func (m *Method) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for k, v := range methodNames {
		if v == s {
			*m = k
			return nil
		}
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, s)
	}
	parsed, err := ParseMethod(code)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *Method) UnmarshalJSON(data []byte) error {
	return m.UnmarshalText(bytes.Trim(data, `"`))
}
