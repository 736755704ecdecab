package types

import (
	"fmt"
	"strconv"
	"strings"
)

type boundKind uint8

const (
	boundNone boundKind = iota
	boundExact
	boundFromLatest
	boundLatest
)

// Bound is an optional inclusive block-height boundary.
// The zero value means unbounded on that side and is omitted when serialized,
// so "explicitly unbounded" and "field absent" are indistinguishable on the wire.
type Bound struct {
	kind  boundKind
	value uint64
}

func NoBound() Bound {
	return Bound{}
}

func Exact(height uint64) Bound {
	return Bound{kind: boundExact, value: height}
}

// FromLatest bounds the query n blocks behind the chain tip,
// rendered as a negative offset.
func FromLatest(n uint64) Bound {
	return Bound{kind: boundFromLatest, value: n}
}

func Latest() Bound {
	return Bound{kind: boundLatest}
}

func (b Bound) IsNone() bool {
	return b.kind == boundNone
}

// Param returns the outward value of the bound and whether it is present at all.
func (b Bound) Param() (any, bool) {
	switch b.kind {
	case boundExact:
		return b.value, true
	case boundFromLatest:
		return -int64(b.value), true
	case boundLatest:
		return "latest", true
	}
	return nil, false
}

func (b Bound) String() string {
	param, ok := b.Param()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", param)
}

func (b Bound) MarshalJSON() ([]byte, error) {
	switch b.kind {
	case boundExact:
		return []byte(strconv.FormatUint(b.value, 10)), nil
	case boundFromLatest:
		return []byte(strconv.FormatInt(-int64(b.value), 10)), nil
	case boundLatest:
		return []byte(`"latest"`), nil
	}
	return []byte("null"), nil
}

func (b *Bound) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null" || raw == "":
		*b = Bound{}
	case raw == `"latest"` || raw == "latest":
		*b = Latest()
	case strings.HasPrefix(raw, "-"):
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid block bound %s: %v", raw, err)
		}
		*b = FromLatest(uint64(-n))
	default:
		n, err := strconv.ParseUint(strings.Trim(raw, `"`), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid block bound %s: %v", raw, err)
		}
		*b = Exact(n)
	}
	return nil
}
