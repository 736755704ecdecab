package requests

import (
	"net/url"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/drpcorg/chainquery/pkg/chains"
	"github.com/drpcorg/chainquery/types"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Request is implemented by every query parameter shape.
type Request interface {
	Params() Params
}

// Params is the flat outward form of a request, shared by both transports:
// the HTTP provider flattens it into query parameters,
// the streaming provider embeds it into the operation frame.
type Params map[string]any

// Values flattens the params into URL query parameters.
func (p Params) Values() url.Values {
	values := url.Values{}
	for key, value := range p {
		values.Set(key, cast.ToString(value))
	}
	return values
}

func (p Params) setChains(set mapset.Set[chains.ChainId], defaults func() mapset.Set[chains.ChainId]) {
	if set == nil {
		set = defaults()
	}
	if set.IsEmpty() {
		return
	}
	p["chains"] = JoinFilter(set)
}

func (p Params) setBound(key string, bound types.Bound) {
	if value, present := bound.Param(); present {
		p[key] = value
	}
}

func (p Params) setFilter(key string, set mapset.Set[string]) {
	if set == nil || set.IsEmpty() {
		return
	}
	p[key] = JoinFilter(set)
}

// JoinFilter renders a filter set as a deterministic comma-joined token list.
func JoinFilter[T ~string](set mapset.Set[T]) string {
	tokens := lo.Map(set.ToSlice(), func(item T, _ int) string {
		return string(item)
	})
	sort.Strings(tokens)
	return strings.Join(tokens, ",")
}

// SplitFilter parses a comma-joined token list back into a set,
// dropping empty tokens.
func SplitFilter(token string) mapset.Set[string] {
	set := mapset.NewSet[string]()
	for _, part := range strings.Split(token, ",") {
		if part != "" {
			set.Add(part)
		}
	}
	return set
}

// ParseChains parses a comma-joined chain list.
func ParseChains(token string) mapset.Set[chains.ChainId] {
	set := mapset.NewSet[chains.ChainId]()
	for _, part := range strings.Split(token, ",") {
		if part != "" {
			set.Add(chains.ChainId(part))
		}
	}
	return set
}
