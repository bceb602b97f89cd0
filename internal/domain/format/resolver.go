package format

import (
	"fmt"
	"strconv"

	"github.com/mehrdad-arman/daytime-service/internal/domain/entity"
	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
)

// TransformFunc renders the matched symbol run for a given time value. The
// token is the original run (e.g. "HH" vs "H"); its length signals padding.
type TransformFunc func(token string, t entity.TimeOfDay) string

// Resolver associates a single format letter with its rendering rule
type Resolver struct {
	Symbol    byte
	Transform TransformFunc
}

// Registry is a lookup-by-symbol table of resolvers. It is immutable after
// construction and safe for unsynchronized concurrent reads.
type Registry struct {
	resolvers map[byte]Resolver
}

// NewRegistry builds a registry from the given resolvers. Registering two
// resolvers under the same symbol is a configuration error.
func NewRegistry(resolvers ...Resolver) (*Registry, error) {
	table := make(map[byte]Resolver, len(resolvers))
	for _, r := range resolvers {
		if _, exists := table[r.Symbol]; exists {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateSymbol, string(r.Symbol))
		}
		table[r.Symbol] = r
	}
	return &Registry{resolvers: table}, nil
}

// Resolve looks up the resolver registered under the given symbol
func (r *Registry) Resolve(symbol byte) (Resolver, bool) {
	resolver, ok := r.resolvers[symbol]
	return resolver, ok
}

// padded renders value per the token-length convention: a single-letter
// token is unpadded, a longer token is zero-padded to the token's length
func padded(token string, value int) string {
	if len(token) == 1 {
		return strconv.Itoa(value)
	}
	return fmt.Sprintf("%0*d", len(token), value)
}

// HourResolver renders the hour field under the 'H' symbol
func HourResolver() Resolver {
	return Resolver{
		Symbol: 'H',
		Transform: func(token string, t entity.TimeOfDay) string {
			return padded(token, t.Hour())
		},
	}
}

// MinuteResolver renders the minute field under the 'm' symbol
func MinuteResolver() Resolver {
	return Resolver{
		Symbol: 'm',
		Transform: func(token string, t entity.TimeOfDay) string {
			return padded(token, t.Minute())
		},
	}
}

// SecondResolver renders the second field under the 's' symbol
func SecondResolver() Resolver {
	return Resolver{
		Symbol: 's',
		Transform: func(token string, t entity.TimeOfDay) string {
			return padded(token, t.Second())
		},
	}
}

// defaultRegistry holds the built-in H/m/s resolvers, built once at process
// start and never mutated afterwards
var defaultRegistry = mustRegistry(HourResolver(), MinuteResolver(), SecondResolver())

func mustRegistry(resolvers ...Resolver) *Registry {
	registry, err := NewRegistry(resolvers...)
	if err != nil {
		panic(err)
	}
	return registry
}

// DefaultRegistry returns the process-wide registry with the built-in
// hour/minute/second resolvers
func DefaultRegistry() *Registry {
	return defaultRegistry
}
