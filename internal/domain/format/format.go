package format

import (
	"strings"
	"unicode"

	"github.com/mehrdad-arman/daytime-service/internal/domain/entity"
	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
)

// Render substitutes the symbol runs of pattern with the registry's
// renderings of t. A token is a maximal run of one repeated letter; its
// first character selects the resolver and the whole run is handed to the
// transform so the run length can drive zero-padding. Non-letter characters
// (separators like ':' or '.') pass through verbatim. A letter run with no
// registered resolver is a configuration error, never a silent pass-through.
func Render(registry *Registry, pattern string, t entity.TimeOfDay) (string, error) {
	var out strings.Builder
	out.Grow(len(pattern))

	for i := 0; i < len(pattern); {
		c := pattern[i]
		if !isSymbolCandidate(c) {
			out.WriteByte(c)
			i++
			continue
		}

		// Collect the maximal run of this letter; runs are homogeneous by
		// construction, so dispatch on the first character is exact.
		j := i + 1
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		token := pattern[i:j]

		resolver, ok := registry.Resolve(c)
		if !ok {
			return "", errs.NewUnknownSymbolError(c, pattern)
		}

		out.WriteString(resolver.Transform(token, t))
		i = j
	}

	return out.String(), nil
}

// isSymbolCandidate reports whether c can start a format token. Only ASCII
// letters are symbol material; everything else is literal text.
func isSymbolCandidate(c byte) bool {
	return c < unicode.MaxASCII && unicode.IsLetter(rune(c))
}
