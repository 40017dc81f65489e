package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/summa"
	"github.com/npillmayer/summa/bignum"
)

// summand is a function available from the command line, in a fixed width
// and in an arbitrary precision variant.
type summand struct {
	label string
	fixed summa.Func[int64]
	big   bignum.Func
}

var summands = map[string]summand{
	"ints":    {"id", summa.Identity[int64], bignum.Identity},
	"squares": {"square", summa.Square[int64], bignum.Square},
	"cubes":   {"cube", summa.Cube[int64], bignum.Cube},
	"fact":    {"fact", summa.Fact[int64], bignum.Fact},
}

func summandNames() []string {
	names := make([]string, 0, len(summands))
	for name := range summands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupSummand(name string) (summand, error) {
	s, ok := summands[name]
	if !ok {
		return summand{}, fmt.Errorf("unknown function %q, want one of %s",
			name, strings.Join(summandNames(), "|"))
	}
	return s, nil
}

// parseRange parses a function name and two bounds from command arguments.
func parseRange(args []string) (summand, int64, int64, error) {
	s, err := lookupSummand(args[0])
	if err != nil {
		return s, 0, 0, err
	}
	a, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return s, 0, 0, fmt.Errorf("lower bound: %w", err)
	}
	b, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return s, 0, 0, fmt.Errorf("upper bound: %w", err)
	}
	return s, a, b, nil
}
