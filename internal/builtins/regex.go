package builtins

import (
	"regexp"

	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installRegex registers the re.scan_matches(text, pattern) built-in (spec.md
// §8.3's named-group scenario). Go's RE2 engine natively supports
// (?P<name>...) / (?<name>...) named groups, so no third-party regex
// dependency is needed — stdlib regexp is the grounded choice here.
func installRegex(table *symtab.Table) error {
	scanMatches := value.NewBuiltin("scan_matches", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		text, err := requireString(args[0], "re.scan_matches")
		if err != nil {
			return nil, err
		}
		pattern, err := requireString(args[1], "re.scan_matches")
		if err != nil {
			return nil, err
		}
		re, compErr := regexp.Compile(pattern)
		if compErr != nil {
			return nil, langerr.User("re.scan_matches: invalid pattern: %s", compErr.Error())
		}

		names := re.SubexpNames()
		all := re.FindAllStringSubmatch(text, -1)
		matches := make([]*value.Value, len(all))
		for i, groups := range all {
			named := value.NewOrderedMap()
			for gi, n := range names {
				if n == "" {
					continue
				}
				named.Set(value.NewString(n), value.NewString(groups[gi]))
			}
			m := value.NewOrderedMap()
			m.Set(value.NewString("full"), value.NewString(groups[0]))
			m.Set(value.NewString("named"), value.NewMap(named))
			matches[i] = value.NewMap(m)
		}

		result := value.NewOrderedMap()
		result.Set(value.NewString("count"), value.NewInt(int64(len(matches))))
		result.Set(value.NewString("matches"), value.NewArray(matches))
		return value.NewMap(result), nil
	})

	re := value.NewOrderedMap()
	re.Set(value.NewString("scan_matches"), value.NewFunction(scanMatches))
	return table.Define("re", value.NewMap(re))
}
