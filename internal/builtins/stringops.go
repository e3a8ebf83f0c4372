package builtins

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installStringOps registers the string-manipulation library collaborator
// spec.md §4.I gestures at without naming concretely. Casing goes through
// golang.org/x/text/cases (the corpus's own casing library, language-aware
// rather than the byte-wise strings.ToUpper/ToLower); everything else is
// plain strings package composition, which the corpus also leans on.
func installStringOps(table *symtab.Table) error {
	titleCaser := cases.Title(language.Und)
	upperCaser := cases.Upper(language.Und)
	lowerCaser := cases.Lower(language.Und)

	one := value.MaxOf(1)
	if err := define(table, "str_upper", 1, one, func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "str_upper")
		if err != nil {
			return nil, err
		}
		return value.NewString(upperCaser.String(s)), nil
	}); err != nil {
		return err
	}
	if err := define(table, "str_lower", 1, one, func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "str_lower")
		if err != nil {
			return nil, err
		}
		return value.NewString(lowerCaser.String(s)), nil
	}); err != nil {
		return err
	}
	if err := define(table, "str_title", 1, one, func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "str_title")
		if err != nil {
			return nil, err
		}
		return value.NewString(titleCaser.String(s)), nil
	}); err != nil {
		return err
	}

	if err := define(table, "str_trim", 1, one, func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "str_trim")
		if err != nil {
			return nil, err
		}
		return value.NewString(strings.TrimSpace(s)), nil
	}); err != nil {
		return err
	}

	if err := define(table, "str_split", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "str_split")
		if err != nil {
			return nil, err
		}
		sep, err := requireString(args[1], "str_split")
		if err != nil {
			return nil, err
		}
		parts := strings.Split(s, sep)
		out := make([]*value.Value, len(parts))
		for i, p := range parts {
			out[i] = value.NewString(p)
		}
		return value.NewArray(out), nil
	}); err != nil {
		return err
	}

	if err := define(table, "str_join", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		arr, err := requireArray(args[0], "str_join")
		if err != nil {
			return nil, err
		}
		sep, err := requireString(args[1], "str_join")
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(arr))
		for i, e := range arr {
			s, err := requireString(e, "str_join")
			if err != nil {
				return nil, err
			}
			parts[i] = s
		}
		return value.NewString(strings.Join(parts, sep)), nil
	}); err != nil {
		return err
	}

	if err := define(table, "str_replace", 3, value.MaxOf(3), func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "str_replace")
		if err != nil {
			return nil, err
		}
		old, err := requireString(args[1], "str_replace")
		if err != nil {
			return nil, err
		}
		neu, err := requireString(args[2], "str_replace")
		if err != nil {
			return nil, err
		}
		return value.NewString(strings.ReplaceAll(s, old, neu)), nil
	}); err != nil {
		return err
	}

	if err := define(table, "str_contains", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "str_contains")
		if err != nil {
			return nil, err
		}
		sub, err := requireString(args[1], "str_contains")
		if err != nil {
			return nil, err
		}
		return value.NewBool(strings.Contains(s, sub)), nil
	}); err != nil {
		return err
	}

	if err := define(table, "str_starts_with", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "str_starts_with")
		if err != nil {
			return nil, err
		}
		prefix, err := requireString(args[1], "str_starts_with")
		if err != nil {
			return nil, err
		}
		return value.NewBool(strings.HasPrefix(s, prefix)), nil
	}); err != nil {
		return err
	}

	return define(table, "str_ends_with", 2, value.MaxOf(2), func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "str_ends_with")
		if err != nil {
			return nil, err
		}
		suffix, err := requireString(args[1], "str_ends_with")
		if err != nil {
			return nil, err
		}
		return value.NewBool(strings.HasSuffix(s, suffix)), nil
	})
}
