package builtins

import (
	"encoding/base64"

	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installBase64 registers b64_encode/b64_decode (standard alphabet, RFC 4648
// §4) and b64_urlencode/b64_urldecode (URL-safe alphabet, RFC 4648 §5), all
// padded, matching spec.md §8.3's encode/decode scenarios. encoding/base64 is
// a stdlib-only concern: RFC 4648 base64 is a solved problem with no pack
// dependency improving on it (see SPEC_FULL.md's DOMAIN STACK note).
func installBase64(table *symtab.Table) error {
	one := value.MaxOf(1)

	if err := define(table, "b64_encode", 1, one, func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "b64_encode")
		if err != nil {
			return nil, err
		}
		return value.NewString(base64.StdEncoding.EncodeToString([]byte(s))), nil
	}); err != nil {
		return err
	}

	if err := define(table, "b64_decode", 1, one, func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "b64_decode")
		if err != nil {
			return nil, err
		}
		raw, decErr := base64.StdEncoding.DecodeString(s)
		if decErr != nil {
			return nil, langerr.User("b64_decode: invalid base64: %s", decErr.Error())
		}
		return value.NewString(string(raw)), nil
	}); err != nil {
		return err
	}

	if err := define(table, "b64_urlencode", 1, one, func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "b64_urlencode")
		if err != nil {
			return nil, err
		}
		return value.NewString(base64.URLEncoding.EncodeToString([]byte(s))), nil
	}); err != nil {
		return err
	}

	return define(table, "b64_urldecode", 1, one, func(args []*value.Value) (*value.Value, error) {
		s, err := requireString(args[0], "b64_urldecode")
		if err != nil {
			return nil, err
		}
		raw, decErr := base64.URLEncoding.DecodeString(s)
		if decErr != nil {
			return nil, langerr.User("b64_urldecode: invalid base64url: %s", decErr.Error())
		}
		return value.NewString(string(raw)), nil
	})
}
