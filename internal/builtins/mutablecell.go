package builtins

import (
	"github.com/cwbudde/frst/internal/langerr"
	"github.com/cwbudde/frst/internal/symtab"
	"github.com/cwbudde/frst/internal/value"
)

// installMutableCell registers mutable_cell(initial?): the sole
// observable-mutation built-in (spec.md §3.3, §4.I). It returns a Map
// holding two closures, "get" and "exchange", sharing one cell that must
// always hold a primitive value — ruling out reference cycles through it.
func installMutableCell(table *symtab.Table) error {
	return define(table, "mutable_cell", 0, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
		initial := value.Null()
		if len(args) == 1 {
			if !args[0].IsPrimitive() {
				return nil, langerr.User("mutable_cell requires a primitive initial value, got %s", args[0].TypeName())
			}
			initial = args[0]
		}
		cell := &mutableCell{value: initial}

		get := value.NewBuiltin("get", 0, value.MaxOf(0), func([]*value.Value) (*value.Value, error) {
			return cell.get(), nil
		})
		exchange := value.NewBuiltin("exchange", 1, value.MaxOf(1), func(args []*value.Value) (*value.Value, error) {
			if !args[0].IsPrimitive() {
				return nil, langerr.User("mutable_cell.exchange requires a primitive value, got %s", args[0].TypeName())
			}
			return cell.exchange(args[0]), nil
		})

		m := value.NewOrderedMap()
		m.Set(value.NewString("get"), value.NewFunction(get))
		m.Set(value.NewString("exchange"), value.NewFunction(exchange))
		return value.NewMap(m), nil
	})
}

// mutableCell holds the single shared primitive slot behind a
// mutable_cell's get/exchange closures. exchange is literally std::exchange
// semantics from the C++ original: return the prior value, store the new
// one, as one atomic operation on the shared cell.
type mutableCell struct {
	value *value.Value
}

func (c *mutableCell) get() *value.Value {
	var result *value.Value
	value.WithCellLock(func() { result = c.value })
	return result
}

func (c *mutableCell) exchange(next *value.Value) *value.Value {
	var prior *value.Value
	value.WithCellLock(func() {
		prior = c.value
		c.value = next
	})
	return prior
}
