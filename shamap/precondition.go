package shamap

import (
	"fmt"

	shamaplog "github.com/xrplf/go-shamap/log"
)

// Precondition is the panic value raised by assertf. Spec §7 treats
// precondition violations as programmer bugs: fatal in debug builds,
// undefined-avoiding in release. Go has no separate "debug build"
// mode, so for the checks that go through assertf (encoding an ERROR
// or empty inner node, out-of-range branch queries, BranchCount on a
// non-inner node) this package always logs and panics. Item, SetItem
// and SetChildHash return the errors in errors.go instead. Callers
// that legitimately need to probe node state before acting (is it a
// leaf? how many branches?) should do so through the IsLeaf/IsInner/
// BranchCount queries rather than relying on recover().
type Precondition struct {
	msg string
}

func (p *Precondition) Error() string { return p.msg }

func assertf(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	shamaplog.CritNoExit("precondition violation", "msg", msg)
	panic(&Precondition{msg: msg})
}
