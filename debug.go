package vgl

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// debugLogger receives tree-health warnings and lifecycle traces while debug
// mode is on.
var debugLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Str("component", "vgl").Logger()

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("vgl debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn().Int("depth", depth).Int("threshold", debugMaxTreeDepth).
			Str("node", n.Name).Msg("tree depth exceeds threshold")
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn().Int("children", len(n.children)).Int("threshold", debugMaxChildCount).
			Str("node", n.Name).Msg("child count exceeds threshold")
	}
}
