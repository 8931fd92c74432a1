package treent

import (
	"fmt"
	"io"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugOut is where debug warnings go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugIgnored reports a tree request that was dropped instead of applied.
func debugIgnored(n *Node, op, reason string) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[treent] warning: %s on node %q (ID %d) ignored: %s\n",
		op, n.Name, n.ID, reason)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[treent] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[treent] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// debugLogDispatch reports an input signal that no node captured.
func debugLogDispatch(kind string, captured bool) {
	if !globalDebug || captured {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[treent] %s not captured\n", kind)
}
