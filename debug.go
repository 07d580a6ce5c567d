package sway

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and face metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	stepTime     time.Duration
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	frame        uint64
	trackCount   int
	faceCount    int
	culledFaces  int
	clippedFaces int
	drawCalls    int
}

// debugLog prints timing and face stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.stepTime + stats.traverseTime + stats.sortTime + stats.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[sway] frame %d | step: %v | traverse: %v | sort: %v | submit: %v | total: %v\n",
		stats.frame, stats.stepTime, stats.traverseTime, stats.sortTime, stats.submitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sway] tracks: %d | faces: %d | culled: %d | clipped: %d | draw calls: %d\n",
		stats.trackCount, stats.faceCount, stats.culledFaces, stats.clippedFaces, stats.drawCalls)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sway debug: %s on disposed node %q (ID was %d)", op, n.Path(), n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sway] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Path())
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[sway] warning: node %q has %d children (threshold %d)\n",
			n.Path(), len(n.children), debugMaxChildCount)
	}
}
