// Command gradopt reads a gradient graph in textual form, specializes
// autograd-zero information in it, and prints the resulting graph.
//
// Usage:
//
//	gradopt graph.ir
//	gradopt < graph.ir
//
// GRADOPT_DUMP=1 also prints the graph before specialization;
// GRADOPT_DEBUG=1 traces every rewrite.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xyproto/env/v2"
	"go.uber.org/zap"

	"github.com/gradir/autogradzero"
	"github.com/gradir/autogradzero/ir"
)

func main() {
	logger := zap.Must(zap.NewProduction())
	defer func() { _ = logger.Sync() }()

	var (
		src []byte
		err error
	)
	switch len(os.Args) {
	case 1:
		src, err = io.ReadAll(os.Stdin)
	case 2:
		src, err = os.ReadFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "usage: gradopt [graph file]")
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("reading graph", zap.Error(err))
	}

	g, err := ir.Parse(string(src))
	if err != nil {
		logger.Fatal("parsing graph", zap.Error(err))
	}

	if env.Bool("GRADOPT_DUMP") {
		fmt.Print("# before\n", g.String(), "# after\n")
	}
	autogradzero.Specialize(g)
	fmt.Print(g.String())
}
