// Command demo builds a binary search tree from the integers given
// on the command line, prints its shape, then walks it forward and
// backward.
//
// Usage:
//
//	go run ./tree/cmd/demo 100 50 200 25 75
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.lepak.sg/intrusive/must"
	"go.lepak.sg/intrusive/tree"
)

var (
	num  = flag.Int("n", 10, "with no args, number of random nodes to insert")
	seed = flag.Int64("s", 0, "random seed (default current unix time in ns)")
)

var (
	dupes = color.New(color.FgYellow)
	left  = color.New(color.FgGreen)
	right = color.New(color.FgCyan)
)

func main() {
	flag.Parse()

	values := readValues()

	tr := &tree.Tree[int]{}
	nodes := make([]tree.Node[int], len(values))

	for i, v := range values {
		nodes[i].Data = v
		if err := tr.Insert(&nodes[i]); err != nil {
			dupes.Fprintf(os.Stderr, "skipping %d: %v\n", v, err)
		}
	}

	fmt.Println("tree:")
	fmt.Print(colorize(tr.String()))

	forward := make([]int, 0, tr.Len())
	for it := tr.Begin(); it != tr.End(); it.Next() {
		forward = append(forward, it.Data())
	}
	fmt.Println("ascending: ", forward)

	reverse := make([]int, 0, tr.Len())
	for it := tr.End(); ; {
		it.Prev()
		if it == tr.End() {
			break
		}
		reverse = append(reverse, it.Data())
	}
	fmt.Println("descending:", reverse)
}

func readValues() []int {
	if args := flag.Args(); len(args) > 0 {
		values := make([]int, len(args))
		for i, arg := range args {
			values[i] = must.Must2(strconv.Atoi(arg))
		}
		return values
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	values := make([]int, *num)
	for i := range values {
		values[i] = rng.Intn(*num * 10)
	}
	return values
}

// colorize repaints the L and R branch labels of tree.String output.
// The surrounding box-drawing dashes keep it from touching the data.
func colorize(s string) string {
	s = strings.ReplaceAll(s, "─L─", "─"+left.Sprint("L")+"─")
	s = strings.ReplaceAll(s, "─R─", "─"+right.Sprint("R")+"─")
	return s
}
