// Command bmssp-demo builds a random graph and reports single-source
// shortest-path distances from it, for manually sanity-checking the
// engine and for rough timing comparisons across graph sizes.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/azybler/bmssp/internal/graphgen"
	"github.com/azybler/bmssp/pkg/bmssp"
)

func main() {
	numVertices := flag.Int("vertices", 100000, "number of vertices in the generated graph")
	numEdges := flag.Int("edges", 400000, "number of random edges in the generated graph")
	source := flag.Int("source", 0, "source vertex to solve from")
	seed := flag.Int64("seed", 1, "random seed for graph generation")
	topN := flag.Int("top", 10, "number of closest reached vertices to print")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	log.Printf("generating graph: %d vertices, %d edges...", *numVertices, *numEdges)
	start := time.Now()
	g, err := graphgen.Random(rng, graphgen.Options{
		NumVertices:  *numVertices,
		NumEdges:     *numEdges,
		Weight:       graphgen.UniformWeight(1, 1000),
		EnsureLinked: true,
	})
	if err != nil {
		log.Fatalf("generate graph: %v", err)
	}
	log.Printf("generated in %s", time.Since(start).Round(time.Millisecond))

	log.Printf("solving from vertex %d...", *source)
	start = time.Now()
	res, err := bmssp.Solve(g, *source)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	elapsed := time.Since(start)
	log.Printf("solved in %s", elapsed.Round(time.Millisecond))

	reached := 0
	for _, d := range res.Distances {
		if d < 1e300 {
			reached++
		}
	}
	fmt.Fprintf(os.Stdout, "reached %d of %d vertices\n", reached, g.NumVertices)

	printClosest(res, *topN)
}

func printClosest(res *bmssp.Result, n int) {
	type pair struct {
		vertex int
		dist   float64
	}
	pairs := make([]pair, 0, len(res.Distances))
	for v, d := range res.Distances {
		if v != res.Source && d < 1e300 {
			pairs = append(pairs, pair{v, d})
		}
	}
	for i := 0; i < len(pairs); i++ {
		min := i
		for j := i + 1; j < len(pairs); j++ {
			if pairs[j].dist < pairs[min].dist {
				min = j
			}
		}
		pairs[i], pairs[min] = pairs[min], pairs[i]
		if i+1 >= n {
			break
		}
	}
	if n > len(pairs) {
		n = len(pairs)
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(os.Stdout, "  %d: dist=%.2f pred=%d\n", pairs[i].vertex, pairs[i].dist, res.Predecessors[pairs[i].vertex])
	}
}
