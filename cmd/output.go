package cmd

import (
	"fmt"
	"strings"

	"github.com/FluidXR/adbatch/internal/batch"

	"github.com/dustin/go-humanize"
)

func printResults(results []batch.Result) {
	for _, r := range results {
		if r.Size > 0 {
			fmt.Printf("Device %s: ok (%s)\n", r.Serial, humanize.Bytes(r.Size))
		} else {
			fmt.Printf("Device %s: ok\n", r.Serial)
		}
		if r.Output == "" {
			continue
		}
		for _, line := range strings.Split(r.Output, "\n") {
			fmt.Printf("  %s\n", line)
		}
	}
}
