package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/portraitquest/levels"
	"github.com/milk9111/portraitquest/placeholders"
)

func main() {
	dir := flag.String("out", "assets", "directory to write the placeholder PNGs into")
	flag.Parse()

	fmt.Println("Pixel-Portrait Quest placeholder art")

	scenes, err := levels.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := placeholders.GenerateAll(*dir, scenes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote placeholders to %s. Replace them with real art and rebuild.\n", *dir)
}
