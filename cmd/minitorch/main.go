// Package main provides the minitorch command line interface.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Effie-Li/minitorch/datasets"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("minitorch %s\n", version)
		return
	}

	fmt.Println("minitorch - Scalar Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Printf("Built-in datasets: %s\n", strings.Join(datasets.Names(), ", "))
	fmt.Println("Train a classifier on them with: go run ./examples/classifier")
}
