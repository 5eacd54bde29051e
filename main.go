// Package main provides the entry point for n64sim.
// n64sim is an instruction-level N64 CPU and memory-bus simulator.
//
// For the full CLI, use: go run ./cmd/n64sim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("n64sim - N64 CPU/Bus Simulator")
	fmt.Println("")
	fmt.Println("Usage: n64sim [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -rom       Path to a ROM image")
	fmt.Println("  -frames    Number of frames to run")
	fmt.Println("  -config    Path to a system configuration JSON file")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/n64sim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/n64sim' instead.")
	}
}
