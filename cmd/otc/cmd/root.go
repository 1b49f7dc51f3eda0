package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otc",
	Short: "OpenTraceCap - parametric MOM capacitor compiler",
	Long: `OpenTraceCap (otc) compiles high-level capacitor parameters into
validated, grid-quantized layout scripts:
  - technology profiles (built-in nodes and .tech files)
  - three capacitor topologies (interdigit, alternating, sandwich)
  - DRC-style validation reporting every violation at once
  - array assembly with mosaic region merging

Examples:
  otc tech list                       # List known technology profiles
  otc tech info ot130                 # Show one profile's rules
  otc gen job.yaml -o momcap.cs       # Compile a job to a layout script
  otc view job.yaml                   # Open the interactive preview`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
