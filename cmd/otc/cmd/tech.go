package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech/techfile"
)

var techCmd = &cobra.Command{
	Use:   "tech",
	Short: "Technology profile operations",
	Long:  `Commands for listing and inspecting technology profiles (built-in nodes and .tech files)`,
}

var techListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known technology profiles",
	Long:  `Lists the built-in profiles plus every .tech file found on the search path ($OTC_TECH_PATH and the working directory)`,
	Args:  cobra.NoArgs,
	RunE:  runTechList,
}

var techInfoCmd = &cobra.Command{
	Use:   "info <name|file.tech>",
	Short: "Show a technology profile's rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runTechInfo,
}

func init() {
	rootCmd.AddCommand(techCmd)
	techCmd.AddCommand(techListCmd)
	techCmd.AddCommand(techInfoCmd)
}

func runTechList(cmd *cobra.Command, args []string) error {
	resolver := techfile.NewResolver()
	names := resolver.List()

	fmt.Printf("%d technology profiles available\n\n", len(names))
	fmt.Printf("%-12s %-8s %s\n", "Name", "Style", "Layers")
	fmt.Println("──────────────────────────────────────────────────")
	for _, name := range names {
		p, err := resolver.Resolve(name)
		if err != nil {
			fmt.Printf("%-12s (unresolvable: %v)\n", name, err)
			continue
		}
		fmt.Printf("%-12s %-8s %s\n", p.Name, string(p.NamingStyle), strings.Join(p.AllowedLayers, ", "))
	}
	return nil
}

func runTechInfo(cmd *cobra.Command, args []string) error {
	resolver := techfile.NewResolver()
	p, err := resolver.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("error resolving technology: %w", err)
	}
	if err := p.IsWellFormed(); err != nil {
		return fmt.Errorf("profile is not well-formed: %w", err)
	}

	fmt.Printf("Technology: %s\n\n", p.Name)
	fmt.Printf("  %-22s %g µm\n", "min spacing", p.MinSpacing)
	fmt.Printf("  %-22s %g µm\n", "min width", p.MinWidth)
	if p.MinArea > 0 {
		fmt.Printf("  %-22s %g µm²\n", "min area", p.MinArea)
	} else {
		fmt.Printf("  %-22s (none)\n", "min area")
	}
	fmt.Printf("  %-22s %g µm\n", "via pitch", p.ViaPitch)
	fmt.Printf("  %-22s %g µm\n", "via margin", p.ViaMargin)
	fmt.Printf("  %-22s %g + n × %g µm\n", "quantized widths", p.WidthQuantBase, p.WidthQuantStep)
	fmt.Printf("  %-22s %s\n", "naming style", string(p.NamingStyle))
	fmt.Printf("  %-22s %s\n", "layers (low→high)", strings.Join(p.AllowedLayers, ", "))
	if len(p.LowParasiticExcluded) > 0 {
		fmt.Printf("  %-22s %s\n", "low-parasitic excluded", strings.Join(p.LowParasiticExcluded, ", "))
	}
	fmt.Printf("\n✓ Profile is well-formed\n")
	return nil
}
