package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCap/internal/job"
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/geom"
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/mosaic"
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/render"
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/script"
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech/techfile"
)

var (
	genOutput   string
	genNoShield bool
)

var genCmd = &cobra.Command{
	Use:   "gen <job.yaml>",
	Short: "Compile a job file to a layout script",
	Long: `Compiles a capacitor job: resolves the technology profile, derives the
geometry, validates it against the process rules (reporting every violation
at once), and emits the layout command script.`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output script path (default: <cell>.cs)")
	genCmd.Flags().BoolVar(&genNoShield, "no-shield", false, "omit the shield frame segments")
}

// compiled bundles everything one job compilation produces.
type compiled struct {
	spec   *job.Spec
	result *geom.Result
	prims  []render.Primitive
}

// compileJob runs the shared pipeline: load, resolve, compute, validate,
// render. Validation failures list every violation and abort.
func compileJob(path string, noShield bool) (*compiled, error) {
	spec, err := job.Load(path)
	if err != nil {
		return nil, err
	}
	fmt.Printf("✓ Loaded job %s (cell %q, shape %s)\n", path, spec.Cell, spec.Shape)

	profile, err := techfile.NewResolver().Resolve(spec.Technology)
	if err != nil {
		return nil, fmt.Errorf("error resolving technology: %w", err)
	}
	fmt.Printf("✓ Technology %s (%d layers)\n", profile.Name, len(profile.AllowedLayers))

	params := spec.Params()
	result, err := geom.Compute(params, profile)
	if err != nil {
		return nil, fmt.Errorf("error computing geometry: %w", err)
	}
	fmt.Printf("✓ Geometry: %s x %s µm, %d fingers, %d via arrays\n",
		geom.FormatCoord(result.TotalWidth), geom.FormatCoord(result.TotalHeight),
		result.FingerCount, len(result.Vias))

	outcome := geom.Validate(result, params, profile)
	if !outcome.Accepted() {
		fmt.Fprintf(os.Stderr, "validation failed with %d violation(s):\n", len(outcome.Violations))
		for _, v := range outcome.Violations {
			fmt.Fprintf(os.Stderr, "  - %s\n", v)
		}
		return nil, fmt.Errorf("geometry rejected; adjust the parameters and rerun")
	}
	fmt.Printf("✓ Validation passed\n")

	include := spec.IncludeShield() && !noShield
	prims, err := render.Render(result, params, include)
	if err != nil {
		return nil, fmt.Errorf("error rendering primitives: %w", err)
	}
	fmt.Printf("✓ Rendered %d primitives (shield %v)\n", len(prims), include)

	return &compiled{spec: spec, result: result, prims: prims}, nil
}

func runGen(cmd *cobra.Command, args []string) error {
	c, err := compileJob(args[0], genNoShield)
	if err != nil {
		return err
	}

	out := genOutput
	if out == "" {
		out = c.spec.Cell + ".cs"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	grid, err := c.spec.Grid()
	if err != nil {
		return fmt.Errorf("error building array grid: %w", err)
	}
	if grid == nil {
		if err := script.Emit(f, c.spec.Cell, c.prims); err != nil {
			return fmt.Errorf("error emitting script: %w", err)
		}
	} else {
		regions := mosaic.Merge(grid)
		if err := script.EmitArray(f, c.spec.Cell, c.prims, regions); err != nil {
			return fmt.Errorf("error emitting script: %w", err)
		}
		fmt.Printf("✓ Array: %d placements merged into %d regions\n", grid.OccupiedCount(), len(regions))
	}
	fmt.Printf("✓ Wrote %s\n", out)
	return nil
}
