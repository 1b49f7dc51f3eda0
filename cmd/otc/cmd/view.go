package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/render"
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/view"
)

var viewNoShield bool

var viewCmd = &cobra.Command{
	Use:   "view <job.yaml>",
	Short: "Compile a job and open the interactive preview",
	Long: `Compiles and validates a capacitor job, then opens it in an interactive
Gio-based viewer.

Controls:
  Scroll Wheel      - Zoom at cursor
  Drag              - Pan
  Space             - Fit capacitor to window
  S                 - Toggle shield
  Q / Escape        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewNoShield, "no-shield", false, "start with the shield hidden")
}

func runView(cmd *cobra.Command, args []string) error {
	c, err := compileJob(args[0], viewNoShield)
	if err != nil {
		return err
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("OpenTraceCap - " + c.spec.Cell))
		w.Option(app.Size(unit.Dp(1000), unit.Dp(800)))

		if err := runViewerWindow(w, c, !viewNoShield); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func runViewerWindow(w *app.Window, c *compiled, shield bool) error {
	layerOf := make(map[string]int, len(c.result.Layers))
	for i, layer := range c.result.Layers {
		layerOf[layer] = i
	}

	prims := c.prims
	bounds := view.Bounds(prims)

	camera := view.NewCamera(1000, 800)
	camera.Fit(bounds)

	var (
		ops      op.Ops
		dragging bool
		lastX    float64
		lastY    float64
	)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()

			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			camera.UpdateScreenSize(e.Size.X, e.Size.Y)

			for {
				ev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}
				ke, ok := ev.(key.Event)
				if !ok || ke.State != key.Press {
					continue
				}
				switch ke.Name {
				case key.NameEscape, "Q":
					return nil
				case key.NameSpace:
					camera.Fit(bounds)
				case "S":
					shield = !shield
					// Re-render; shield toggling never moves the rest.
					np, err := render.Render(c.result, c.spec.Params(), shield)
					if err != nil {
						return fmt.Errorf("error re-rendering: %w", err)
					}
					prims = np
				}
				w.Invalidate()
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{
					Kinds: pointer.Press | pointer.Release | pointer.Drag | pointer.Scroll,
				})
				if !ok {
					break
				}
				pe, ok := ev.(pointer.Event)
				if !ok {
					continue
				}
				switch pe.Kind {
				case pointer.Press:
					if pe.Buttons == pointer.ButtonPrimary {
						dragging = true
						lastX, lastY = float64(pe.Position.X), float64(pe.Position.Y)
					}
				case pointer.Drag:
					if dragging {
						camera.Pan(float64(pe.Position.X)-lastX, float64(pe.Position.Y)-lastY)
						lastX, lastY = float64(pe.Position.X), float64(pe.Position.Y)
						w.Invalidate()
					}
				case pointer.Release:
					dragging = false
				case pointer.Scroll:
					zoomFactor := 1.0 - float64(pe.Scroll.Y)*0.1
					camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
					w.Invalidate()
				}
			}

			paint.Fill(&ops, view.ColorBackground)
			view.Draw(&ops, camera, prims, layerOf)

			e.Frame(&ops)
		}
	}
}
