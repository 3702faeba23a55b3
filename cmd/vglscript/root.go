package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	vgl "github.com/islxyqwe/vue-gl"
)

func newRootCommand(version string) *cobra.Command {
	var (
		jsonOutput bool
		debug      bool
	)
	cmd := &cobra.Command{
		Use:   "vglscript <script.yaml>",
		Short: "Replay a component lifecycle script and print the scene graph",
		Long: `vglscript mounts, updates, replaces and destroys components as described
by a YAML or JSON lifecycle script, then prints the scene graph that results.

Example script:

  steps:
    - {action: mount, id: a, name: A, position: "1 2 3"}
    - {action: mount, id: b, parent: a, kind: group}
    - {action: mount, id: c, parent: b, name: C, rotation: [0, 1.57, 0, YXZ]}
    - {action: update}`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read script")
			}
			runner, err := vgl.LoadScript(data)
			if err != nil {
				return err
			}

			scene := vgl.NewScene()
			if debug {
				scene.SetLogger(log.Logger)
				scene.SetDebugMode(true)
			}
			if err := runner.Run(scene); err != nil {
				return err
			}
			scene.Update()
			log.Debug().Int("components", len(runner.IDs())).Msg("script finished")

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), scene.Root())
			}
			writeTree(cmd.OutOrStdout(), scene.Root())
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable scene debug checks and lifecycle tracing")
	return cmd
}

func writeTree(w io.Writer, root *vgl.Node) {
	root.Walk(func(n *vgl.Node, depth int) bool {
		fmt.Fprintf(w, "%s%s#%d position=%s rotation=%s %s scale=%s\n",
			strings.Repeat("  ", depth), n.Name, n.ID,
			formatVec(n.Position), formatVec(n.Rotation.Vec3()), n.Rotation.Order,
			formatVec(n.Scale))
		return true
	})
}

type jsonNode struct {
	ID       uint32      `json:"id"`
	Name     string      `json:"name"`
	Position [3]any      `json:"position"`
	Rotation [3]any      `json:"rotation"`
	Order    string      `json:"order"`
	Scale    [3]any      `json:"scale"`
	World    [3]any      `json:"world"`
	Children []*jsonNode `json:"children,omitempty"`
}

func toJSONNode(n *vgl.Node) *jsonNode {
	out := &jsonNode{
		ID:       n.ID,
		Name:     n.Name,
		Position: jsonVec(n.Position),
		Rotation: jsonVec(n.Rotation.Vec3()),
		Order:    n.Rotation.Order.String(),
		Scale:    jsonVec(n.Scale),
		World:    jsonVec(n.LocalToWorld(mgl64.Vec3{})),
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, toJSONNode(c))
	}
	return out
}

func writeJSON(w io.Writer, root *vgl.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(toJSONNode(root)), "encode scene")
}

// jsonVec keeps finite components numeric and spells out NaN and infinities,
// which JSON cannot carry as numbers.
func jsonVec(v mgl64.Vec3) [3]any {
	var out [3]any
	for i, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			out[i] = formatFloat(f)
		} else {
			out[i] = f
		}
	}
	return out
}

func formatVec(v mgl64.Vec3) string {
	return "(" + formatFloat(v[0]) + " " + formatFloat(v[1]) + " " + formatFloat(v[2]) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
