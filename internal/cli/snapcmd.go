package cli

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/grid"
	"github.com/framegrid/framegrid/pkg/snap"
)

// snapCommand creates the snap command for one-shot snap queries.
func (c *CLI) snapCommand() *cobra.Command {
	var (
		catalogPath string
		partType    string
		cursorStr   string
		rayStr      string
		rotStr      string
		maxDistance float64
		all         bool
	)

	cmd := &cobra.Command{
		Use:   "snap <assembly.json|assembly.fgb>",
		Short: "Run a one-shot snap query against an assembly",
		Long: `Run a one-shot snap query against an assembly.

For a support part the query finds open connector sockets the beam can snap
into. For a connector part it finds beam endpoints and pull-through spans,
with an automatic rotation that covers as many adjacent open sockets as
possible.

The cursor is the grab point in grid coordinates. An optional pick ray
(origin and direction, "ox,oy,oz:dx,dy,dz") refines the distance ranking for
targets far from the cursor's vertical plane. Results are printed as JSON,
best candidate first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSnap(args[0], catalogPath, partType, cursorStr, rayStr, rotStr, maxDistance, all)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "TOML part file merged over the builtin catalog")
	cmd.Flags().StringVarP(&partType, "part", "p", "", "part type being placed (required)")
	cmd.Flags().StringVar(&cursorStr, "cursor", "", "grab point as x,y,z (required)")
	cmd.Flags().StringVar(&rayStr, "ray", "", "pick ray as ox,oy,oz:dx,dy,dz")
	cmd.Flags().StringVar(&rotStr, "rotation", "0,0,0", "fallback rotation as x,y,z degrees (connector queries)")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 6, "maximum candidate distance")
	cmd.Flags().BoolVar(&all, "all", false, "list all candidates instead of the best")
	_ = cmd.MarkFlagRequired("part")
	_ = cmd.MarkFlagRequired("cursor")

	return cmd
}

func (c *CLI) runSnap(path, catalogPath, partType, cursorStr, rayStr, rotStr string, maxDistance float64, all bool) error {
	a, err := openAssembly(path, catalogPath)
	if err != nil {
		return err
	}

	def, ok := a.Catalog().Definition(partType)
	if !ok {
		return errors.New(errors.ErrCodePartNotFound, "unknown part type: %s", partType)
	}

	cursor, err := parseVec(cursorStr)
	if err != nil {
		return err
	}

	var ray *snap.Ray
	if rayStr != "" {
		ray, err = parseRay(rayStr)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	switch {
	case def.IsSupport():
		if all {
			return enc.Encode(snap.FindSnapPoints(a, def.ID, cursor, maxDistance, ray))
		}
		best, ok := snap.FindBestSnap(a, def.ID, cursor, maxDistance, ray)
		if !ok {
			printInfo("no snap candidates within %.1f cells", maxDistance)
			return nil
		}
		return enc.Encode(best)

	case def.IsConnector():
		fallback, err := parseRotation(rotStr)
		if err != nil {
			return err
		}
		if all {
			return enc.Encode(snap.FindConnectorSnapPoints(a, def.ID, cursor, maxDistance, ray, fallback))
		}
		best, ok := snap.FindBestConnectorSnap(a, def.ID, cursor, maxDistance, ray, fallback)
		if !ok {
			printInfo("no snap candidates within %.1f cells", maxDistance)
			return nil
		}
		return enc.Encode(best)

	default:
		return errors.New(errors.ErrCodeUnsupported, "part type %s is neither a support nor a connector", partType)
	}
}

// parseVec parses "x,y,z" into a grid vector.
func parseVec(s string) (grid.Vec, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return grid.Vec{}, errors.New(errors.ErrCodeInvalidInput, "want x,y,z, got %q", s)
	}
	var out [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return grid.Vec{}, errors.New(errors.ErrCodeInvalidInput, "bad coordinate %q in %q", f, s)
		}
		out[i] = n
	}
	return grid.V(out[0], out[1], out[2]), nil
}

// parseRotation parses "x,y,z" degrees into a normalized rotation.
func parseRotation(s string) (grid.Rotation, error) {
	v, err := parseVec(s)
	if err != nil {
		return grid.Rotation{}, err
	}
	return grid.Rot(v.X, v.Y, v.Z), nil
}

// parseRay parses "ox,oy,oz:dx,dy,dz" into a pick ray.
func parseRay(s string) (*snap.Ray, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "want ox,oy,oz:dx,dy,dz, got %q", s)
	}
	origin, err := parseVec(parts[0])
	if err != nil {
		return nil, err
	}
	dir, err := parseVec(parts[1])
	if err != nil {
		return nil, err
	}
	if dir == (grid.Vec{}) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "ray direction cannot be zero")
	}
	return &snap.Ray{Origin: snap.PointAt(origin), Direction: snap.PointAt(dir)}, nil
}
