package console

import (
	"fmt"
	"strconv"

	"github.com/df07/go-mrt-raytracer/pkg/core"
	"github.com/df07/go-mrt-raytracer/pkg/geometry"
)

// parseFloats converts every argument to a float64
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrUsage, arg)
		}
		out[i] = v
	}
	return out, nil
}

func vec3(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// optionalColor returns the color in v, or the default primitive color when v is empty
func optionalColor(v []float64) core.ColorPixel {
	if len(v) < 3 {
		return geometry.DefaultColor
	}
	return core.NewColorPixel(v[0], v[1], v[2])
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X(), v.Y(), v.Z())
}

func formatColor(c core.ColorPixel) string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}
