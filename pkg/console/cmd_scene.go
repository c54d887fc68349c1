package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/df07/go-mrt-raytracer/pkg/geometry"
	"github.com/df07/go-mrt-raytracer/pkg/renderer"
	"github.com/df07/go-mrt-raytracer/pkg/scene"
)

func registerSceneCommands(r *registry) error {
	for _, cmd := range []command{
		{Name: "render", Usage: "render", Desc: "Render the scene to the display.", Run: cmdRender},
		{Name: "clear", Usage: "clear", Desc: "Remove every primitive from the scene.", Run: cmdClear},
		{Name: "color", Aliases: []string{"background"}, Usage: "color r g b", Desc: "Set the background color (channels 0-1).", MinArgs: 3, MaxArgs: 3, Run: cmdColor},
		{Name: "sphere", Usage: "sphere x y z radius [r g b]", Desc: "Add a sphere.", MinArgs: 4, MaxArgs: 7, Run: cmdSphere},
		{Name: "circle", Usage: "circle x y z nx ny nz radius [r g b]", Desc: "Add a one-sided disc facing away from its normal.", MinArgs: 7, MaxArgs: 10, Run: cmdCircle},
		{Name: "plane", Usage: "plane x y z nx ny nz [r g b]", Desc: "Add an infinite one-sided plane.", MinArgs: 6, MaxArgs: 9, Run: cmdPlane},
		{Name: "list", Aliases: []string{"ls"}, Usage: "list", Desc: "List primitives nearest first.", Run: cmdList},
		{Name: "scene", Usage: "scene [name]", Desc: "Load a built-in scene, or list them.", MaxArgs: 1, Run: cmdScene},
	} {
		if err := r.register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func cmdRender(ctx context.Context, in *Interpreter, _ []string) error {
	stats, err := in.rt.RenderScene(ctx)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if stats.Cancelled {
		in.printf("render stopped after %d rows\n", stats.RowsRendered)
		return nil
	}
	in.printf("rendered %d pixels, %d hit, in %v\n", stats.TotalPixels, stats.HitPixels, stats.Duration)
	return nil
}

func cmdClear(_ context.Context, in *Interpreter, _ []string) error {
	in.rt.ClearPrimitives()
	in.printf("scene cleared\n")
	return nil
}

func cmdColor(_ context.Context, in *Interpreter, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	color := optionalColor(v)
	in.rt.SetBackgroundColor(color)
	in.printf("background %s\n", formatColor(color))
	return nil
}

// splitColor separates the trailing optional color from n required values
func splitColor(cmd string, v []float64, n int) ([]float64, []float64, error) {
	if len(v) != n && len(v) != n+3 {
		return nil, nil, fmt.Errorf("%w: %s needs %d values, or %d with a color", ErrUsage, cmd, n, n+3)
	}
	return v[:n], v[n:], nil
}

func cmdSphere(_ context.Context, in *Interpreter, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	shape, color, err := splitColor("sphere", v, 4)
	if err != nil {
		return err
	}
	if shape[3] <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrUsage)
	}
	return in.added("sphere", in.rt.AddSphere(vec3(shape), shape[3], optionalColor(color)))
}

func cmdCircle(_ context.Context, in *Interpreter, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	shape, color, err := splitColor("circle", v, 7)
	if err != nil {
		return err
	}
	if shape[6] <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrUsage)
	}
	return in.added("circle", in.rt.AddCircle(vec3(shape), vec3(shape[3:]), shape[6], optionalColor(color)))
}

func cmdPlane(_ context.Context, in *Interpreter, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	shape, color, err := splitColor("plane", v, 6)
	if err != nil {
		return err
	}
	return in.added("plane", in.rt.AddPlane(vec3(shape), vec3(shape[3:]), optionalColor(color)))
}

// added reports the outcome of adding a primitive
func (in *Interpreter) added(kind string, ok bool) error {
	if !ok {
		if !in.rt.IsInit() {
			return renderer.ErrNotInitialised
		}
		return fmt.Errorf("%w (capacity %d)", ErrSceneFull, in.rt.Capacity())
	}
	in.printf("added %s (%d/%d)\n", kind, in.rt.PrimitiveCount(), in.rt.Capacity())
	return nil
}

func cmdList(_ context.Context, in *Interpreter, _ []string) error {
	prims := in.rt.GetPrimitives()
	if len(prims) == 0 {
		in.printf("scene is empty\n")
		return nil
	}
	for i, p := range prims {
		in.printf("%3d  %s\n", i, describe(p))
	}
	return nil
}

func describe(p geometry.Primitive) string {
	switch p := p.(type) {
	case *geometry.Sphere:
		return fmt.Sprintf("sphere at %s radius %g color %s", formatVec(p.Position), p.Radius, formatColor(p.Color))
	case *geometry.Circle:
		return fmt.Sprintf("circle at %s normal %s radius %g color %s", formatVec(p.Position), formatVec(p.Normal), p.Radius, formatColor(p.Color))
	case *geometry.Plane:
		return fmt.Sprintf("plane at %s normal %s color %s", formatVec(p.Position), formatVec(p.Normal), formatColor(p.Color))
	default:
		return fmt.Sprintf("%T at %s", p, formatVec(p.GetPosition()))
	}
}

func cmdScene(_ context.Context, in *Interpreter, args []string) error {
	if len(args) == 0 {
		in.printf("scenes: %s\n", strings.Join(scene.Names(), ", "))
		return nil
	}

	s, err := scene.Lookup(args[0])
	if err != nil {
		return err
	}
	added := s.Apply(in.rt)
	in.printf("loaded %s: %d of %d primitives\n", s.Name, added, s.GetPrimitiveCount())
	return nil
}
