package console

import (
	"context"
	"fmt"
)

func registerCameraCommands(r *registry) error {
	for _, cmd := range []command{
		{Name: "move", Usage: "move x y z", Desc: "Move the camera to a position.", MinArgs: 3, MaxArgs: 3, Run: cmdMove},
		{Name: "rotate", Usage: "rotate ax ay az degrees", Desc: "Set the camera rotation around an axis.", MinArgs: 4, MaxArgs: 4, Run: cmdRotate},
		{Name: "lookat", Usage: "lookat x y z", Desc: "Aim the camera at a point.", MinArgs: 3, MaxArgs: 3, Run: cmdLookAt},
		{Name: "fov", Usage: "fov degrees", Desc: "Set the field of view.", MinArgs: 1, MaxArgs: 1, Run: cmdFOV},
		{Name: "distance", Usage: "distance d", Desc: "Set the max viewing distance.", MinArgs: 1, MaxArgs: 1, Run: cmdDistance},
		{Name: "camera", Usage: "camera", Desc: "Show the camera settings.", Run: cmdCamera},
	} {
		if err := r.register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func cmdMove(_ context.Context, in *Interpreter, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	in.rt.SetCameraPosition(vec3(v))
	in.printf("camera at %s\n", formatVec(vec3(v)))
	return nil
}

func cmdRotate(_ context.Context, in *Interpreter, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	in.rt.SetCameraRotation(vec3(v), v[3])
	in.printf("camera rotated %g degrees around %s\n", v[3], formatVec(vec3(v)))
	return nil
}

func cmdLookAt(_ context.Context, in *Interpreter, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	if !in.rt.SetCameraLookAt(vec3(v)) {
		return fmt.Errorf("lookat: cannot aim at %s from %s", formatVec(vec3(v)), formatVec(in.rt.GetCamera().GetPosition()))
	}
	in.printf("camera looking at %s\n", formatVec(vec3(v)))
	return nil
}

func cmdFOV(_ context.Context, in *Interpreter, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	if v[0] <= 0 || v[0] >= 180 {
		return fmt.Errorf("%w: fov must be between 0 and 180 degrees", ErrUsage)
	}
	in.rt.SetCameraFOV(v[0])
	in.printf("fov %g degrees\n", v[0])
	return nil
}

func cmdDistance(_ context.Context, in *Interpreter, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	if v[0] <= 0 {
		return fmt.Errorf("%w: distance must be positive", ErrUsage)
	}
	in.rt.SetCameraRenderDistance(v[0])
	in.printf("render distance %g\n", v[0])
	return nil
}

func cmdCamera(_ context.Context, in *Interpreter, _ []string) error {
	camera := in.rt.GetCamera()
	in.printf("position %s, %dx%d, fov factor %.3f, render distance %g\n",
		formatVec(camera.GetPosition()), camera.Width(), camera.Height(),
		camera.GetFOVFactor(), camera.GetRenderDistance())
	return nil
}
