package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-mrt-raytracer/pkg/display"
)

func registerSessionCommands(r *registry) error {
	for _, cmd := range []command{
		{Name: "help", Usage: "help [command]", Desc: "Show available commands.", MaxArgs: 1, Run: cmdHelp},
		{Name: "save", Usage: "save path [scale]", Desc: "Save the image plane; the format follows the extension.", MinArgs: 1, MaxArgs: 2, Run: cmdSave},
		{Name: "uioff", Usage: "uioff", Desc: "Stop reading commands and leave the display open.", Run: cmdUIOff},
		{Name: "quit", Aliases: []string{"exit"}, Usage: "quit", Desc: "End the session.", Run: cmdQuit},
	} {
		if err := r.register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func cmdHelp(_ context.Context, in *Interpreter, args []string) error {
	if len(args) == 0 {
		for _, name := range in.reg.names() {
			cmd, ok := in.reg.resolve(name)
			if !ok {
				continue
			}
			in.printf("%-10s %s\n", cmd.Name, cmd.Desc)
		}
		return nil
	}

	cmd, ok := in.reg.resolve(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	in.printf("usage: %s\n", cmd.Usage)
	if cmd.Desc != "" {
		in.printf("%s\n", cmd.Desc)
	}
	if len(cmd.Aliases) > 0 {
		in.printf("aliases: %s\n", strings.Join(cmd.Aliases, ", "))
	}
	return nil
}

func cmdSave(_ context.Context, in *Interpreter, args []string) error {
	scale := in.OutputScale
	if len(args) == 2 {
		s, err := strconv.Atoi(args[1])
		if err != nil || s < 1 {
			return fmt.Errorf("%w: scale must be a positive integer", ErrUsage)
		}
		scale = s
	}

	if err := display.SaveImage(args[0], in.rt.GetCamera().Image(), scale); err != nil {
		return err
	}
	in.printf("saved %s\n", args[0])
	return nil
}

func cmdUIOff(_ context.Context, in *Interpreter, _ []string) error {
	in.printf("input closed\n")
	return errStop
}

func cmdQuit(_ context.Context, in *Interpreter, _ []string) error {
	in.quit = true
	return errStop
}
