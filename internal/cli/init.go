package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timetrail/internal/config"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing config file without asking."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if _, err := os.Stat(ctx.ConfigPath); err == nil && !c.Force {
		overwrite := false
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Config already exists at %s. Overwrite with defaults?", ctx.ConfigPath)).
			Value(&overwrite)
		if err := confirm.Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Keeping existing config.")
			return nil
		}
	}

	if err := config.Write(ctx.ConfigPath, config.Default()); err != nil {
		return err
	}
	fmt.Printf("Wrote config: %s\n", ctx.ConfigPath)

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	defer ctx.Store.Close()
	fmt.Printf("Initialized record store: %s\n", ctx.Store.GetPath())

	return nil
}
