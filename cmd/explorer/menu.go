package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"explorer/internal/fs"
	"explorer/internal/menu"
	"explorer/internal/settings"
)

// menuCmd evaluates the configured context-menu items against a
// selection and prints what the menu would contain
func menuCmd() *cobra.Command {
	var currentDir string

	cmd := &cobra.Command{
		Use:   "menu [selected path]...",
		Short: "Evaluate context-menu items against a selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := settings.LoadFile(fs.NewOS(), cfg.Settings.Path)
			if err != nil {
				return err
			}

			items, err := menu.Build(args, currentDir, loaded.ContextMenu)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("(no menu)")
				return nil
			}
			for _, item := range items {
				if item.Enabled {
					fmt.Printf("%s: %s\n", item.Label, item.Command)
				} else {
					fmt.Printf("%s: (disabled)\n", item.Label)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&currentDir, "dir", "", "current directory for {current_directory}")
	return cmd
}
