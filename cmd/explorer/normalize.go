package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"explorer/internal/fs"
	"explorer/internal/paths"
)

// normalizeCmd prints a normalized path
func normalizeCmd() *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "normalize <path>",
		Short: "Normalize a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized, err := paths.Normalize(args[0], separator)
			if err != nil {
				return err
			}
			fmt.Println(normalized)
			return nil
		},
	}

	cmd.Flags().StringVar(&separator, "separator", "/", `path separator to normalize to ("/" or "\")`)
	return cmd
}

// nameCmd prints a collision-free name in a directory
func nameCmd() *cobra.Command {
	var atEnd bool

	cmd := &cobra.Command{
		Use:   "name <directory> <basename>",
		Short: "Pick a versioned name that does not exist yet",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(paths.VersionedName(fs.NewOS(), args[0], args[1], atEnd))
		},
	}

	cmd.Flags().BoolVar(&atEnd, "at-end", false, "append the version suffix after the extension")
	return cmd
}
