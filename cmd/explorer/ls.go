package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"explorer/internal/fs"
	"explorer/internal/fsview"
)

// lsCmd lists a directory the way the file view presents it:
// directories first, filters applied, junctions hidden
func lsCmd() *cobra.Command {
	var filters []string
	var descending bool

	cmd := &cobra.Command{
		Use:   "ls <directory>",
		Short: "List a directory as the file view would",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := fs.NewOS()
			view := fsview.NewView(fsview.NewDirSource(fsys), fsys)

			if descending {
				if err := view.SetSortOrder(fsview.Descending); err != nil {
					return err
				}
			}
			if err := view.SetRegexFilters(filters); err != nil {
				return err
			}
			if err := view.SetRoot(args[0]); err != nil {
				return err
			}

			for i := 0; i < view.Len(); i++ {
				name := view.FileName(i)
				if view.IsDir(i) {
					name += "/"
				}
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "regex pattern hiding matching rows (repeatable)")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort names descending (directories stay first)")
	return cmd
}
