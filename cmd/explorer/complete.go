package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"explorer/internal/fs"
	"explorer/internal/paths"
	"explorer/internal/regextools"
)

// completeCmd prints the completion candidates for a partial path
func completeCmd() *cobra.Command {
	var ignorePatterns []string
	var dirsOnly bool

	cmd := &cobra.Command{
		Use:   "complete <path>",
		Short: "Complete a partially typed path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ignore, err := matcherFor(ignorePatterns)
			if err != nil {
				return err
			}

			fsys := fs.NewOS()
			for _, candidate := range paths.Complete(fsys, args[0], ignore) {
				if dirsOnly && !paths.IsDir(fsys, candidate, ignore) {
					continue
				}
				fmt.Println(candidate)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ignorePatterns, "ignore", nil, "regex pattern treated as nonexistent (repeatable)")
	cmd.Flags().BoolVar(&dirsOnly, "dirs", false, "only offer directories")
	return cmd
}

// splitCmd prints the deepest valid ancestor of a path and the
// basename following it
func splitCmd() *cobra.Command {
	var ignorePatterns []string

	cmd := &cobra.Command{
		Use:   "split <path>",
		Short: "Split a path into its deepest existing ancestor and the remainder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ignore, err := matcherFor(ignorePatterns)
			if err != nil {
				return err
			}

			head, tail := paths.ValidSplit(fs.NewOS(), args[0], ignore)
			fmt.Printf("head: %q\ntail: %q\n", head, tail)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ignorePatterns, "ignore", nil, "regex pattern treated as nonexistent (repeatable)")
	return cmd
}

func matcherFor(patterns []string) (*regextools.ListMatcher, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	return regextools.NewListMatcher(patterns)
}
