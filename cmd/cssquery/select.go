package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukehoban/cssmatch/domtree"
)

var selectWatch bool

var selectCmd = &cobra.Command{
	Use:   "select <selector> <fixture-file> <element-id>",
	Short: "Report whether the element with the given id matches a selector",
	Long: `select evaluates the selects(element) -> bool operation against a
single element picked out by its id attribute, as opposed to find, which
walks the whole fixture tree.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		selText, fixturePath, id := args[0], args[1], args[2]
		if selectWatch {
			return watchAndRun([]string{fixturePath}, func() error {
				return runSelect(selText, fixturePath, id)
			})
		}
		return runSelect(selText, fixturePath, id)
	},
}

func init() {
	selectCmd.Flags().BoolVar(&selectWatch, "watch", false,
		"re-run whenever the fixture file changes on disk")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(selText, fixturePath, id string) error {
	sel, err := compileSelectorText(selText)
	if err != nil {
		return err
	}

	root, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	target := findByID(root, id)
	if target == nil {
		return fmt.Errorf("no element with id %q", id)
	}

	fmt.Println(sel.Selects(target))
	return nil
}

func findByID(n domtree.Node, id string) domtree.Node {
	if v, ok := n.Attr("id"); ok && v == id {
		return n
	}
	for _, child := range n.Children() {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}
