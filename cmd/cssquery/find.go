package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukehoban/cssmatch/cssom"
	"github.com/lukehoban/cssmatch/domtree"
	"github.com/lukehoban/cssmatch/selector"
)

var findWatch bool

var findCmd = &cobra.Command{
	Use:   "find <selector> <fixture-file>",
	Short: "Find every element in a tree fixture matching a selector",
	Long: `find evaluates find(root) (a document-order walk of every matching
element) against a tree fixture file in domtree's indentation-based
element-per-line format (see domtree.ParseFixture).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		selText, fixturePath := args[0], args[1]
		if findWatch {
			return watchAndRun([]string{fixturePath}, func() error {
				return runFind(selText, fixturePath)
			})
		}
		return runFind(selText, fixturePath)
	},
}

func init() {
	findCmd.Flags().BoolVar(&findWatch, "watch", false,
		"re-run whenever the fixture file changes on disk")
	rootCmd.AddCommand(findCmd)
}

func runFind(selText, fixturePath string) error {
	sel, err := compileSelectorText(selText)
	if err != nil {
		return err
	}

	root, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	count := 0
	for n := range selector.Find(sel, root) {
		count++
		fmt.Printf("%d: %s\n", count, describeElement(n))
	}
	if count == 0 {
		fmt.Println("no matches")
	}
	return nil
}

func compileSelectorText(text string) (*selector.Selector, error) {
	ts := cssom.Tokenize(text, false)
	prims := cssom.ParseComponentValues(ts)
	return selector.Compile(prims)
}

func loadFixture(path string) (domtree.Node, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return domtree.ParseFixture(string(content))
}

func describeElement(n domtree.Node) string {
	desc := n.Name()
	if id, ok := n.Attr("id"); ok {
		desc += "#" + id
	}
	if class, ok := n.Attr("class"); ok {
		desc += "." + class
	}
	return desc
}
