package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukehoban/cssmatch/cssom"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a CSS file into its rule tree and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		sheet := cssom.ParseStylesheet(string(content))
		printStylesheet(sheet, 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func printStylesheet(sheet *cssom.Stylesheet, depth int) {
	for _, node := range sheet.Children {
		printNode(node, depth)
	}
}

func printNode(node cssom.Node, depth int) {
	indent := indentString(depth)
	switch {
	case node.StyleRule != nil:
		fmt.Printf("%sstyle rule: %d declaration(s)\n", indent, len(node.StyleRule.Declarations))
		for _, d := range node.StyleRule.Declarations {
			printDecl(d, depth+1)
		}
	case node.AtRule != nil:
		fmt.Printf("%s@%s: %d nested rule(s), %d direct declaration(s)\n",
			indent, node.AtRule.Name, len(node.AtRule.Block), len(node.AtRule.Decls))
		for _, d := range node.AtRule.Decls {
			printDecl(d, depth+1)
		}
		for _, child := range node.AtRule.Block {
			printNode(child, depth+1)
		}
	}
}

func printDecl(d *cssom.Declaration, depth int) {
	bang := ""
	if d.Important {
		bang = " !important"
	}
	fmt.Printf("%s%s:%s\n", indentString(depth), d.Name, bang)
}

func indentString(depth int) string {
	out := ""
	for i := 0; i < depth; i++ {
		out += "  "
	}
	return out
}
