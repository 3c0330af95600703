// Command cssquery exposes the cssom tokenizer/parser and selector
// matcher as a small CLI: tokenize, parse, select, and find.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssquery",
	Short: "Tokenize, parse, and query CSS against an HTML-like document",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
