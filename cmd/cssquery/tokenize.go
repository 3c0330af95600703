package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukehoban/cssmatch/cssom"
)

var tokenizeUnicodeRange bool

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Tokenize a CSS file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		ts := cssom.Tokenize(string(content), tokenizeUnicodeRange)
		fmt.Println(cssom.Display(ts.All()))
		return nil
	},
}

func init() {
	tokenizeCmd.Flags().BoolVar(&tokenizeUnicodeRange, "unicode-range", false,
		"enable unicode-range tokens (CSS Syntax Level 3 §4.3.2)")
	rootCmd.AddCommand(tokenizeCmd)
}
