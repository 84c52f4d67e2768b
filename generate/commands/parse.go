package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/NicholasIapalucci/drexel-api/requisites"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showTokens bool

func init() {
	parseCmd.Flags().BoolVar(&showTokens, "tokens", false, "Also print the tokens the text was split into.")
	rootCmd.AddCommand(parseCmd)
}

func renderTokens(w io.Writer, text string) {
	tokens, err := requisites.Tokenize(text)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Token", "Value"})
	for i, token := range tokens {
		t.AppendRow(table.Row{i, token.Type, token.Value})
	}
	var gap *requisites.GapError
	if errors.As(err, &gap) {
		t.AppendFooter(table.Row{"", "untokenized", gap.Remaining})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

var parseCmd = &cobra.Command{
	Use:   "parse <prerequisites> [--tokens]",
	Short: `Parses prerequisite text such as "CS 171 [Min Grade: C-] and (CS 172 or CS 175)" and prints it as JSON.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if showTokens {
			renderTokens(cmd.OutOrStdout(), args[0])
		}

		prerequisites, err := requisites.ParsePrerequisites(args[0])
		if err != nil {
			fatal("failed to parse prerequisites", err)
		}

		encoded, err := json.MarshalIndent(prerequisites, "", "    ")
		if err != nil {
			fatal("failed to encode prerequisites", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	},
}
