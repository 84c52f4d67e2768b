package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/NicholasIapalucci/drexel-api/requisites"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var prereqsFile string

func init() {
	prereqsCmd.Flags().StringVar(&prereqsFile, "file", "", "The document to read, defaults to the config's output.")
	rootCmd.AddCommand(prereqsCmd)
}

func renderPrerequisites(w io.Writer, doc *catalog.Document, code string) error {
	code = requisites.NormalizeCourseCodes(strings.ToUpper(strings.TrimSpace(code)))
	course, found := doc.CourseWith(code)
	if !found {
		return fmt.Errorf("no course %v in the document", code)
	}

	fmt.Fprintf(w, "%v %v\n", course.CodeName, course.ProperName)
	if len(course.Prerequisites) == 0 {
		fmt.Fprintln(w, "No prerequisites.")
		return nil
	}
	fmt.Fprintf(w, "Prerequisites: %v\n", course.Prerequisites)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Code", "Name", "Credits", "Major"})
	for _, prerequisite := range doc.AllPrerequisites(code) {
		t.AppendRow(table.Row{prerequisite.CodeName, prerequisite.ProperName, prerequisite.Credits, prerequisite.MajorName})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

var prereqsCmd = &cobra.Command{
	Use:   "prereqs <course> [--file drexel.json]",
	Short: "Prints a course's prerequisites and every course it transitively requires.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := prereqsFile
		if path == "" {
			path = cfg.Output
		}
		doc, err := catalog.ReadFile(path)
		if err != nil {
			fatal("failed to read document", err)
		}
		if err := renderPrerequisites(cmd.OutOrStdout(), doc, args[0]); err != nil {
			fatal("failed to look up course", err)
		}
	},
}
