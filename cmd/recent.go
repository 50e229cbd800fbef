package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plctools/keptree/pkg/service"
)

func NewRecentCmd(svc **service.Service) *cobra.Command {
	var forget string

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently used hierarchy documents",
		Long: `List the hierarchy documents keptree has created, opened or saved,
most recently used first.

Examples:
  keptree recent
  keptree recent --forget old.json     # Drop an entry from the list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			if s.Registry == nil {
				return fmt.Errorf("document registry is not available")
			}

			if forget != "" {
				if err := s.Registry.Remove(forget); err != nil {
					return fmt.Errorf("forget document: %w", err)
				}
				fmt.Printf("Forgot %s\n", forget)
				return nil
			}

			docs, err := s.Registry.List()
			if err != nil {
				return fmt.Errorf("list documents: %w", err)
			}
			if len(docs) == 0 {
				fmt.Println("No documents yet. Create one with 'keptree new'.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LAST USED\tROOT\tFOLDERS\tTAGS\tPATH")
			for _, d := range docs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					d.LastUsed.Format("2006-01-02 15:04"), d.RootName, d.Folders, d.Tags, d.Path)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&forget, "forget", "", "Remove a document from the recent list")

	return cmd
}
