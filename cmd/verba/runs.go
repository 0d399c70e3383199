package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/verbahq/verba/internal/history"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent pipeline runs",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum number of runs to list")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, _, log, err := loadConfig()
	if err != nil {
		return err
	}

	hist, err := history.Open(cfg.Paths.HistoryDB, log)
	if err != nil {
		return err
	}
	defer hist.Close()

	runs, err := hist.List(context.Background(), runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tSTATUS\tVIDEO\tTITLE\tTOKENS\tCOST\tOUTPUT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t$%.4f\t%s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Status, r.VideoID, r.Title, r.TokensUsed, r.EstimatedCost, r.OutputDir)
	}
	return w.Flush()
}
