package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhardy773/security-plus-study-app/internal/progress"
	"github.com/jhardy773/security-plus-study-app/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cumulative study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		stats := progress.Load(st, logger).Statistics()

		if stats.TotalQuestions == 0 {
			fmt.Println("No questions answered yet.")
			return nil
		}

		fmt.Printf("Overall: %d/%d correct (%d%%)\n\n",
			stats.CorrectAnswers, stats.TotalQuestions, int(stats.Accuracy()*100))

		repo, err := loadBank(cmd)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DOMAIN\tCORRECT\tTOTAL\tACCURACY\tSTATUS")
		for _, name := range repo.Categories() {
			cs, seen := stats.Categories[name]
			if !seen {
				fmt.Fprintf(w, "%s\t-\t-\t-\t\n", name)
				continue
			}
			status := ""
			switch {
			case stats.IsWeak(name):
				status = "weak"
			case stats.IsStrong(name):
				status = "strong"
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%d%%\t%s\n",
				name, cs.Correct, cs.Total, int(cs.Accuracy()*100), status)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		recs := progress.Recommendations(stats)
		if len(recs) > 0 {
			fmt.Println()
			for _, rec := range recs {
				fmt.Printf("%s: %s\n", rec.Title, rec.Content)
			}
		}
		return nil
	},
}
