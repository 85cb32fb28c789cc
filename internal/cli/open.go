package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/svanberg/goto/internal/browser"
	"github.com/svanberg/goto/internal/picker"
	"github.com/svanberg/goto/internal/search"
)

var openMinScore float64

var openCmd = &cobra.Command{
	Use:   "open [keywords...]",
	Short: "Open the bookmark matching the keywords",
	Long: `Opens the bookmark matching the given keywords in the browser. With
several matches a picker is shown. With no match the keywords are sent
to the configured search engine instead.`,
	RunE: runOpen,
}

func init() {
	openCmd.Flags().Float64VarP(&openMinScore, "score", "s", 0.05, "minimum match score")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, keywords []string) error {
	bookmarks, err := store.LoadAll()
	if err != nil {
		return err
	}

	minScore := openMinScore
	if !cmd.Flags().Changed("score") {
		minScore = cfg.MinScore
	}
	if len(keywords) == 0 {
		minScore = 0
	}

	ranked := search.Rank(search.Match(bookmarks, keywords))
	decision := search.Choose(ranked, search.Options{MinScore: minScore})

	switch decision.Outcome {
	case search.NoMatch:
		url := search.SearchURL(cfg.SearchEngine, keywords)
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(),
			"No bookmark found for keyword(s), searching online instead")
		return openURL(cmd, url)

	case search.Open:
		b := decision.Results[0].Bookmark
		cmd.Println(b.String())
		return openURL(cmd, b.URL)

	default: // search.Ambiguous
		selected, err := picker.Run(decision.Results)
		if err != nil {
			return err
		}
		if selected == nil {
			return nil
		}
		return openURL(cmd, selected.URL)
	}
}

// openURL launches the browser, printing the URL as a fallback when no
// launcher is available.
func openURL(cmd *cobra.Command, url string) error {
	if err := browser.Open(url); err != nil {
		logger.Warn("unable to open browser", "error", err)
		cmd.Println(url)
	}
	return nil
}
