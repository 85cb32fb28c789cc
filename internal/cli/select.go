package cli

import (
	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/svanberg/goto/internal/model"
	"github.com/svanberg/goto/internal/picker"
	"github.com/svanberg/goto/internal/prompt"
	"github.com/svanberg/goto/internal/search"
)

var (
	selectMinScore float64
	selectLimit    int
)

var selectCmd = &cobra.Command{
	Use:   "select [keywords...]",
	Short: "Select from a list of bookmarks",
	Long: `Lists the bookmarks matching the given keywords, ranked by score,
and lets you pick one to open, edit, copy or delete. Without keywords
the whole store is listed.`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().Float64VarP(&selectMinScore, "score", "s", 0.05, "minimum match score")
	selectCmd.Flags().IntVarP(&selectLimit, "limit", "n", 8192, "maximum number of results")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, keywords []string) error {
	bookmarks, err := store.LoadAll()
	if err != nil {
		return err
	}

	minScore := selectMinScore
	if !cmd.Flags().Changed("score") {
		minScore = cfg.MinScore
	}
	limit := selectLimit
	if !cmd.Flags().Changed("limit") {
		limit = cfg.Limit
	}
	if len(keywords) == 0 {
		minScore = 0
	}

	ranked := search.Rank(search.Match(bookmarks, keywords))
	results := search.ChooseList(ranked, search.Options{MinScore: minScore, Limit: limit})

	if len(results) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "No bookmarks found")
		return nil
	}

	selected, err := picker.Run(results)
	if err != nil {
		return err
	}
	if selected == nil {
		return nil
	}

	return runAction(cmd, *selected)
}

func runAction(cmd *cobra.Command, b model.Bookmark) error {
	action, err := prompt.ChooseAction()
	if err != nil {
		return err
	}

	switch action {
	case prompt.ActionOpen:
		return openURL(cmd, b.URL)

	case prompt.ActionEditTitle:
		title, err := prompt.Title(b.Title)
		if err != nil {
			return err
		}
		b.Title = title
		_, err = store.Save(b)
		return err

	case prompt.ActionEditTags:
		tags, err := prompt.Tags(b.Tags)
		if err != nil {
			return err
		}
		// Save would union the old tags back in; overwrite instead.
		b.Tags = tags
		return store.Replace(b)

	case prompt.ActionEditURL:
		url, err := prompt.URL(b.URL)
		if err != nil {
			return err
		}
		if url == b.URL {
			return nil
		}
		moved := b
		moved.URL = url
		if _, err := store.Save(moved); err != nil {
			return err
		}
		return store.Delete(b)

	case prompt.ActionCopyURL:
		return clipboard.WriteAll(b.URL)

	case prompt.ActionDelete:
		if err := store.Delete(b); err != nil {
			return err
		}
		cmd.Printf("Deleted bookmark %s\n", b.URL)
		return nil

	default:
		return nil
	}
}
