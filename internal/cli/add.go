package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/svanberg/goto/internal/model"
	"github.com/svanberg/goto/internal/prompt"
	"github.com/svanberg/goto/internal/title"
)

var addCmd = &cobra.Command{
	Use:   "add <url> [tags...]",
	Short: "Add a bookmark",
	Long: `Adds a bookmark for the given URL, optionally with tags. The page
title is fetched in the background and offered as the default title.
Adding a URL that is already bookmarked merges into the existing record
instead of creating a duplicate.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	rawURL, err := model.NormalizeURL(args[0])
	if err != nil {
		return err
	}

	// Fetch the page title while the user edits tags.
	pending := title.FetchAsync(cmd.Context(), rawURL)

	tags, err := prompt.Tags(model.ParseTags(strings.Join(args[1:], " ")))
	if err != nil {
		return err
	}

	pageTitle, err := prompt.Title(<-pending)
	if err != nil {
		return err
	}

	b, err := model.NewBookmark(rawURL, pageTitle, tags)
	if err != nil {
		return err
	}

	saved, err := store.Save(b)
	if err != nil {
		return err
	}

	cmd.Println(saved.String())
	return nil
}
