// Package prompt collects the interactive text prompts used when
// adding and editing bookmarks.
package prompt

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/svanberg/goto/internal/model"
)

// Title asks for a bookmark title, pre-filled with def. An empty
// answer is allowed and means "keep no title".
func Title(def string) (string, error) {
	value := def
	err := run(huh.NewInput().
		Title("Title").
		Value(&value))
	if err != nil {
		return def, err
	}
	return strings.TrimSpace(value), nil
}

// Tags asks for a space-separated tag list, pre-filled with def, and
// returns the normalized set.
func Tags(def []string) ([]string, error) {
	value := strings.Join(def, " ")
	err := run(huh.NewInput().
		Title("Tags").
		Description("space or comma separated").
		Value(&value))
	if err != nil {
		return def, err
	}
	return model.ParseTags(value), nil
}

// URL asks for a bookmark URL, pre-filled with def, and returns the
// normalized result. The answer must parse as a URL.
func URL(def string) (string, error) {
	value := def
	err := run(huh.NewInput().
		Title("URL").
		Value(&value).
		Validate(func(s string) error {
			_, err := model.NormalizeURL(s)
			return err
		}))
	if err != nil {
		return def, err
	}
	return model.NormalizeURL(value)
}

// Action is one entry of the per-bookmark action menu.
type Action int

const (
	ActionOpen Action = iota
	ActionEditTitle
	ActionEditTags
	ActionEditURL
	ActionCopyURL
	ActionDelete
	ActionExit
)

// ChooseAction presents the action menu for a selected bookmark.
func ChooseAction() (Action, error) {
	action := ActionOpen
	err := run(huh.NewSelect[Action]().
		Title("Select action").
		Options(
			huh.NewOption("open", ActionOpen),
			huh.NewOption("edit title", ActionEditTitle),
			huh.NewOption("edit tags", ActionEditTags),
			huh.NewOption("edit URL", ActionEditURL),
			huh.NewOption("copy URL", ActionCopyURL),
			huh.NewOption("delete", ActionDelete),
			huh.NewOption("exit", ActionExit),
		).
		Value(&action))
	if err != nil {
		return ActionExit, err
	}
	return action, nil
}

func run(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
