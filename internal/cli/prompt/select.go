package prompt

import (
	"strings"

	"github.com/manifoldco/promptui"
)

// pageSize is the number of options shown at once. Longer lists open in
// search mode.
const pageSize = 10

// SelectOption is one entry of a selection list. Description is shown
// under the list for the highlighted entry.
type SelectOption struct {
	Label       string
	Value       string
	Description string
}

// Select shows options and returns the chosen Value. detailsLabel titles
// the description line; empty hides it.
func Select(label, detailsLabel string, options []SelectOption) (string, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label | white }}",
		Selected: "* {{ .Label | green }}",
	}
	if detailsLabel != "" {
		templates.Details = "\n{{ \"" + detailsLabel + ":\" | faint }}\t{{ .Description }}"
	}

	p := promptui.Select{
		Label:             label,
		Items:             options,
		Templates:         templates,
		Size:              pageSize,
		Searcher:          searcher(options),
		StartInSearchMode: len(options) > pageSize,
	}

	i, _, err := p.Run()
	if err != nil {
		return "", wrapError(err)
	}
	return options[i].Value, nil
}

// searcher matches the typed text against labels, ignoring case and spaces.
func searcher(options []SelectOption) func(string, int) bool {
	return func(input string, index int) bool {
		needle := strings.ToLower(strings.ReplaceAll(input, " ", ""))
		hay := strings.ToLower(strings.ReplaceAll(options[index].Label, " ", ""))
		return strings.Contains(hay, needle)
	}
}
