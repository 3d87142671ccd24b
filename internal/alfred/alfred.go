package alfred

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nickwells/alfredtz/internal/timeparse"
	"github.com/nickwells/alfredtz/internal/tzconvert"
	"github.com/nickwells/twrap.mod/twrap"
)

const (
	layout12 = "3:04PM"
	layout24 = "15:04"

	jsonIndent = "    "
	textIndent = 4
)

// Icon gives the path of the image shown beside an item
type Icon struct {
	Path string `json:"path"`
}

// Item is a single entry in the list shown by Alfred
type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Arg      string `json:"arg,omitempty"`
	Icon     *Icon  `json:"icon,omitempty"`
}

// Items is the complete script filter response
type Items struct {
	Items []Item `json:"items"`
}

// Layout returns the time layout to use for the clock
func Layout(c timeparse.Clock) string {
	if c == timeparse.Clock12 {
		return layout12
	}

	return layout24
}

// TimeItems returns an item for each result, in the same order. The title
// and the arg are both the time followed by the timezone abbreviation.
func TimeItems(c timeparse.Clock, results []tzconvert.Result, iconPath string,
) []Item {
	items := make([]Item, 0, len(results))
	layout := Layout(c)

	for _, r := range results {
		s := r.Time.Format(layout) + " " + r.Entry.Abbreviation
		items = append(items, Item{
			Title: s,
			Arg:   s,
			Icon:  &Icon{Path: iconPath},
		})
	}

	return items
}

// ErrorItem returns an item describing a problem with the query
func ErrorItem(title, subtitle string) Item {
	return Item{Title: title, Subtitle: subtitle}
}

// ListItems returns an item, having just a title, for each abbreviation
func ListItems(abbrevs []string) []Item {
	items := make([]Item, 0, len(abbrevs))
	for _, a := range abbrevs {
		items = append(items, Item{Title: a})
	}

	return items
}

// WriteJSON writes the items to w in the form Alfred expects. HTML
// characters are not escaped.
func (its Items) WriteJSON(w io.Writer) error {
	if its.Items == nil {
		its.Items = []Item{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)

	return enc.Encode(its)
}

// WriteText writes the items to w as plain text, one title per line with
// any subtitle wrapped and indented beneath it.
func (its Items) WriteText(w io.Writer) error {
	twc, err := twrap.NewTWConf(twrap.SetWriter(w))
	if err != nil {
		return err
	}

	for _, it := range its.Items {
		if _, err := fmt.Fprintln(w, it.Title); err != nil {
			return err
		}

		if it.Subtitle != "" {
			twc.Wrap(it.Subtitle, textIndent)
		}
	}

	return nil
}
