package journal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
)

// ToCSV renders entries as a header row plus one row per entry, ascending by
// date. Rows are separated by "\n" with no trailing newline.
//
// notes and the "|"-joined tags have embedded quotes doubled. Any field
// containing a comma, double quote, or newline is wrapped in double quotes.
func ToCSV(entries []models.Entry) string {
	var b strings.Builder
	b.WriteString(constants.CSVHeader)

	for _, e := range Sorted(entries, false) {
		b.WriteByte('\n')
		row := []string{
			e.Date,
			strconv.Itoa(e.Mood),
			strconv.Itoa(e.Pain),
			strconv.Itoa(e.Fatigue),
			strconv.Itoa(e.Nausea),
			doubleQuotes(e.Notes),
			doubleQuotes(strings.Join(e.Tags, constants.TagSeparator)),
		}
		for i, v := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteField(v))
		}
	}
	return b.String()
}

// ToJSON renders entries as the indented JSON array used for exports,
// backups, and the persisted slot.
func ToJSON(entries []models.Entry) ([]byte, error) {
	if entries == nil {
		entries = []models.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize entries: %w", err)
	}
	return data, nil
}

func doubleQuotes(v string) string {
	return strings.ReplaceAll(v, `"`, `""`)
}

func quoteField(v string) string {
	if strings.ContainsAny(v, ",\"\n") {
		return `"` + v + `"`
	}
	return v
}
