// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/speakerdir/internal/speakers"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// cellWidth limits free-text cells in the narrow table.
const cellWidth = 40

// wideWrapWidth is the column width at which the wide table wraps text.
const wideWrapWidth = 60

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment

	// WrapWidth wraps cell text at this many columns when positive.
	WrapWidth int
	// Caption is printed under the table when set.
	Caption string
}

// SpeakersToTableData converts speakers to table format. The narrow form
// truncates free text; the wide form adds challenges and description and
// wraps long cells instead.
func SpeakersToTableData(list []speakers.Speaker, wide bool) Data {
	headers := []string{"ID", "Name", "Company", "Topic", "Opportunities", "Hook"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Challenges", "Description")
		align = append(align, AlignLeft, AlignLeft)
	}

	cell := func(s string) string {
		if wide {
			return s
		}
		return speakers.Truncate(s, cellWidth)
	}

	rows := make([][]string, 0, len(list))
	for _, s := range list {
		row := []string{
			strconv.FormatInt(s.ID, 10),
			s.Name,
			cell(s.Company),
			cell(s.Topic),
			cell(strings.Join(s.Opportunities, "; ")),
			cell(s.Hook),
		}
		if wide {
			row = append(row, s.Challenges, s.Description)
		}
		rows = append(rows, row)
	}

	data := Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
		Caption:         countCaption(len(list)),
	}
	if wide {
		data.WrapWidth = wideWrapWidth
	}
	return data
}

func countCaption(n int) string {
	if n == 1 {
		return "1 speaker"
	}
	return strconv.Itoa(n) + " speakers"
}
