package output

import (
	"io"

	"github.com/agentstation/speakerdir/internal/cmd/table"
	"github.com/agentstation/speakerdir/internal/speakers"
)

// FormatSpeakers writes list in the given format. Table formats render the
// speaker table; json and yaml render the same records the API returns.
func FormatSpeakers(w io.Writer, list []speakers.Speaker, format Format) error {
	var data any = list
	switch format {
	case FormatTable, FormatWide, "":
		data = table.SpeakersToTableData(list, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}
