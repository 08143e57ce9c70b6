package speakers

import (
	"fmt"
	"strings"

	"github.com/agentstation/speakerdir/pkg/constants"
)

// ParseOpportunities splits the free-text opportunities column into at most
// five trimmed entries. It never returns an empty slice.
func ParseOpportunities(text string) []string {
	if text == "" {
		return append([]string(nil), constants.DefaultOpportunities...)
	}

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	out := make([]string, 0, constants.MaxOpportunities)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == constants.MaxOpportunities {
			break
		}
	}

	if len(out) == 0 {
		return append([]string(nil), constants.BlankOpportunities...)
	}
	return out
}

// Shape converts a stored record into the API representation.
func Shape(r Record) Speaker {
	company := r.Company.String
	if company == "" {
		company = constants.FallbackCompany
	}

	hook := r.Hook.String
	description := hook
	if description == "" {
		description = constants.DescriptionPrefix + r.Topic
	}

	return Speaker{
		ID:            r.ID,
		Name:          r.Name,
		Company:       company,
		Topic:         r.Topic,
		Challenges:    r.Challenges,
		Opportunities: ParseOpportunities(r.Opportunities.String),
		Hook:          hook,
		Description:   description,
	}
}

// ShapeAll shapes records in order. The result is never nil.
func ShapeAll(records []Record) []Speaker {
	out := make([]Speaker, 0, len(records))
	for _, r := range records {
		out = append(out, Shape(r))
	}
	return out
}

// Truncate shortens s to n characters and appends an ellipsis when it was longer.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + constants.Ellipsis
}

// Percentage renders WithHook as a share of Total, e.g. "42.9%".
func (s Stats) Percentage() string {
	if s.Total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(s.WithHook)/float64(s.Total)*100)
}

// DescribeHook summarizes the hook column of a raw row.
func DescribeHook(row RawRow) HookInfo {
	v, _ := row.Get("zaczepka")

	var hook string
	switch h := v.(type) {
	case string:
		hook = h
	case []byte:
		hook = string(h)
	case nil:
	default:
		hook = fmt.Sprint(h)
	}

	return HookInfo{
		HasHook: hook != "",
		Length:  len([]rune(hook)),
		Preview: Truncate(hook, constants.HookRowPreview),
	}
}
