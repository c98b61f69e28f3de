package renderer

import (
	"github.com/etnz/zenith/advisor"
	"github.com/etnz/zenith/i18n"
	"golang.org/x/text/language"
)

// ActionMarker returns the symbol displayed in front of a suggestion.
// Unknown actions get a neutral marker, their raw label is always displayed.
func ActionMarker(a advisor.Action) string {
	switch a {
	case advisor.Buy:
		return "▲"
	case advisor.Sell:
		return "▼"
	case advisor.Hold:
		return "●"
	default:
		return "◆"
	}
}

type suggestionLine struct {
	Marker, Label, Asset, Target, Rationale string
}

// Advice renders the advisory panel in state st.
func Advice(st advisor.State, lang language.Tag) string {
	v := struct {
		Page        page
		Status      string
		Message     string
		Reasoning   string
		Suggestions []suggestionLine
	}{
		Page:    page{Title: i18n.Advisor, Subtitle: i18n.AdvisorSubtitle},
		Status:  st.Status.String(),
		Message: st.Message,
	}
	if st.Status == advisor.Succeeded && st.Advice != nil {
		v.Reasoning = st.Advice.Reasoning
		for _, s := range st.Advice.Suggestions {
			label := s.Label
			if label == "" {
				label = s.Action.String()
			}
			v.Suggestions = append(v.Suggestions, suggestionLine{
				Marker:    ActionMarker(s.Action),
				Label:     label,
				Asset:     s.Asset,
				Target:    i18n.Text(lang, i18n.Target, s.Percentage.String()),
				Rationale: s.Rationale,
			})
		}
	}
	return renderTemplate("advice", lang, v)
}
