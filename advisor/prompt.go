package advisor

import (
	"fmt"
	"strings"

	"github.com/etnz/zenith"
	"github.com/etnz/zenith/i18n"
	"golang.org/x/text/language"
	"google.golang.org/genai"
)

// RiskTolerance is the risk profile assumed for every user.
const RiskTolerance = "moderate"

// Summary returns one "{symbol}: {balance} (valued at {value} USD)" entry per asset,
// joined with ", ".
func Summary(p zenith.Portfolio) string {
	if len(p.Assets) == 0 {
		return "no assets"
	}
	entries := make([]string, 0, len(p.Assets))
	for _, a := range p.Assets {
		entries = append(entries, fmt.Sprintf("%s: %s (valued at %s USD)", a.Symbol, a.Balance.Fixed(4), a.ValueUSD.Fixed(2)))
	}
	return strings.Join(entries, ", ")
}

// BuildPrompt returns the request sent to the model for portfolio p.
// The reasoning and rationales are requested in language lang.
func BuildPrompt(p zenith.Portfolio, lang language.Tag) string {
	return fmt.Sprintf(`You are a world-class financial advisor AI specialized in managing crypto and fiat portfolios.
My current portfolio consists of: %s.
The total portfolio value is %s USD.
My risk tolerance is '%s'.

Analyze this portfolio and provide actionable rebalancing suggestions to optimize for long-term growth and risk management.
Consider the current (hypothetical) market trends where Bitcoin shows strong bullish signs, Ethereum is stable with high utility and altcoins are volatile.
Provide a detailed reasoning for your overall strategy and then a list of specific, actionable suggestions.
Write the reasoning and the rationales in %s, keep the action labels in English (buy, sell or hold).
Format your response exactly as a single JSON object matching the provided schema. Do not add any markdown formatting such as `+"```json"+`.
`, Summary(p), p.TotalValueUSD.Fixed(2), RiskTolerance, i18n.LanguageName(lang))
}

// ResponseSchema is the output schema enforced on the model.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"reasoning": {
				Type:        genai.TypeString,
				Description: "A detailed explanation for the rebalancing suggestions, considering market conditions and the user's moderate risk profile.",
			},
			"suggestions": {
				Type:        genai.TypeArray,
				Description: "A list of actionable rebalancing suggestions.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"action":     {Type: genai.TypeString, Description: "e.g. 'buy', 'sell', 'hold'"},
						"asset":      {Type: genai.TypeString, Description: "The asset symbol, e.g. 'BTC'"},
						"percentage": {Type: genai.TypeNumber, Description: "The new suggested allocation percentage of the portfolio for this asset."},
						"rationale":  {Type: genai.TypeString, Description: "A brief reason for this specific action."},
					},
					Required: []string{"action", "asset", "percentage", "rationale"},
				},
			},
		},
		Required: []string{"reasoning", "suggestions"},
	}
}
