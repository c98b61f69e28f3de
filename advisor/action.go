package advisor

import "strings"

// Action is the kind of rebalancing operation suggested for an asset.
//
// The model is free to answer any label, labels that are not recognized are kept as Unknown
// so that they can still be displayed.
type Action int

const (
	Unknown Action = iota
	Buy
	Sell
	Hold
)

// labels recognized for each action, lower case. Persian labels are produced when the
// model answers in Persian.
var actionLabels = map[string]Action{
	"buy":     Buy,
	"خرید":    Buy,
	"sell":    Sell,
	"فروش":    Sell,
	"hold":    Hold,
	"نگهداری": Hold,
}

// ParseAction normalizes a label answered by the model.
func ParseAction(label string) Action {
	return actionLabels[strings.ToLower(strings.TrimSpace(label))]
}

func (a Action) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Hold:
		return "hold"
	default:
		return "unknown"
	}
}
