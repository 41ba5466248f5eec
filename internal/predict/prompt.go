package predict

import (
	"fmt"
	"strings"

	"github.com/mkovtun/aifolio/internal/storage"
)

const systemPrompt = `You are a market analyst producing price forecasts for a retail portfolio dashboard.

You receive the asset universe with current prices. For each asset and each
requested timeframe, estimate the price at the end of the timeframe and how
confident you are in that estimate.

Rules:
1. Predicted prices must be plausible given the current price; do not forecast moves beyond +/-50% for any timeframe.
2. Confidence is 0-100: the strength of the evidence behind the forecast, not the size of the move.
3. Keep reasoning to one short sentence.
4. Cover every asset and every requested timeframe exactly once.

Answer strictly as a JSON array of objects:
[
  {
    "symbol": "AAPL",
    "timeframe": "1w",
    "predicted_price": 215.40,
    "confidence": 72,
    "reasoning": "why"
  }
]

If you cannot forecast an asset, omit it rather than guessing wildly.`

func BuildUserPrompt(assets []storage.Asset, timeframes []string) string {
	var sb strings.Builder

	sb.WriteString("## Requested timeframes\n")
	sb.WriteString(strings.Join(timeframes, ", "))
	sb.WriteString("\n\n## Asset universe\n")
	sb.WriteString("| Symbol | Name | Type | Current price |\n")
	sb.WriteString("|--------|------|------|---------------|\n")
	for _, a := range assets {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.2f |\n",
			a.Symbol, a.Name, a.Type, a.CurrentPrice))
	}

	return sb.String()
}
