package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePredictions_PlainArray(t *testing.T) {
	text := `[{"symbol":"AAPL","timeframe":"1w","predicted_price":215.4,"confidence":72,"reasoning":"momentum"}]`

	predictions, err := ParsePredictions(text)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "AAPL", predictions[0].Symbol)
	assert.Equal(t, "1w", predictions[0].Timeframe)
	assert.InDelta(t, 215.4, predictions[0].PredictedPrice, 1e-9)
	assert.InDelta(t, 72, predictions[0].Confidence, 1e-9)
}

func TestParsePredictions_MarkdownFences(t *testing.T) {
	text := "```json\n[{\"symbol\":\"MSFT\",\"timeframe\":\"1m\",\"predicted_price\":430,\"confidence\":65}]\n```"

	predictions, err := ParsePredictions(text)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "MSFT", predictions[0].Symbol)
}

func TestParsePredictions_ThinkTagsStripped(t *testing.T) {
	text := "<think>\nlet me reason about this\n</think>\n[{\"symbol\":\"NVDA\",\"timeframe\":\"1d\",\"predicted_price\":52,\"confidence\":80}]"

	predictions, err := ParsePredictions(text)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "NVDA", predictions[0].Symbol)
}

func TestParsePredictions_SingleObject(t *testing.T) {
	text := `{"symbol":"KO","timeframe":"1w","predicted_price":61,"confidence":55}`

	predictions, err := ParsePredictions(text)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "KO", predictions[0].Symbol)
}

func TestParsePredictions_ArrayEmbeddedInProse(t *testing.T) {
	text := `Here are my forecasts: [{"symbol":"AAPL","timeframe":"1w","predicted_price":210,"confidence":60}] as requested.`

	predictions, err := ParsePredictions(text)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
}

func TestParsePredictions_EmptyResponses(t *testing.T) {
	for _, text := range []string{"", "[]", "<think>nothing here</think>"} {
		predictions, err := ParsePredictions(text)
		require.NoError(t, err, "input %q", text)
		assert.Empty(t, predictions, "input %q", text)
	}
}

func TestParsePredictions_GarbageFails(t *testing.T) {
	_, err := ParsePredictions("the market will probably go up")
	assert.Error(t, err)
}

func TestStripThinkTags(t *testing.T) {
	assert.Equal(t, "after", StripThinkTags("<think>deep\nthoughts</think>after"))
	assert.Equal(t, "no tags", StripThinkTags("no tags"))
}
