package predict

// RawPrediction is one prediction line as the model returns it, before it is
// persisted as a storage.Prediction.
type RawPrediction struct {
	Symbol         string  `json:"symbol"`
	Timeframe      string  `json:"timeframe"` // 1d, 1w, 1m
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence"` // 0-100
	Reasoning      string  `json:"reasoning"`
}
