package predict

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mkovtun/aifolio/internal/config"
	"github.com/mkovtun/aifolio/internal/logger"
	"github.com/mkovtun/aifolio/internal/storage"
)

type DeepSeekClient struct {
	client *openai.Client
	model  string
	cfg    *config.Config
	logger *logger.Logger
}

func NewDeepSeekClient(cfg *config.Config, log *logger.Logger) *DeepSeekClient {
	ocfg := openai.DefaultConfig(cfg.DeepSeek.APIKey)
	ocfg.BaseURL = "https://api.deepseek.com/v1"

	return &DeepSeekClient{
		client: openai.NewClientWithConfig(ocfg),
		model:  cfg.DeepSeek.Model,
		cfg:    cfg,
		logger: log,
	}
}

// Predict asks the model for a price forecast per asset and timeframe and
// returns the parsed lines plus the raw response for the audit log.
func (d *DeepSeekClient) Predict(ctx context.Context, assets []storage.Asset, timeframes []string) ([]RawPrediction, string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.DeepSeekTimeout())
	defer cancel()

	userPrompt := BuildUserPrompt(assets, timeframes)

	d.logger.Info("sending prediction request to DeepSeek",
		"assets", len(assets),
		"timeframes", len(timeframes))

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, "", fmt.Errorf("deepseek API call: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, "", fmt.Errorf("deepseek returned no choices")
	}

	rawResponse := resp.Choices[0].Message.Content
	d.logger.Info("received AI response", "length", len(rawResponse))
	d.logger.Debug("AI raw response", "content", rawResponse)

	predictions, err := ParsePredictions(rawResponse)
	if err != nil {
		return nil, rawResponse, fmt.Errorf("parse AI response: %w", err)
	}

	return predictions, rawResponse, nil
}
