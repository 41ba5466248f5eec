package market

import (
	"net/http"
	"time"

	"github.com/mkovtun/aifolio/internal/logger"
)

type Client struct {
	httpClient *http.Client
	quoteURL   string
	logger     *logger.Logger
}

func NewClient(quoteURL string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		quoteURL:   quoteURL,
		logger:     log,
	}
}
