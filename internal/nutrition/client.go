package nutrition

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/franciscosanchezn/gin-meals-api/internal/metrics"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the api-ninjas nutrition endpoint
const DefaultBaseURL = "https://api.api-ninjas.com/v1/nutrition"

// maxResponseBytes bounds how much of an upstream response is read
const maxResponseBytes = 1 << 20

// Config holds the settings of the upstream nutrition client
type Config struct {
	// BaseURL is the nutrition endpoint; the food name is sent as the query parameter
	BaseURL string
	// APIKey is sent in the X-Api-Key header
	APIKey string
	// Timeout bounds a single upstream request
	Timeout time.Duration
	// RateLimit is the maximum number of upstream requests per second, 0 disables limiting
	RateLimit float64
	// RejectUnknown makes lookups that match no upstream entry fail with repository.ErrUnknownFood
	RejectUnknown bool
}

// Client fetches nutrition values from the upstream service
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	limiter       *rate.Limiter
	rejectUnknown bool
}

var _ repository.NutritionGateway = (*Client)(nil)

// NewClient creates a new upstream nutrition client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       baseURL,
		apiKey:        cfg.APIKey,
		limiter:       limiter,
		rejectUnknown: cfg.RejectUnknown,
	}
}

// Enrich returns the nutrition values of every upstream entry matching name summed
// into one record tagged with name. Transport and decoding failures are reported as
// repository.ErrUpstreamUnavailable.
func (c *Client) Enrich(ctx context.Context, name string) (models.NutritionTotals, error) {
	start := time.Now()
	totals, err := c.fetch(ctx, name)
	metrics.RecordNutritionLookup(time.Since(start), err)

	entry := log.WithFields(logrus.Fields{
		"food":    name,
		"latency": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("Nutrition lookup failed")
		return models.NutritionTotals{}, err
	}
	entry.WithField("entries", totals.Entries).Debug("Nutrition lookup succeeded")

	if c.rejectUnknown && totals.Entries == 0 {
		return models.NutritionTotals{}, repository.ErrUnknownFood
	}
	return totals, nil
}

func (c *Client) fetch(ctx context.Context, name string) (models.NutritionTotals, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return models.NutritionTotals{}, unavailable("rate limiter: %v", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?query="+url.QueryEscape(name), nil)
	if err != nil {
		return models.NutritionTotals{}, unavailable("failed to create request: %v", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.NutritionTotals{}, unavailable("failed to call nutrition API: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return models.NutritionTotals{}, unavailable("failed to read nutrition response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.NutritionTotals{}, unavailable("nutrition API error %d: %s", resp.StatusCode, string(body))
	}

	return ParseTotals(name, body)
}

// ParseTotals sums every entry of an upstream response body.
// Fields holding non-numeric placeholders count as zero.
func ParseTotals(name string, body []byte) (models.NutritionTotals, error) {
	if !gjson.ValidBytes(body) {
		return models.NutritionTotals{}, unavailable("malformed nutrition response")
	}
	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return models.NutritionTotals{}, unavailable("nutrition response is not a list")
	}

	totals := models.NutritionTotals{Name: name}
	malformed := false
	result.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			malformed = true
			return false
		}
		totals.Add(models.NutritionTotals{
			Calories:            item.Get("calories").Float(),
			ServingSizeG:        item.Get("serving_size_g").Float(),
			FatTotalG:           item.Get("fat_total_g").Float(),
			FatSaturatedG:       item.Get("fat_saturated_g").Float(),
			ProteinG:            item.Get("protein_g").Float(),
			SodiumMg:            item.Get("sodium_mg").Float(),
			PotassiumMg:         item.Get("potassium_mg").Float(),
			CholesterolMg:       item.Get("cholesterol_mg").Float(),
			CarbohydratesTotalG: item.Get("carbohydrates_total_g").Float(),
			FiberG:              item.Get("fiber_g").Float(),
			SugarG:              item.Get("sugar_g").Float(),
		})
		return true
	})
	if malformed {
		return models.NutritionTotals{}, unavailable("nutrition response entry is not an object")
	}
	return totals, nil
}

func unavailable(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", repository.ErrUpstreamUnavailable, fmt.Sprintf(format, args...))
}
