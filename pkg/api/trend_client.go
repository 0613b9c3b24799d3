package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"keyword-insight/pkg/cache"
	"keyword-insight/pkg/errs"
	"keyword-insight/pkg/logger"
	"keyword-insight/pkg/rescale"
)

const datalabSearchURL = "https://openapi.naver.com/v1/datalab/search"

// TrendClient fetches the relative monthly trend series from the Datalab
// search endpoint.
type TrendClient struct {
	creds   DatalabCredentials
	client  *fasthttp.Client
	cache   *cache.MemoryCache
	log     *logger.Logger
	url     string
	timeout time.Duration
}

// NewTrendClient creates a trend client. The cache is optional; pass nil
// to disable memoization.
func NewTrendClient(creds DatalabCredentials, c *cache.MemoryCache) *TrendClient {
	return &TrendClient{
		creds: creds,
		client: &fasthttp.Client{
			Name:            "keyword-insight/1.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    10 * time.Second,
			MaxConnsPerHost: 10,
		},
		cache:   c,
		log:     logger.GetLogger().WithField("component", "trend_client"),
		url:     datalabSearchURL,
		timeout: 30 * time.Second,
	}
}

// FetchTrend returns the monthly relative series for one keyword group
// between startDate and endDate (YYYY-MM-DD, inclusive). A successful
// response with no data yields an empty series, distinct from transport
// failures.
func (c *TrendClient) FetchTrend(ctx context.Context, keyword, startDate, endDate string) ([]rescale.RelativePoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := cache.Key("trend", keyword, startDate, endDate, c.creds.ClientID)
	if c.cache != nil {
		if v, ok := c.cache.Get(key); ok {
			c.log.WithField("keyword", keyword).Debug("Trend series served from cache")
			return v.([]rescale.RelativePoint), nil
		}
	}

	body, err := json.Marshal(datalabRequest{
		StartDate: startDate,
		EndDate:   endDate,
		TimeUnit:  "month",
		KeywordGroups: []keywordGroup{
			{GroupName: keyword, Keywords: []string{keyword}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode trend request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Naver-Client-Id", c.creds.ClientID)
	req.Header.Set("X-Naver-Client-Secret", c.creds.ClientSecret)
	req.SetBody(body)

	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, &errs.TransportError{Endpoint: "datalab", Err: err}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &errs.TransportError{
			Endpoint: "datalab",
			Status:   resp.StatusCode(),
			Err:      errors.New(string(resp.Body())),
		}
	}

	series, err := parseTrendSeries(resp.Body())
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(key, series)
	}
	return series, nil
}

// parseTrendSeries decodes a Datalab response into an ordered relative
// series. Missing results mean "no data", not an error.
func parseTrendSeries(body []byte) ([]rescale.RelativePoint, error) {
	var decoded datalabResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode trend response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return nil, nil
	}

	data := decoded.Results[0].Data
	series := make([]rescale.RelativePoint, len(data))
	for i, p := range data {
		series[i] = rescale.RelativePoint{Period: p.Period, Ratio: p.Ratio}
	}
	return series, nil
}
