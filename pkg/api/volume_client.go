package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"

	"keyword-insight/pkg/cache"
	"keyword-insight/pkg/errs"
	"keyword-insight/pkg/logger"
	"keyword-insight/pkg/rescale"
	"keyword-insight/pkg/signer"
)

const (
	searchAdBaseURL = "https://api.searchad.naver.com"
	keywordToolPath = "/keywordstool"
)

// VolumeClient fetches the absolute-volume baseline from the search-ad
// keyword tool endpoint using signed requests.
type VolumeClient struct {
	creds   AdCredentials
	client  *fasthttp.Client
	cache   *cache.MemoryCache
	log     *logger.Logger
	baseURL string
	timeout time.Duration
}

// NewVolumeClient creates a volume client. The cache is optional; pass nil
// to disable memoization.
func NewVolumeClient(creds AdCredentials, c *cache.MemoryCache) *VolumeClient {
	return &VolumeClient{
		creds: creds,
		client: &fasthttp.Client{
			Name:            "keyword-insight/1.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    10 * time.Second,
			MaxConnsPerHost: 10,
		},
		cache:   c,
		log:     logger.GetLogger().WithField("component", "volume_client"),
		baseURL: searchAdBaseURL,
		timeout: 30 * time.Second,
	}
}

// FetchBaseline resolves the keyword against the keyword tool endpoint and
// returns the current total monthly volume (PC + mobile) for the best
// matching record.
func (c *VolumeClient) FetchBaseline(ctx context.Context, keyword string) (*rescale.Baseline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := stripWhitespace(keyword)
	if clean == "" {
		return nil, &errs.NoResultError{Keyword: keyword}
	}

	key := cache.Key("volume", clean, c.creds.APIKey, c.creds.CustomerID)
	if c.cache != nil {
		if v, ok := c.cache.Get(key); ok {
			baseline := v.(rescale.Baseline)
			c.log.WithField("keyword", clean).Debug("Baseline served from cache")
			return &baseline, nil
		}
	}

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	signature, err := signer.Sign(c.creds.SecretKey, timestamp, fasthttp.MethodGet, keywordToolPath)
	if err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + keywordToolPath +
		"?hintKeywords=" + url.QueryEscape(clean) + "&showDetail=1")
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetContentType("application/json; charset=UTF-8")
	req.Header.Set("X-Timestamp", timestamp)
	req.Header.Set("X-API-KEY", c.creds.APIKey)
	req.Header.Set("X-Customer", c.creds.CustomerID)
	req.Header.Set("X-Signature", signature)

	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, &errs.TransportError{Endpoint: "keywordstool", Err: err}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &errs.TransportError{
			Endpoint: "keywordstool",
			Status:   resp.StatusCode(),
			Err:      errors.New(string(resp.Body())),
		}
	}

	baseline, err := parseBaseline(resp.Body(), clean)
	if err != nil {
		return nil, err
	}
	if baseline.Fallback {
		c.log.WithFields(map[string]interface{}{
			"keyword":  clean,
			"resolved": baseline.ResolvedKeyword,
		}).Warn("No exact keyword match, using first candidate")
	}

	if c.cache != nil {
		c.cache.Set(key, *baseline)
	}
	return baseline, nil
}

// parseBaseline decodes a keyword tool response and selects the candidate
// record for the stripped keyword.
func parseBaseline(body []byte, cleanKeyword string) (*rescale.Baseline, error) {
	var decoded keywordToolResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode keyword tool response: %w", err)
	}

	if len(decoded.KeywordList) == 0 {
		return nil, &errs.NoResultError{Keyword: cleanKeyword}
	}

	record, fallback := selectCandidate(decoded.KeywordList, cleanKeyword)
	return &rescale.Baseline{
		ResolvedKeyword: record.RelKeyword,
		TotalVolume:     int(record.MonthlyPcQcCnt) + int(record.MonthlyMobileQcCnt),
		CompIdx:         record.CompIdx,
		Fallback:        fallback,
	}, nil
}
