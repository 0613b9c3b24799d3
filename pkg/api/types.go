package api

import (
	"strconv"
	"strings"
	"unicode"
)

// censoredVolume stands in for counts the API censors as "< 10". Some
// positive value under the threshold; 5 is the documented midpoint guess.
const censoredVolume = 5

// keywordToolResponse is the wire format of the keyword tool endpoint.
type keywordToolResponse struct {
	KeywordList []keywordRecord `json:"keywordList"`
}

type keywordRecord struct {
	RelKeyword         string     `json:"relKeyword"`
	MonthlyPcQcCnt     queryCount `json:"monthlyPcQcCnt"`
	MonthlyMobileQcCnt queryCount `json:"monthlyMobileQcCnt"`
	CompIdx            string     `json:"compIdx"`
}

// queryCount is a monthly query count that arrives either as a JSON number
// or as a censored marker string like "< 10".
type queryCount int

func (q *queryCount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if strings.HasPrefix(s, "<") {
		*q = censoredVolume
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*q = queryCount(n)
	return nil
}

// datalabRequest is the trend endpoint's request body. TimeUnit is always
// "month"; only single-keyword groups are sent.
type datalabRequest struct {
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	TimeUnit      string         `json:"timeUnit"`
	KeywordGroups []keywordGroup `json:"keywordGroups"`
}

type keywordGroup struct {
	GroupName string   `json:"groupName"`
	Keywords  []string `json:"keywords"`
}

type datalabResponse struct {
	Results []struct {
		Title string       `json:"title"`
		Data  []trendPoint `json:"data"`
	} `json:"results"`
}

type trendPoint struct {
	Period string  `json:"period"`
	Ratio  float64 `json:"ratio"`
}

// stripWhitespace removes every whitespace rune. Both the requested
// keyword and the candidate relKeyword values are compared stripped.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// selectCandidate picks the record whose stripped relKeyword equals the
// stripped input. Without an exact match the first record is used, which
// may be semantically unrelated; the fallback flag lets callers surface
// that instead of guessing silently.
func selectCandidate(records []keywordRecord, cleanKeyword string) (keywordRecord, bool) {
	for _, rec := range records {
		if stripWhitespace(rec.RelKeyword) == cleanKeyword {
			return rec, false
		}
	}
	return records[0], true
}
