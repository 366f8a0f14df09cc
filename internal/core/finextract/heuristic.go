package finextract

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/markdave123-py/FinSheet/internal/core"
	"github.com/markdave123-py/FinSheet/internal/models"
)

var _ core.FinancialExtractor = (*Heuristic)(nil)

var (
	companyRe = regexp.MustCompile(`[A-Z][A-Za-z\s&]+(?:LIMITED|LTD|CORPORATION|CORP|INC|INDUSTRIES)`)
	yearRe    = regexp.MustCompile(`\b(20\d{2})\b`)
	// numberRe permits thousands separators and decimals, e.g. "1,234.56".
	numberRe = regexp.MustCompile(`[\d,]+\.?\d*`)
)

// itemPatterns lists, per line item, the label variants to try in priority
// order. The first pattern that produces a line containing numbers wins;
// later variants are never consulted for that item.
var itemPatterns = []struct {
	key      models.LineItemKey
	patterns []*regexp.Regexp
}{
	{models.Revenue, compileAll(`revenue\s+from\s+operations`, `total\s+revenue`, `sales`, `net\s+revenue`, `revenues`)},
	{models.CostOfRevenue, compileAll(`cost\s+of\s+(?:revenue|goods\s+sold|materials)`, `cogs`, `cost\s+of\s+sales`)},
	{models.GrossProfit, compileAll(`gross\s+profit`, `gross\s+margin`)},
	{models.OperatingExpenses, compileAll(`operating\s+(?:expenses|costs)`, `sga`, `selling.*administrative`)},
	{models.OperatingIncome, compileAll(`operating\s+(?:income|profit)`, `ebit`)},
	{models.InterestExpense, compileAll(`interest\s+(?:expense|paid)`)},
	{models.TaxExpense, compileAll(`(?:income\s+)?tax\s+(?:expense|cost)`, `provision\s+for\s+taxes`)},
	{models.NetIncome, compileAll(`net\s+(?:income|profit)`, `earnings`, `net\s+earnings`)},
	{models.TotalAssets, compileAll(`total\s+assets`)},
	{models.TotalLiabilities, compileAll(`total\s+liabilities`)},
	{models.ShareholdersEquity, compileAll(`(?:shareholders|stockholders)\s+equity`, `total\s+equity`)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		res[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return res
}

// Heuristic is the regex/keyword extraction strategy. It is intentionally
// low precision but explainable: numbers found on a matched line are paired
// with fiscal years by list position, not by proximity or label. That
// positional alignment is a documented heuristic and must stay.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Extract produces a best-effort record from raw document text. It never
// fails on missing data; a line item that yields nothing is simply omitted.
func (h *Heuristic) Extract(_ context.Context, documentText string) (*models.FinancialRecord, error) {
	lower := strings.ToLower(documentText)

	companyName := "Unknown"
	if m := companyRe.FindString(documentText); m != "" {
		companyName = strings.TrimSpace(m)
	}

	currency := "USD"
	if strings.Contains(documentText, "₹") || strings.Contains(lower, "crores") {
		currency = "INR"
	}

	units := "Actual"
	if strings.Contains(lower, "crores") {
		units = "Crores"
	}

	years := fiscalYears(documentText)

	lines := strings.Split(documentText, "\n")
	financialData := make(map[string]map[string]float64)
	for _, item := range itemPatterns {
		if values := scanItem(lines, item.patterns, years); len(values) > 0 {
			financialData[string(item.key)] = values
		}
	}

	return &models.FinancialRecord{
		CompanyName:   companyName,
		FiscalYears:   years,
		FinancialData: financialData,
		Currency:      currency,
		Units:         units,
		Notes: []string{
			"Data extracted using pattern matching",
			"Some values may be approximate if document format varies",
			"Manual review recommended for accuracy",
		},
	}, nil
}

// fiscalYears collects every distinct 20xx year label, most recent first,
// capped at three. Documents with no recognizable year get a fixed default.
func fiscalYears(text string) []string {
	seen := make(map[string]bool)
	var years []string
	for _, y := range yearRe.FindAllString(text, -1) {
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return []string{"2024", "2023"}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	if len(years) > 3 {
		years = years[:3]
	}
	return years
}

// scanItem tries each label variant in order and stops at the first line that
// matches and carries at least one number. The i-th number on that line is
// assigned to the i-th fiscal year; first match wins, not best match.
func scanItem(lines []string, patterns []*regexp.Regexp, years []string) map[string]float64 {
	for _, re := range patterns {
		for _, line := range lines {
			if !re.MatchString(line) {
				continue
			}
			numbers := numberRe.FindAllString(line, -1)
			if len(numbers) == 0 {
				continue
			}
			values := make(map[string]float64)
			for i, year := range years {
				if i >= len(numbers) {
					break
				}
				v, err := strconv.ParseFloat(strings.ReplaceAll(numbers[i], ",", ""), 64)
				if err != nil {
					continue
				}
				values[year] = v
			}
			return values
		}
	}
	return nil
}
