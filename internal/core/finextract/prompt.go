package finextract

import (
	"strings"
	"unicode/utf8"
)

// maxPromptChars caps how much document text is sent to the model.
const maxPromptChars = 8000

const systemPrompt = "You are a financial analyst. You extract financial statement data " +
	"from documents and respond with strict JSON only."

// BuildUserPrompt composes the fixed extraction instruction with the document
// text truncated to the first 8000 characters. The prompt pins the exact JSON
// shape so the response can be parsed as received, without markdown stripping.
func BuildUserPrompt(documentText string) string {
	if len(documentText) > maxPromptChars {
		// Back off to a rune boundary so the cut never leaves a broken
		// multi-byte sequence at the end of the prompt.
		cut := maxPromptChars
		for cut > 0 && !utf8.RuneStart(documentText[cut]) {
			cut--
		}
		documentText = documentText[:cut]
	}

	var b strings.Builder
	b.WriteString(`Extract financial statement data from this document.

Return ONLY a valid JSON object (no markdown, no code blocks) with this exact structure:
{
  "company_name": "company name or 'Unknown'",
  "fiscal_years": ["2024", "2023", "2022"],
  "financial_data": {
    "revenue": {"2024": 123456.00, "2023": 120000.00},
    "cost_of_revenue": {"2024": 50000.00},
    "gross_profit": {"2024": 73456.00},
    "operating_expenses": {"2024": 30000.00},
    "operating_income": {"2024": 43456.00},
    "interest_expense": {},
    "tax_expense": {"2024": 8000.00},
    "net_income": {"2024": 35456.00},
    "total_assets": {"2024": 500000.00},
    "total_liabilities": {"2024": 200000.00},
    "shareholders_equity": {"2024": 300000.00}
  },
  "currency": "USD",
  "units": "thousands or actual",
  "notes": ["any missing data or assumptions"]
}

IMPORTANT:
- Extract ONLY numbers that are explicitly stated in the document
- Do NOT hallucinate or estimate values
- If a line item is not found, omit it from the object
- Preserve the original numbers (don't convert units unless stated)
- If currency/units are unclear, note in "notes"
- Extract all years of data present
- Return ONLY the JSON object, nothing else

Document text:
`)
	b.WriteString(documentText)
	return b.String()
}
