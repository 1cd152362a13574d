package scoring

import "strings"

// Currency conversion factors to the reference currency (GBP). An
// unknown currency keeps factor 1: the value is treated as already
// reference-denominated rather than rejected.
var currencyFactors = map[string]float64{
	"GBP": 1,
	"USD": 0.79,
	"EUR": 0.85,
	"AUD": 0.52,
	"CAD": 0.58,
	"SEK": 0.074,
	"AED": 0.21,
}

// Annual minimum sponsorship salary thresholds per country, expressed in
// the reference currency. Sweden publishes its floor in SEK, so it is
// converted on the way in.
var sponsorSalaryThresholds = map[string]float64{
	"GB": 38700,
	"NL": 45000,
	"DE": 45300,
	"SE": 156000 * 0.074,
	"AU": 70000,
	"CA": 54000,
}

// Generic title keywords worth partial role credit when neither the
// preferred nor the acceptable role lists match.
var genericRoleKeywords = []string{"product", "manager", "pm", "lead"}

// Industries common enough that a shared mention between profile and job
// counts as a soft match even when the tagged domains do not intersect.
var commonIndustries = []string{
	"fintech",
	"healthtech",
	"e-commerce",
	"saas",
	"edtech",
	"logistics",
	"gaming",
	"cybersecurity",
	"insurtech",
	"proptech",
}

// ToReferenceCurrency converts an annual amount to the reference
// currency using the fixed factor table.
func ToReferenceCurrency(amount float64, currency string) float64 {
	factor, ok := currencyFactors[strings.ToUpper(strings.TrimSpace(currency))]
	if !ok {
		factor = 1
	}
	return amount * factor
}

// SponsorSalaryThreshold returns the per-country minimum sponsorship
// salary in the reference currency, and whether the country has one.
func SponsorSalaryThreshold(countryCode string) (float64, bool) {
	t, ok := sponsorSalaryThresholds[strings.ToUpper(strings.TrimSpace(countryCode))]
	return t, ok
}
