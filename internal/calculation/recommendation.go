package calculation

import (
	"fmt"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	highRateThreshold  = decimal.NewFromFloat(0.065)
	twentyPercent      = decimal.NewFromFloat(0.20)
	investSpreadMargin = decimal.NewFromFloat(0.02)
)

// adviceContext bundles everything a rule may inspect.
type adviceContext struct {
	result  *domain.SimulationResult
	context domain.QualitativeContext
}

// advisoryRule pairs a predicate with a builder. Rules are evaluated in
// declaration order and every matching rule emits exactly one item.
type advisoryRule struct {
	applies func(*adviceContext) bool
	build   func(*adviceContext) domain.Recommendation
}

// RecommendationAdvisor turns a finished simulation into ordered advisory
// text. Rules never alter the numbers they read.
type RecommendationAdvisor struct {
	rules []advisoryRule
}

// NewRecommendationAdvisor creates an advisor with the standard rule set.
func NewRecommendationAdvisor() *RecommendationAdvisor {
	return &RecommendationAdvisor{rules: standardRules()}
}

// Advise evaluates all rules against the result and qualitative flags.
// The summary always comes from the single primary item.
func (ra *RecommendationAdvisor) Advise(result *domain.SimulationResult, qc domain.QualitativeContext) *domain.RecommendationBundle {
	ac := &adviceContext{result: result, context: qc}

	var items []domain.Recommendation
	summary := ""
	for _, rule := range ra.rules {
		if !rule.applies(ac) {
			continue
		}
		item := rule.build(ac)
		items = append(items, item)
		if item.Kind == domain.RecommendationPrimary && summary == "" {
			summary = item.Text
		}
	}

	return &domain.RecommendationBundle{
		Summary:    summary,
		Items:      items,
		Confidence: confidenceScore(result),
	}
}

func standardRules() []advisoryRule {
	return []advisoryRule{
		{
			applies: func(ac *adviceContext) bool { return ac.result.Winner == domain.WinnerBuying },
			build: func(ac *adviceContext) domain.Recommendation {
				return domain.Recommendation{
					Kind:  domain.RecommendationPrimary,
					Title: "Buying builds more wealth",
					Text: fmt.Sprintf("Over %d years, buying leaves you %s ahead of renting and investing the difference.",
						ac.result.Inputs.YearsHorizon, formatDollars(ac.result.WealthAdvantage)),
				}
			},
		},
		{
			applies: func(ac *adviceContext) bool { return ac.result.Winner == domain.WinnerRenting },
			build: func(ac *adviceContext) domain.Recommendation {
				return domain.Recommendation{
					Kind:  domain.RecommendationPrimary,
					Title: "Renting comes out ahead",
					Text: fmt.Sprintf("Over %d years, renting and investing the difference leaves you %s ahead of buying.",
						ac.result.Inputs.YearsHorizon, formatDollars(ac.result.WealthAdvantage.Neg())),
				}
			},
		},
		{
			applies: func(ac *adviceContext) bool { return ac.result.BreakEvenYear != nil },
			build: func(ac *adviceContext) domain.Recommendation {
				return domain.Recommendation{
					Kind:  domain.RecommendationInfo,
					Title: "Plan to stay past break-even",
					Text: fmt.Sprintf("Cumulative ownership costs drop below cumulative rent in year %d. Selling before then means the up-front costs were never recovered.",
						*ac.result.BreakEvenYear),
				}
			},
		},
		{
			applies: func(ac *adviceContext) bool { return ac.result.BreakEvenYear == nil },
			build: func(ac *adviceContext) domain.Recommendation {
				return domain.Recommendation{
					Kind:  domain.RecommendationWarning,
					Title: "No cash break-even inside the horizon",
					Text: fmt.Sprintf("Buying never becomes cheaper than renting within %d years. A longer stay or better terms would be needed to recover the purchase costs.",
						ac.result.Inputs.YearsHorizon),
				}
			},
		},
		{
			applies: func(ac *adviceContext) bool {
				return ac.result.Inputs.DownPaymentPct.LessThan(twentyPercent)
			},
			build: func(ac *adviceContext) domain.Recommendation {
				return domain.Recommendation{
					Kind:  domain.RecommendationSuggestion,
					Title: "Down payment below 20%",
					Text:  "A down payment under 20% typically adds mortgage insurance and raises the monthly cost of owning beyond what this comparison shows.",
				}
			},
		},
		{
			applies: func(ac *adviceContext) bool {
				return ac.result.Inputs.MortgageRateAnnual.GreaterThan(highRateThreshold)
			},
			build: func(ac *adviceContext) domain.Recommendation {
				return domain.Recommendation{
					Kind:  domain.RecommendationWarning,
					Title: "Mortgage rate is high",
					Text: fmt.Sprintf("At %s%% the financing cost dominates early payments. Refinancing if rates fall would materially change this outcome.",
						ac.result.Inputs.MortgageRateAnnual.Mul(decimal.NewFromInt(100)).StringFixed(1)),
				}
			},
		},
		{
			applies: func(ac *adviceContext) bool {
				spread := ac.result.Inputs.InvestmentReturn.Sub(ac.result.Inputs.HomePriceGrowth)
				return spread.GreaterThan(investSpreadMargin)
			},
			build: func(ac *adviceContext) domain.Recommendation {
				return domain.Recommendation{
					Kind:  domain.RecommendationInfo,
					Title: "Investments outpace home appreciation",
					Text:  "Your assumed investment return exceeds home price growth by more than two points, which favors the renter's portfolio. Stress-test this assumption before committing.",
				}
			},
		},
		{
			applies: func(ac *adviceContext) bool { return ac.context.HighDebt },
			build: func(ac *adviceContext) domain.Recommendation {
				return domain.Recommendation{
					Kind:  domain.RecommendationWarning,
					Title: "High existing debt",
					Text:  "Carrying significant debt into a purchase reduces flexibility and may raise your mortgage rate. Paying debt down first usually beats stretching for a house.",
				}
			},
		},
		{
			applies: func(ac *adviceContext) bool { return ac.context.UnstableJob },
			build: func(ac *adviceContext) domain.Recommendation {
				return domain.Recommendation{
					Kind:  domain.RecommendationWarning,
					Title: "Income stability matters more than math",
					Text:  "With uncertain income, renting preserves the option to relocate or downsize quickly. Owning concentrates risk in a single illiquid asset.",
				}
			},
		},
	}
}

// confidenceScore maps the size of the wealth gap (relative to total cash
// moved) and the horizon length onto [0,100]. Larger gaps and longer
// horizons both increase confidence; the mapping is monotonic in each.
func confidenceScore(result *domain.SimulationResult) int {
	denom := decimal.Max(result.TotalOwnCashSpent, result.TotalRentCashSpent)
	if !denom.IsPositive() {
		return 0
	}
	ratio := result.WealthAdvantage.Abs().Div(denom).InexactFloat64()

	horizon := result.Inputs.YearsHorizon
	if horizon > 20 {
		horizon = 20
	}
	horizonWeight := 0.6 + 0.4*float64(horizon)/20

	score := int(ratio * 300 * horizonWeight)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func formatDollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
