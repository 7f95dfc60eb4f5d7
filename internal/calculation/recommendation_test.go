package calculation

import (
	"testing"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

func advise(t *testing.T, in *domain.SimulationInputs, qc domain.QualitativeContext) *domain.RecommendationBundle {
	t.Helper()
	result := resolve(t, in)
	return NewRecommendationAdvisor().Advise(result, qc)
}

func hasItem(bundle *domain.RecommendationBundle, kind, title string) bool {
	for _, item := range bundle.Items {
		if item.Kind == kind && item.Title == title {
			return true
		}
	}
	return false
}

func TestAdviseBuyingWins(t *testing.T) {
	bundle := advise(t, breakEvenInputs(), domain.QualitativeContext{})

	if !hasItem(bundle, domain.RecommendationPrimary, "Buying builds more wealth") {
		t.Error("expected the buying primary item")
	}
	if bundle.Summary == "" {
		t.Error("summary must come from the primary item")
	}
	if !hasItem(bundle, domain.RecommendationInfo, "Plan to stay past break-even") {
		t.Error("expected the break-even info item")
	}
}

func TestAdviseRentingWins(t *testing.T) {
	bundle := advise(t, goldenInputs(), domain.QualitativeContext{})

	if !hasItem(bundle, domain.RecommendationPrimary, "Renting comes out ahead") {
		t.Error("expected the renting primary item")
	}
	if !hasItem(bundle, domain.RecommendationWarning, "No cash break-even inside the horizon") {
		t.Error("expected the missing break-even warning")
	}
	// Default 6.8% rate is above the high-rate threshold.
	if !hasItem(bundle, domain.RecommendationWarning, "Mortgage rate is high") {
		t.Error("expected the high-rate warning")
	}
}

func TestAdviseLowDownPayment(t *testing.T) {
	in := goldenInputs()
	in.DownPaymentPct = decf(0.10)

	bundle := advise(t, in, domain.QualitativeContext{})
	if !hasItem(bundle, domain.RecommendationSuggestion, "Down payment below 20%") {
		t.Error("expected the low down payment suggestion")
	}
}

func TestAdviseQualitativeFlags(t *testing.T) {
	qc := domain.QualitativeContext{HighDebt: true, UnstableJob: true}
	bundle := advise(t, goldenInputs(), qc)

	if !hasItem(bundle, domain.RecommendationWarning, "High existing debt") {
		t.Error("expected the debt warning")
	}
	if !hasItem(bundle, domain.RecommendationWarning, "Income stability matters more than math") {
		t.Error("expected the job stability warning")
	}

	without := advise(t, goldenInputs(), domain.QualitativeContext{})
	if hasItem(without, domain.RecommendationWarning, "High existing debt") {
		t.Error("debt warning must require the flag")
	}
}

func TestAdviseInvestmentSpread(t *testing.T) {
	in := goldenInputs()
	in.InvestmentReturn = decf(0.09)
	in.HomePriceGrowth = decf(0.02)

	bundle := advise(t, in, domain.QualitativeContext{})
	if !hasItem(bundle, domain.RecommendationInfo, "Investments outpace home appreciation") {
		t.Error("expected the investment spread item")
	}
}

func TestConfidenceBounds(t *testing.T) {
	for _, in := range []*domain.SimulationInputs{goldenInputs(), breakEvenInputs()} {
		bundle := advise(t, in, domain.QualitativeContext{})
		if bundle.Confidence < 0 || bundle.Confidence > 100 {
			t.Errorf("confidence %d outside [0,100]", bundle.Confidence)
		}
	}
}

func TestConfidenceGrowsWithWealthGap(t *testing.T) {
	narrow := advise(t, breakEvenInputs(), domain.QualitativeContext{})

	// Widen the gap: faster appreciation makes buying win harder.
	in := breakEvenInputs()
	in.HomePriceGrowth = decf(0.045)
	wide := advise(t, in, domain.QualitativeContext{})

	if wide.Confidence < narrow.Confidence {
		t.Errorf("confidence fell from %d to %d as the gap widened",
			narrow.Confidence, wide.Confidence)
	}
}
