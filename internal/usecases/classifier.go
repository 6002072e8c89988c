package usecases

import "resolution-desk.backend/internal/domain/entities"

type severityRule struct {
	tier     entities.SeverityTier
	keywords []string
	base     int
}

// Rules are checked in priority order; the first tier with any match wins.
var severityRules = []severityRule{
	{entities.SeverityCritical, []string{"spill", "damaged", "spoiled", "inedible", "leaked", "crushed"}, 100},
	{entities.SeverityHigh, []string{"wrong", "missing", "cold", "bad quality", "poor quality", "stale", "undercooked"}, 75},
	{entities.SeverityMedium, []string{"late", "delay", "slow"}, 50},
}

const standardBase = 25

var (
	angerWords       = []string{"angry", "furious", "outraged", "unacceptable", "ridiculous", "worst", "terrible"}
	frustrationWords = []string{"frustrated", "annoyed", "disappointed", "upset", "fed up"}
	repeatWords      = []string{"again", "every time", "always", "second time", "third time", "keeps happening", "repeatedly"}

	driverWords     = []string{"driver", "rider", "delivery partner", "delivery guy", "delivery boy"}
	restaurantWords = []string{"restaurant", "merchant", "kitchen", "chef"}
)

const (
	angerBonus       = 15
	frustrationBonus = 10
	repeatBonus      = 20
)

// categoryByKeyword maps the matched HIGH keyword onto an issue category
var categoryByKeyword = map[string]entities.IssueCategory{
	"wrong":        entities.IssueWrongOrder,
	"missing":      entities.IssueMissingItems,
	"cold":         entities.IssueColdFood,
	"bad quality":  entities.IssueQuality,
	"poor quality": entities.IssueQuality,
	"stale":        entities.IssueQuality,
	"undercooked":  entities.IssueQuality,
}

type categoryProfile struct {
	impact      string
	action      string
	responsible entities.Party
	clears      bool
	mediation   bool
	finding     string
}

var categoryProfiles = map[entities.IssueCategory]categoryProfile{
	entities.IssueFoodDamage: {
		impact:      "Order is unusable: the food arrived damaged or spoiled",
		action:      "Full refund with a replacement or reorder offer",
		responsible: entities.PartyMerchant,
		clears:      true,
		finding:     "Packaging failure at the restaurant; the seal was not secure for transit",
	},
	entities.IssueWrongOrder: {
		impact:      "Customer received items they did not order",
		action:      "Refund the order and offer a priority reorder",
		responsible: entities.PartyMerchant,
		clears:      true,
		finding:     "Restaurant packed the wrong items; the driver delivered the sealed bag as handed over",
	},
	entities.IssueMissingItems: {
		impact:      "Part of the order never arrived",
		action:      "Refund the missing items and offer to resend them",
		responsible: entities.PartyMerchant,
		clears:      true,
		finding:     "Items were missing from the sealed bag at pickup",
	},
	entities.IssueColdFood: {
		impact:      "Food arrived cold and below serving standard",
		action:      "Partial refund and credit while the hand-off is reviewed",
		responsible: entities.PartyShared,
		mediation:   true,
		finding:     "Temperature loss could stem from preparation wait or transit time",
	},
	entities.IssueQuality: {
		impact:      "Food quality fell below the restaurant's standard",
		action:      "Refund and raise a quality report with the restaurant",
		responsible: entities.PartyMerchant,
		finding:     "Preparation quality issue at the restaurant",
	},
	entities.IssueLateDelivery: {
		impact:      "Delivery arrived later than promised",
		action:      "Apologise and offer delay compensation credit",
		responsible: entities.PartyExternal,
		clears:      true,
		finding:     "Delay attributed to traffic and route conditions outside the driver's control",
	},
	entities.IssueGeneral: {
		impact:      "General service concern without a specific defect",
		action:      "Acknowledge the concern and offer a goodwill gesture",
		responsible: entities.PartyNone,
		finding:     "No specific fault identified",
	},
}

func matchTier(folded string) (severityRule, string, bool) {
	for _, rule := range severityRules {
		if kw, ok := firstMatch(folded, rule.keywords); ok {
			return rule, kw, true
		}
	}
	return severityRule{}, "", false
}

// AnalyzeSituation tiers the complaint and attributes responsibility.
// The result depends only on text.
func AnalyzeSituation(text string) entities.Situation {
	folded := foldText(text)

	category := entities.IssueGeneral
	tier := entities.SeverityStandard
	if rule, kw, ok := matchTier(folded); ok {
		tier = rule.tier
		switch tier {
		case entities.SeverityCritical:
			category = entities.IssueFoodDamage
		case entities.SeverityHigh:
			category = categoryByKeyword[kw]
		case entities.SeverityMedium:
			category = entities.IssueLateDelivery
		}
	}

	profile := categoryProfiles[category]
	situation := entities.Situation{
		Tier:              tier,
		Category:          category,
		Impact:            profile.impact,
		RecommendedAction: profile.action,
		Responsible:       profile.responsible,
		NeedsMediation:    profile.mediation,
		ClearsDriver:      profile.clears,
		Finding:           profile.finding,
	}

	// both sides named in the complaint means the customer is disputing between them
	if containsAny(folded, driverWords) && containsAny(folded, restaurantWords) && tier != entities.SeverityStandard {
		situation.NeedsMediation = true
	}
	return situation
}

// ScoreSeverity computes the additive severity score. It is not capped at 100.
func ScoreSeverity(text string) entities.SeverityScore {
	folded := foldText(text)

	score := entities.SeverityScore{Base: standardBase}
	if rule, _, ok := matchTier(folded); ok {
		score.Base = rule.base
	}

	if containsAny(folded, angerWords) {
		score.AngerBonus = angerBonus
	} else if containsAny(folded, frustrationWords) {
		score.FrustrationBonus = frustrationBonus
	}
	if containsAny(folded, repeatWords) {
		score.RepeatBonus = repeatBonus
	}

	score.Total = score.Base + score.AngerBonus + score.FrustrationBonus + score.RepeatBonus
	return score
}
