package usecases

import (
	"regexp"
	"strings"

	"resolution-desk.backend/internal/domain/entities"
)

var orderContextWords = []string{
	"order", "ordered", "item", "items", "paid", "pay", "price", "cost", "rupees",
	"restaurant", "merchant", "food", "meal",
	"pizza", "burger", "biryani", "drink", "coffee", "dish",
}

// currency symbols and "rs" only count next to an amount, so "hours" or "worst" do not
var currencyAmount = regexp.MustCompile(`(?:₹|\$|\brs\.?|\brupees?)\s*\d|\d\s*(?:₹|\$|rs\b|rupees?\b)`)

var issueContextWords = []string{
	"wrong", "late", "cold", "missing", "spilled", "spill",
	"quality", "damaged", "delay", "stale", "broken",
}

// MissingEvidenceFields is reported, in this order, whenever the gate is closed
var MissingEvidenceFields = []string{
	"items ordered",
	"amount paid",
	"problem type",
	"merchant name",
	"timing",
}

const evidencePrompt = "To resolve this quickly, please tell me what you ordered, how much you paid, " +
	"what went wrong, which restaurant it was from and roughly when it arrived."

func mentionsOrder(folded string) bool {
	return containsAny(folded, orderContextWords) || currencyAmount.MatchString(folded)
}

// evidenceText is the folded text and image description that every
// decision about a complaint reads
func evidenceText(text, imageDescription string) string {
	if blankOrSentinel(text) {
		text = ""
	}
	if blankOrSentinel(imageDescription) {
		imageDescription = ""
	}
	return foldText(strings.TrimSpace(text + " " + imageDescription))
}

// CollectEvidence decides whether a complaint carries enough detail to act on.
// It has no side effects; both order and issue vocabulary must be present.
func CollectEvidence(text, imageDescription string) entities.EvidenceResult {
	if blankOrSentinel(text) {
		text = ""
	}
	if blankOrSentinel(imageDescription) {
		imageDescription = ""
	}

	combined := evidenceText(text, imageDescription)
	if combined != "" && mentionsOrder(combined) && containsAny(combined, issueContextWords) {
		summary := strings.TrimSpace(text)
		if imageDescription != "" {
			if summary != "" {
				summary += " | "
			}
			summary += "Image evidence: " + strings.TrimSpace(imageDescription)
		}
		return entities.EvidenceResult{Ready: true, IssueSummary: summary}
	}

	missing := make([]string, len(MissingEvidenceFields))
	copy(missing, MissingEvidenceFields)
	return entities.EvidenceResult{
		Ready:         false,
		MissingFields: missing,
		Prompt:        evidencePrompt,
	}
}
