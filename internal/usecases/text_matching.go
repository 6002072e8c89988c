package usecases

import (
	"strings"

	"golang.org/x/text/cases"
)

var nullSentinels = map[string]struct{}{
	"":          {},
	"none":      {},
	"null":      {},
	"nil":       {},
	"undefined": {},
}

// foldText case-folds s for keyword matching. A Caser keeps state, so one is built per call.
func foldText(s string) string {
	return cases.Fold().String(s)
}

// blankOrSentinel reports whether s carries no information
func blankOrSentinel(s string) bool {
	_, ok := nullSentinels[foldText(strings.TrimSpace(s))]
	return ok
}

// firstMatch returns the first keyword contained in folded text
func firstMatch(folded string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return kw, true
		}
	}
	return "", false
}

func containsAny(folded string, keywords []string) bool {
	_, ok := firstMatch(folded, keywords)
	return ok
}
