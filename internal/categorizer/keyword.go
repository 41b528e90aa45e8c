package categorizer

import (
	"strings"

	"fjacquet/orcamento/internal/models"
)

// Classify returns the first category, in rule order, owning a keyword that
// occurs in the lowercased title. Lowercasing is Unicode-aware, so "ÇAFÉ"
// becomes "çafé"; accents themselves are kept. Keywords are tried in list order and
// compared as given, so rules are expected to hold lowercase keywords.
// A title matching nothing, including the empty title, is "Outros".
func Classify(title string, ruleSet models.KeywordRuleSet) string {
	category, _ := matchTitle(title, ruleSet)
	return category
}

// matchTitle returns the winning category and keyword. The keyword is empty
// when nothing matched.
func matchTitle(title string, ruleSet models.KeywordRuleSet) (string, string) {
	lowered := strings.ToLower(title)
	for _, rule := range ruleSet {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Name, keyword
			}
		}
	}
	return models.CategoryOther, ""
}
