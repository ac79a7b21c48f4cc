package services

import (
	"strings"
)

// CategoryOther is the fallback label when no rule matches.
const CategoryOther = "Outros"

type categoryRule struct {
	label    string
	keywords []string
}

// Rule order matters: keywords can overlap categories and the earliest
// declared rule wins.
var categoryRules = []categoryRule{
	{"Alimentação", []string{"mercado", "supermercado", "padaria", "restaurante"}},
	{"Transporte", []string{"combustível", "uber", "transporte", "ônibus"}},
	{"Saúde", []string{"remédio", "farmácia", "médico", "hospital"}},
	{"Trabalho", []string{"salário", "freelance", "pagamento"}},
	{"Contas", []string{"aluguel", "luz", "água", "internet"}},
}

// Classify maps a free-text description to a category label. Pure and
// total: case-insensitive substring matching, first matching rule wins,
// unknown text falls through to CategoryOther.
func Classify(description string) string {
	desc := strings.ToLower(description)

	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(desc, keyword) {
				return rule.label
			}
		}
	}
	return CategoryOther
}
