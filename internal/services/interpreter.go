package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mcoutinho/finbot-backend/internal/models"
)

// Action is what one chat message asks the system to do. Handlers switch
// over the concrete types; order of interpretation is fixed in Interpret.
type Action interface {
	isAction()
}

type ShowHelp struct{}

type ShowDashboardLink struct{}

type ShowReport struct {
	Period ReportPeriod
}

type DeleteTransaction struct {
	ID string
}

type RecordTransaction struct {
	Kind        models.TransactionKind
	Amount      float64
	Description string
}

type Unrecognized struct{}

func (ShowHelp) isAction()          {}
func (ShowDashboardLink) isAction() {}
func (ShowReport) isAction()        {}
func (DeleteTransaction) isAction() {}
func (RecordTransaction) isAction() {}
func (Unrecognized) isAction()      {}

// PlaceholderDescription is used when a transaction message carries an
// amount but no trailing text.
const PlaceholderDescription = "Transação"

// amountPattern is the single amount/description extraction rule: the
// first run of digits (with optional comma or dot decimals) is the amount,
// everything after it is the description.
var amountPattern = regexp.MustCompile(`(\d+[.,]?\d*)\s*(.*)`)

var (
	helpKeywords      = []string{"ajuda", "comandos", "help"}
	dashboardKeywords = []string{"dashboard", "painel"}
	reportKeywords    = []string{"relatório", "relatorio", "report"}
	deletePrefixes    = []string{"apagar ", "delete "}
	incomeKeywords    = []string{"recebi", "receita", "ganho", "salário", "salario", "received", "income", "salary"}
)

// Interpret classifies a raw chat message into an Action. It is total:
// malformed input never errors, it degrades to Unrecognized.
func Interpret(raw string) Action {
	msg := strings.ToLower(strings.TrimSpace(raw))
	if msg == "" {
		return Unrecognized{}
	}

	for _, keyword := range helpKeywords {
		if msg == keyword {
			return ShowHelp{}
		}
	}

	for _, keyword := range dashboardKeywords {
		if strings.Contains(msg, keyword) {
			return ShowDashboardLink{}
		}
	}

	for _, keyword := range reportKeywords {
		if strings.Contains(msg, keyword) {
			return ShowReport{Period: reportPeriodFor(msg)}
		}
	}

	for _, prefix := range deletePrefixes {
		if strings.HasPrefix(msg, prefix) {
			if id := firstToken(msg[len(prefix):]); id != "" {
				return DeleteTransaction{ID: id}
			}
			return Unrecognized{}
		}
	}

	return interpretTransaction(raw, msg)
}

func interpretTransaction(raw, msg string) Action {
	match := amountPattern.FindStringSubmatch(raw)
	if match == nil {
		return Unrecognized{}
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
	if err != nil || amount <= 0 {
		return Unrecognized{}
	}

	description := strings.TrimSpace(match[2])
	if description == "" {
		description = PlaceholderDescription
	}

	// The whole message is scanned, not just the text before the number:
	// "50 adiantamento do salário" is income even though it starts like
	// an expense.
	kind := models.KindExpense
	for _, keyword := range incomeKeywords {
		if strings.Contains(msg, keyword) {
			kind = models.KindIncome
			break
		}
	}

	return RecordTransaction{
		Kind:        kind,
		Amount:      amount,
		Description: description,
	}
}

func reportPeriodFor(msg string) ReportPeriod {
	switch {
	case strings.Contains(msg, "mês") || strings.Contains(msg, "mes ") || strings.HasSuffix(msg, "mes") || strings.Contains(msg, "month"):
		return PeriodMonth
	case strings.Contains(msg, "semana") || strings.Contains(msg, "week"):
		return PeriodWeek
	case strings.Contains(msg, "hoje") || strings.Contains(msg, "today"):
		return PeriodToday
	default:
		// no qualifier: today's report, matching the bare "relatório" path
		return PeriodToday
	}
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
