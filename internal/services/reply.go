package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mcoutinho/finbot-backend/internal/dto"
	"github.com/mcoutinho/finbot-backend/internal/models"
)

// Reply formatting: pure rendering of interpreter/report outcomes into the
// chat messages the user sees. No business logic lives here.

var monthNamesPT = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func HelpReply() string {
	return "Comandos disponíveis:\n\n" +
		"• Registrar despesa: '50 no mercado'\n" +
		"• Registrar receita: 'recebi 1000 salário'\n" +
		"• Relatório: 'relatório de hoje' ou 'relatório do mês'\n" +
		"• Ver dashboard: 'dashboard'\n" +
		"• Apagar transação: 'apagar [ID da transação]'"
}

func DashboardReply(dashboardURL, accountID string) string {
	return fmt.Sprintf("Acompanhe suas finanças no dashboard:\n%s?userId=%s", dashboardURL, accountID)
}

func SavedReply(tx *models.Transaction) string {
	kind := "Receita"
	if tx.Kind == models.KindExpense {
		kind = "Gasto"
	}
	return fmt.Sprintf("Transação salva com sucesso!\nDetalhes:\n- Tipo: %s\n- Valor: R$ %.2f\n- Descrição: %s\n- Categoria: %s\n- ID: %s",
		kind, tx.Amount, tx.Description, tx.Category, tx.ID)
}

func ReportReply(period ReportPeriod, now time.Time, summary dto.Summary) string {
	var b strings.Builder

	b.WriteString(reportTitle(period, now))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Gasto total: R$ %.2f\n\n", summary.TotalExpenses)

	if len(summary.CategorySummary) == 0 {
		b.WriteString("Nenhum gasto encontrado neste período.")
		return b.String()
	}

	categories := make([]string, 0, len(summary.CategorySummary))
	for category := range summary.CategorySummary {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(&b, "- %s: R$ %.2f\n", category, summary.CategorySummary[category])
	}
	return strings.TrimRight(b.String(), "\n")
}

func DeletedReply(tx *models.Transaction) string {
	return fmt.Sprintf("Transação %s excluída com sucesso.", tx.ID)
}

func NotFoundReply() string {
	return "Transação não encontrada. Verifique o ID e tente novamente."
}

func UnrecognizedReply() string {
	return "Não entendi sua solicitação. Envie 'ajuda' para ver a lista de comandos."
}

func reportTitle(period ReportPeriod, now time.Time) string {
	switch period {
	case PeriodMonth:
		return fmt.Sprintf("Relatório do Mês de %s", monthNamesPT[now.Month()-1])
	case PeriodWeek:
		return "Relatório dos Últimos 7 Dias"
	default:
		return fmt.Sprintf("Relatório de Hoje, %s", now.Format("02/01/2006"))
	}
}
