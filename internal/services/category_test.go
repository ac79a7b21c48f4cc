package services

import (
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"compras no mercado", "Alimentação"},
		{"almoço no restaurante", "Alimentação"},
		{"uber para o trabalho", "Transporte"},
		{"combustível do carro", "Transporte"},
		{"remédio na farmácia", "Saúde"},
		{"consulta com médico", "Saúde"},
		{"salário do mês", "Trabalho"},
		{"pagamento freelance", "Trabalho"},
		{"aluguel do apartamento", "Contas"},
		{"conta de luz", "Contas"},
		{"presente de aniversário", "Outros"},
		{"", "Outros"},
	}

	for _, tc := range cases {
		if got := Classify(tc.description); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.description, got, tc.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("MERCADO Central"); got != "Alimentação" {
		t.Fatalf("expected Alimentação, got %q", got)
	}
	if got := Classify("UBER"); got != "Transporte" {
		t.Fatalf("expected Transporte, got %q", got)
	}
}

func TestClassifyRuleOrderWins(t *testing.T) {
	// "mercado" (rule 1) and "transporte" (rule 2) both match; the
	// earliest declared rule decides.
	if got := Classify("transporte até o mercado"); got != "Alimentação" {
		t.Fatalf("expected Alimentação, got %q", got)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	first := Classify("padaria da esquina")
	for i := 0; i < 5; i++ {
		if got := Classify("padaria da esquina"); got != first {
			t.Fatalf("classification changed between calls: %q vs %q", first, got)
		}
	}
}
