package llm

import (
	"fmt"

	"github.com/viajante-ai/trip-planner/internal/itinerary"
)

// BuildItineraryPrompt assembles the generation prompt from the collected
// trip fields. The prompt pins the table columns to the extractor's canonical
// header, though the service may still ignore it.
func BuildItineraryPrompt(destination, dateRange, budget string) string {
	return fmt.Sprintf(`Você é um agente de viagens especializado em roteiros pela Europa.

Monte um roteiro de viagem dia a dia com os seguintes dados:
- Destino: %s
- Datas: %s
- Orçamento total: %s

A resposta DEVE conter uma tabela em Markdown com exatamente as colunas
%s | %s | %s, uma linha por dia da viagem, usando datas no formato
curto (ex: 15-ago). Depois da tabela, escreva um resumo em texto corrido
com dicas de passeios, alimentação e transporte dentro do orçamento.`,
		destination, dateRange, budget,
		itinerary.ColumnDate, itinerary.ColumnDay, itinerary.ColumnLocation)
}
