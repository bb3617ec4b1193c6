package bot

// User-facing reply texts. Kept together so the conversational voice stays
// consistent across states.
const (
	replyGreeting = "🌟 Olá! ✈️ Eu sou o vIAjante, seu assistente de viagens.\n\n" +
		"Pra começar, pra qual *país* você quer viajar?"

	replyRestart = "🔄 Certo! Vamos começar uma nova viagem. Para onde na Europa você quer viajar?"

	replyInvalidDestination = "❌ *País não reconhecido* 😟\n" +
		"Por favor, informe um *país europeu válido* (ex: Itália, França...)."

	replyAskDates = "✈️ *%s é uma ótima escolha!* \n" +
		"Agora me conta: *quando* você vai viajar?\n\n" +
		"📅 Por favor, informe as datas no formato: `DD/MM a DD/MM`"

	replyInvalidDates = "❌ *Formato incorreto* ⚠️\nPor favor, use o formato: `DD/MM a DD/MM`."

	replyAskBudget = "💰 *Quase lá!* Agora me fale sobre o orçamento total da viagem em Reais (R$):"

	replyInvalidBudget = "❌ *Valor inválido* ⚠️\nPor favor, informe um valor numérico válido (ex: 15000)."

	replyConfirmGenerate = "⏱️ *Perfeito! Estou preparando seu roteiro para %s...*\n" +
		"Isso pode levar alguns segundos. Para continuar e gerar, pode me mandar um `ok`."

	replyGenerationFailed = "😥 *Tive um problema para gerar seu roteiro:* %v\n\n" +
		"🔄 Vamos tentar de novo do começo. Para onde na Europa você quer viajar?"

	replyReady = "🎉 *Seu roteiro para %s está pronto!*\n\n%s\n\n" +
		"📄 Digite `pdf` ou 📊 `csv` para baixar o arquivo, ou `reiniciar` para começar de novo."

	replyReadyDegraded = "🎉 *Roteiro gerado!* Mas não consegui montar o resumo do itinerário em tabela. 😕\n\n%s\n\n" +
		"Digite `reiniciar` para tentar de novo."

	replyPDFReady = "📄 *Seu PDF está pronto!* ✅\nClique para baixar: %s"

	replyCSVReady = "📊 *Seu arquivo CSV está pronto!* ✅\nClique para baixar: %s"

	replyPDFIncomplete = "❌ Desculpe, não consegui gerar o PDF. O itinerário parece incompleto."

	replyCSVIncomplete = "❌ Desculpe, não consegui gerar o CSV. O itinerário parece incompleto."

	replyExportFailed = "❌ Desculpe, algo deu errado ao gerar o arquivo. Tente novamente em instantes."

	replyUnknownCommand = "🤔 Não entendi... Digite `pdf`, `csv` ou `reiniciar`."

	replyInternalError = "😵 Desculpe, encontrei um erro interno. Digite `reiniciar` para começar de novo."
)
