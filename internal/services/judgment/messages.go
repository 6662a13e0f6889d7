package judgment

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

const (
	helpText = "Comandos disponiveis:\n" +
		"- `!julgar`: inicia o julgamento com lista de usuarios.\n" +
		"- `!julgar-regras`: mostra as regras do jogo."

	rulesText = "Regras do !julgar:\n" +
		"1. Use `!julgar` para escolher um usuario da lista.\n" +
		"2. Escolha a acao: kick/castigo(10min)/mute(10min)/disconnect do canal ADM.\n" +
		"3. Escolha um numero de 1 a 10.\n" +
		"4. O bot sorteia outro numero de 1 a 10.\n" +
		"5. Se os numeros baterem, a acao vai no usuario escolhido.\n" +
		"6. Se nao baterem, a acao volta para voce."
)

func alreadyInProgressText(userID string) string {
	return models.MentionUser(userID) + " voce ja possui uma selecao em andamento. Responda com um numero de 1 a 5."
}

func failureText(userID string) string {
	return models.MentionUser(userID) + " nao foi possivel processar o julgamento agora. Tente novamente mais tarde."
}

func noCandidatesText(userID string) string {
	return models.MentionUser(userID) + " nao encontrei usuarios para julgamento neste servidor."
}

func targetPromptText(userID string, candidates []*models.Member) string {
	lines := make([]string, 0, len(candidates)+1)
	lines = append(lines, fmt.Sprintf("%s escolha quem deve ser julgado (1-%d):", models.MentionUser(userID), len(candidates)))
	for i, member := range candidates {
		lines = append(lines, fmt.Sprintf("%d. %s (id: %s)", i+1, member.Tag(), member.ID))
	}
	return strings.Join(lines, "\n")
}

func targetInvalidText(userID string, n int) string {
	return fmt.Sprintf("%s resposta invalida. Escolha um numero entre 1 e %d.", models.MentionUser(userID), n)
}

func targetTimeoutText(userID string) string {
	return models.MentionUser(userID) + " tempo esgotado. Envie `!julgar` novamente para tentar."
}

func targetChosenText(userID string, target *models.Member) string {
	return fmt.Sprintf("%s voce escolheu **%s** para julgamento.", models.MentionUser(userID), target.Tag())
}

func actionPromptText(userID string, target *models.Member) string {
	return fmt.Sprintf("%s escolha a acao para **%s**:\n", models.MentionUser(userID), target.Tag()) +
		"1. kick\n" +
		"2. castigo (10 minutos)\n" +
		"3. mute (10 minutos)\n" +
		"4. disconnect do canal ADM"
}

func actionInvalidText(userID string) string {
	return models.MentionUser(userID) + " resposta invalida. Escolha 1-4 (kick/castigo/mute/disconnect)."
}

func actionTimeoutText(userID string) string {
	return models.MentionUser(userID) + " tempo esgotado para escolher a acao. Envie `!julgar` novamente para tentar."
}

func numberPromptText(userID string) string {
	return models.MentionUser(userID) + " agora escolha seu numero da sorte (1-10)."
}

func numberInvalidText(userID string) string {
	return models.MentionUser(userID) + " resposta invalida. Escolha um numero entre 1 e 10."
}

func numberTimeoutText(userID string) string {
	return models.MentionUser(userID) + " tempo esgotado para escolher o numero. Envie `!julgar` novamente para tentar."
}

func luckText(draw models.OutcomeDraw) string {
	verdict := "Sem sorte! A acao voltou para voce."
	if draw.Matched {
		verdict = "Sorte! Seu desejo foi realizado."
	}
	return fmt.Sprintf("Numero escolhido: **%d** | numero sorteado: **%d**.\n%s", draw.Chosen, draw.Rolled, verdict)
}
