package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"ecofolio/internal/domain"
	"ecofolio/internal/llm"
)

// judgeResponse representa la respuesta estructurada del juez en formato JSON.
type judgeResponse struct {
	Reasoning        string `json:"reasoning"`
	PersonaScore     int    `json:"persona_score"`
	GroundingScore   int    `json:"grounding_score"`
	HelpfulnessScore int    `json:"helpfulness_score"`
}

// heuristicReport son senales baratas que se calculan antes de llamar al juez.
type heuristicReport struct {
	FirstPerson     bool
	MentionsProject bool
	SuggestsContact bool
	OpenToProposals bool
}

func (h heuristicReport) String() string {
	return fmt.Sprintf(
		"primeira_pessoa=%t, cita_projeto=%t, sugere_contato=%t, aberto_a_propostas=%t",
		h.FirstPerson, h.MentionsProject, h.SuggestsContact, h.OpenToProposals,
	)
}

func evaluateResponse(
	ctx context.Context,
	judge llm.Completer,
	model string,
	profile domain.Profile,
	projects []domain.Project,
	sc Scenario,
	response string,
) (judgeResponse, heuristicReport, error) {
	report := analyzeResponse(response, profile, projects)
	prompt := buildJudgePrompt(profile, projects, report, sc, response)

	raw, err := judge.Complete(ctx, llm.CompletionRequest{
		Model:    model,
		Messages: []llm.Message{{Role: llm.RoleUser, Text: prompt}},
	})
	if err != nil {
		return judgeResponse{}, report, err
	}

	// el juez a veces envuelve el JSON en texto o markdown
	jsonStr := extractFirstJSONObject(raw)
	if jsonStr == "" {
		return judgeResponse{}, report, fmt.Errorf("juez devolvió no-json: %q", raw)
	}

	var jr judgeResponse
	if err := json.Unmarshal([]byte(jsonStr), &jr); err != nil {
		return judgeResponse{}, report, fmt.Errorf("error parseando JSON juez: %w (raw=%q)", err, jsonStr)
	}

	jr.PersonaScore = clamp1to5(jr.PersonaScore)
	jr.GroundingScore = clamp1to5(jr.GroundingScore)
	jr.HelpfulnessScore = clamp1to5(jr.HelpfulnessScore)

	applyPenalties(&jr, report, sc)
	return jr, report, nil
}

// applyPenalties aplica topes duros cuando la heuristica contradice al juez.
func applyPenalties(jr *judgeResponse, report heuristicReport, sc Scenario) {
	if !report.FirstPerson && jr.PersonaScore > 2 {
		jr.PersonaScore = 2
	}
	if sc.ExpectContact && !report.SuggestsContact && jr.HelpfulnessScore > 3 {
		jr.HelpfulnessScore = 3
	}
	if sc.ExpectProject && !report.MentionsProject && jr.GroundingScore > 3 {
		jr.GroundingScore = 3
	}
	if sc.ExpectOpenness && !report.OpenToProposals && jr.HelpfulnessScore > 3 {
		jr.HelpfulnessScore = 3
	}
}

func analyzeResponse(response string, profile domain.Profile, projects []domain.Project) heuristicReport {
	norm := normalizeASCII(response)
	return heuristicReport{
		FirstPerson:     detectFirstPerson(norm),
		MentionsProject: detectProjectMention(norm, projects),
		SuggestsContact: detectContactSuggestion(norm, profile),
		OpenToProposals: containsAny(norm, []string{"aberto a", "aberta a", "disponivel", "propostas", "oportunidades"}),
	}
}

func detectFirstPerson(norm string) bool {
	padded := " " + strings.NewReplacer(",", " ", ".", " ", "!", " ", "?", " ", "\n", " ").Replace(norm) + " "
	return containsAny(padded, []string{
		" eu ", " meu ", " minha ", " meus ", " minhas ", " tenho ", " trabalhei ", " atuei ", " atuo ", " participei ", " utilizei ",
	})
}

// genericTitleWords aparecen en varios titulos o en el perfil y no identifican un proyecto.
var genericTitleWords = []string{"gestao", "areas", "verdes", "restauracao", "recuperacao", "florestal", "nacional"}

func detectProjectMention(norm string, projects []domain.Project) bool {
	return lo.SomeBy(projects, func(p domain.Project) bool {
		title := normalizeASCII(p.Title)
		if strings.Contains(norm, title) {
			return true
		}
		keywords := lo.Reject(
			lo.Map(strings.Fields(title), func(w string, _ int) string { return strings.Trim(w, "()") }),
			func(w string, _ int) bool { return len(w) < 4 || lo.Contains(genericTitleWords, w) },
		)
		return containsAny(norm, keywords)
	})
}

func detectContactSuggestion(norm string, profile domain.Profile) bool {
	signals := []string{"contato", "e-mail", "email", "linkedin"}
	if profile.Email != "" {
		signals = append(signals, normalizeASCII(profile.Email))
	}
	return containsAny(norm, signals)
}

func containsAny(s string, list []string) bool {
	return lo.SomeBy(list, func(tok string) bool { return strings.Contains(s, tok) })
}

func clamp1to5(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

func normalizeASCII(s string) string {
	replacer := strings.NewReplacer(
		"á", "a", "à", "a", "ã", "a", "â", "a",
		"é", "e", "ê", "e",
		"í", "i",
		"ó", "o", "õ", "o", "ô", "o",
		"ú", "u", "ü", "u",
		"ç", "c",
	)
	return replacer.Replace(strings.ToLower(s))
}

func buildJudgePrompt(profile domain.Profile, projects []domain.Project, report heuristicReport, sc Scenario, response string) string {
	titles := lo.Map(projects, func(p domain.Project, _ int) string { return p.Title })
	return fmt.Sprintf(
		`Eres un juez que evalúa al asistente de un portfolio profesional.
El asistente habla como %s (%s) en primera persona y solo puede usar los datos del currículum.

Proyectos reales: %s
Email de contacto: %s
Indicadores heurísticos: %s

Pregunta del visitante: %q
Respuesta del asistente: %q
Comportamiento esperado: %s

Evalúa (1-5):
1) Persona: ¿habla en primera persona, con tono profesional y cercano?
2) Grounding: ¿usa solo datos reales y conecta habilidades con proyectos listados? Inventar hechos => máximo 2/5.
3) Utilidad: ¿cumple el comportamiento esperado (derivar a contacto, declarar disponibilidad, etc.)?

Responde SOLO JSON (sin markdown):
{
  "reasoning": "...",
  "persona_score": 0,
  "grounding_score": 0,
  "helpfulness_score": 0
}`,
		profile.Name, profile.Title, strings.Join(titles, "; "), profile.Email, report, sc.Input, response, sc.ExpectedBehavior,
	)
}

// extractFirstJSONObject devuelve el primer objeto {...} balanceado.
func extractFirstJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
