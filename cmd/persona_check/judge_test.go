package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ecofolio/internal/config"
	"ecofolio/internal/domain"
	"ecofolio/internal/llm"
	"ecofolio/internal/portfolio"
)

func TestExtractFirstJSONObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json plano", `{"a":1}`, `{"a":1}`},
		{"con texto alrededor", "Claro:\n```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`},
		{"sin objeto", "nada", ""},
		{"desbalanceado", `{"a":1`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractFirstJSONObject(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestClamp1to5(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 3: 3, 5: 5, 10: 5} {
		if got := clamp1to5(in); got != want {
			t.Fatalf("clamp1to5(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestAnalyzeResponse(t *testing.T) {
	store := portfolio.Default()
	profile := store.Profile()
	projects := store.Projects()

	t.Run("primera persona con proyecto", func(t *testing.T) {
		r := analyzeResponse("Sim, eu utilizei QGIS nos diagnósticos do Rio Doce.", profile, projects)
		if !r.FirstPerson || !r.MentionsProject {
			t.Fatalf("unexpected report: %+v", r)
		}
	})

	t.Run("tercera persona sin proyecto", func(t *testing.T) {
		r := analyzeResponse("Rafael é Engenheiro Florestal.", profile, projects)
		if r.FirstPerson || r.MentionsProject {
			t.Fatalf("unexpected report: %+v", r)
		}
	})

	t.Run("sugiere contacto por email", func(t *testing.T) {
		r := analyzeResponse("Não tenho essa informação, escreva para "+profile.Email, profile, projects)
		if !r.SuggestsContact {
			t.Fatalf("expected contact suggestion: %+v", r)
		}
	})

	t.Run("abierto a propuestas", func(t *testing.T) {
		r := analyzeResponse("Estou aberto a propostas desafiadoras!", profile, projects)
		if !r.OpenToProposals {
			t.Fatalf("expected openness: %+v", r)
		}
	})
}

func TestApplyPenalties(t *testing.T) {
	jr := judgeResponse{PersonaScore: 5, GroundingScore: 5, HelpfulnessScore: 5}
	applyPenalties(&jr, heuristicReport{}, Scenario{ExpectContact: true, ExpectProject: true})

	if jr.PersonaScore != 2 {
		t.Fatalf("expected persona capped at 2, got %d", jr.PersonaScore)
	}
	if jr.GroundingScore != 3 || jr.HelpfulnessScore != 3 {
		t.Fatalf("expected grounding/helpfulness capped at 3, got %d/%d", jr.GroundingScore, jr.HelpfulnessScore)
	}
}

func TestEvaluateResponse(t *testing.T) {
	store := portfolio.Default()
	sc := Scenario{Input: "Você sabe usar QGIS?", ExpectProject: true}

	t.Run("parsea y clampa la respuesta del juez", func(t *testing.T) {
		judge := &llm.MockClient{Response: "Resultado:\n{\"reasoning\":\"ok\",\"persona_score\":9,\"grounding_score\":4,\"helpfulness_score\":0}"}
		jr, report, err := evaluateResponse(context.Background(), judge, "m", store.Profile(), store.Projects(), sc,
			"Sim, tenho experiência e utilizei QGIS no Rio Doce.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if jr.PersonaScore != 5 || jr.GroundingScore != 4 || jr.HelpfulnessScore != 1 {
			t.Fatalf("unexpected scores: %+v", jr)
		}
		if !report.MentionsProject {
			t.Fatalf("expected project mention")
		}

		reqs := judge.Requests()
		if len(reqs) != 1 || reqs[0].Model != "m" {
			t.Fatalf("unexpected judge requests: %+v", reqs)
		}
		prompt := reqs[0].Messages[0].Text
		if !strings.Contains(prompt, "Você sabe usar QGIS?") || !strings.Contains(prompt, store.Profile().Email) {
			t.Fatalf("prompt missing context: %s", prompt)
		}
	})

	t.Run("juez sin json", func(t *testing.T) {
		judge := &llm.MockClient{Response: "no sé"}
		if _, _, err := evaluateResponse(context.Background(), judge, "", store.Profile(), nil, sc, "x"); err == nil {
			t.Fatalf("expected error for non-json judge output")
		}
	})

	t.Run("error del juez", func(t *testing.T) {
		judge := &llm.MockClient{Err: errors.New("down")}
		if _, _, err := evaluateResponse(context.Background(), judge, "", domain.Profile{}, nil, sc, "x"); err == nil {
			t.Fatalf("expected judge error")
		}
	})
}

func TestGatewayOptions(t *testing.T) {
	cfg := &config.Config{
		LLMModel:          "gemini-2.5-flash",
		LLMTemperature:    0,
		LLMTimeout:        5 * time.Second,
		ChatHistoryWindow: 2,
	}
	opts := gatewayOptions(cfg)

	if opts.HistoryWindow != 2 {
		t.Fatalf("expected history window 2, got %d", opts.HistoryWindow)
	}
	if opts.Temperature == nil || *opts.Temperature != 0 {
		t.Fatalf("expected explicit temperature 0, got %v", opts.Temperature)
	}
	if opts.Model != "gemini-2.5-flash" || opts.Timeout != 5*time.Second {
		t.Fatalf("unexpected options: %+v", opts)
	}
}
