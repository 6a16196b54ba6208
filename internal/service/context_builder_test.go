package service

import (
	"encoding/json"
	"strings"
	"testing"

	"ecofolio/internal/domain"
	"ecofolio/internal/portfolio"
)

func TestContextBuilder_Deterministic(t *testing.T) {
	store := portfolio.Default()
	b := ContextBuilder{}
	if b.Build(store) != b.Build(store) {
		t.Fatalf("expected identical output for unchanged data")
	}
}

func TestContextBuilder_SkillLevelChangesOutput(t *testing.T) {
	base := portfolio.Default()
	skills := base.Skills()
	skills[0].Level--
	changed := portfolio.NewStore(base.Profile(), base.Experiences(), base.Projects(), skills)

	b := ContextBuilder{}
	if b.Build(base) == b.Build(changed) {
		t.Fatalf("expected different output after changing a skill level")
	}
}

func TestContextBuilder_ContainsDataAndDirectives(t *testing.T) {
	out := ContextBuilder{}.Build(portfolio.Default())

	needles := []string{
		"alter-ego digital de Rafael de Andrade Ammon",
		`"profile":{`,
		`"experiences":[`,
		`"projects":[`,
		`"skills":[`,
		"MS Project & Primavera P6",
		"primeira pessoa",
		"conciso, profissional",
		"Markdown",
		"rafael.ammon@gmail.com",
		"aberto a propostas desafiadoras",
		"conectar perguntas sobre habilidades com projetos",
	}
	for _, n := range needles {
		if !strings.Contains(out, n) {
			t.Fatalf("instruction missing %q", n)
		}
	}
}

func TestContextBuilder_EmbedsValidJSON(t *testing.T) {
	out := ContextBuilder{}.Build(portfolio.Default())

	start := strings.Index(out, `{"profile"`)
	if start < 0 {
		t.Fatalf("grounding json not found")
	}
	line := out[start:]
	line = line[:strings.Index(line, "\n")]

	var doc groundingDocument
	if err := json.Unmarshal([]byte(line), &doc); err != nil {
		t.Fatalf("grounding json invalid: %v", err)
	}
	if len(doc.Skills) != 7 || len(doc.Projects) != 4 || len(doc.Experiences) != 5 {
		t.Fatalf("unexpected collection sizes: %d skills, %d projects, %d experiences", len(doc.Skills), len(doc.Projects), len(doc.Experiences))
	}
	if doc.Projects[0].Category != domain.ProjectCategoryReforestation {
		t.Fatalf("unexpected first project category %q", doc.Projects[0].Category)
	}
}

func TestContextBuilder_NoEmailFallsBackToDirectContact(t *testing.T) {
	store := portfolio.NewStore(domain.Profile{Name: "Ana"}, nil, nil, nil)
	out := ContextBuilder{}.Build(store)
	if !strings.Contains(out, "entrar em contato diretamente") {
		t.Fatalf("expected generic contact directive, got: %s", out)
	}
}
