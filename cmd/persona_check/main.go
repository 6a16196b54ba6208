package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ecofolio/internal/config"
	"ecofolio/internal/domain"
	"ecofolio/internal/llm"
	"ecofolio/internal/portfolio"
	"ecofolio/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// Scenario es una pregunta de prueba con lo que se espera de la respuesta.
type Scenario struct {
	Name             string
	Input            string
	ExpectedBehavior string
	ExpectContact    bool
	ExpectProject    bool
	ExpectOpenness   bool
}

var scenarios = []Scenario{
	{
		Name:             "Disponibilidad",
		Input:            "Você está disponível para novos projetos?",
		ExpectedBehavior: "Declara estar aberto a propuestas desafiantes y puede sugerir contacto",
		ExpectOpenness:   true,
	},
	{
		Name:             "Tema desconocido",
		Input:            "Qual é o seu salário atual?",
		ExpectedBehavior: "Dice que no tiene esa información y sugiere contacto por email",
		ExpectContact:    true,
	},
	{
		Name:             "Habilidad con evidencia",
		Input:            "Você sabe usar QGIS?",
		ExpectedBehavior: "Confirma la habilidad y la conecta con un proyecto real como Rio Doce",
		ExpectProject:    true,
	},
	{
		Name:             "Primera persona",
		Input:            "Conte um pouco sobre sua experiência com restauração florestal.",
		ExpectedBehavior: "Responde en primera persona citando GasLub/COMPERJ o el Inventario Florestal",
		ExpectProject:    true,
	},
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		log.Fatal("LLM_API_KEY es obligatorio para correr el juez")
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	llmClient, err := llm.NewCompleter(ctx, llm.ProviderConfig{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.LLMAPIKey,
		BaseURL:  cfg.LLMBaseURL,
		Model:    cfg.LLMModel,
	}, logger)
	if err != nil {
		log.Fatal(err)
	}

	store := portfolio.Default()
	gateway := service.NewAssistantGateway(llmClient, store, gatewayOptions(cfg), logger)
	greeting := service.Greeting(store.Profile())

	var totalPersona, totalGrounding, totalHelp, scored int
	for _, sc := range scenarios {
		fmt.Printf("%s[%s]%s %s\n", colorCyan, sc.Name, colorReset, sc.Input)

		history := []domain.ChatMessage{{Role: domain.RoleAssistant, Text: greeting}}
		reply := gateway.ReplyMessage(ctx, history, sc.Input)
		if reply.IsError {
			fmt.Printf("%s[fallback]%s %s\n\n", colorRed, colorReset, reply.Text)
			continue
		}
		fmt.Printf("%s[IA]%s %s\n", colorGreen, colorReset, reply.Text)

		jr, report, err := evaluateResponse(ctx, llmClient, cfg.LLMModel, store.Profile(), store.Projects(), sc, reply.Text)
		if err != nil {
			log.Fatalf("judge failed: %v", err)
		}

		fmt.Printf("Heurística: %s\n", report)
		fmt.Printf("%sJuez%s %q\n", colorCyan, colorReset, jr.Reasoning)
		fmt.Printf("Scores: Persona %d/5 | Grounding %d/5 | Utilidad %d/5\n\n", jr.PersonaScore, jr.GroundingScore, jr.HelpfulnessScore)

		totalPersona += jr.PersonaScore
		totalGrounding += jr.GroundingScore
		totalHelp += jr.HelpfulnessScore
		scored++
	}

	if scored == 0 {
		log.Fatal("ningún escenario obtuvo respuesta del modelo")
	}
	n := float64(scored)
	fmt.Println("==== Promedios ====")
	fmt.Printf("Persona: %.2f/5 | Grounding: %.2f/5 | Utilidad: %.2f/5 (%d/%d escenarios)\n",
		float64(totalPersona)/n, float64(totalGrounding)/n, float64(totalHelp)/n, scored, len(scenarios))
}

// gatewayOptions usa la misma configuracion que la API para que el juez vea
// las respuestas que veria un visitante.
func gatewayOptions(cfg *config.Config) service.GatewayOptions {
	return service.GatewayOptions{
		Model:         cfg.LLMModel,
		Temperature:   service.Temperature(cfg.LLMTemperature),
		HistoryWindow: cfg.ChatHistoryWindow,
		Timeout:       cfg.LLMTimeout,
	}
}
