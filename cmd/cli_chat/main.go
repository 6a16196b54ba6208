package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ecofolio/internal/config"
	"ecofolio/internal/domain"
	"ecofolio/internal/llm"
	"ecofolio/internal/portfolio"
	"ecofolio/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	if !cfg.IsDevelopment() {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	store := portfolio.Default()
	llmClient, err := llm.NewCompleter(ctx, llm.ProviderConfig{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.LLMAPIKey,
		BaseURL:  cfg.LLMBaseURL,
		Model:    cfg.LLMModel,
	}, logger)
	if err != nil {
		log.Fatal(err)
	}
	gateway := service.NewAssistantGateway(llmClient, store, service.GatewayOptions{
		Model:         cfg.LLMModel,
		Temperature:   service.Temperature(cfg.LLMTemperature),
		HistoryWindow: cfg.ChatHistoryWindow,
		Timeout:       cfg.LLMTimeout,
	}, logger)
	chatSvc := service.NewChatService(gateway)

	conv := service.NewConversation(service.Greeting(store.Profile()))
	fmt.Println("===== Chat del portfolio =====")
	fmt.Println("Comandos: /proyectos, /historial, /reiniciar, /salir")
	printMessage(conv.Messages()[0])

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			log.Fatalf("leer entrada: %v", err)
		}
		text := strings.TrimSpace(line)

		switch text {
		case "/salir":
			return
		case "/proyectos":
			printProjects(store)
		case "/historial":
			for _, m := range conv.Messages() {
				printMessage(m)
			}
		case "/reiniciar":
			conv = service.NewConversation(service.Greeting(store.Profile()))
			printMessage(conv.Messages()[0])
		case "":
			// Entrada vacia: no se envia nada.
		default:
			// La lectura siguiente no ocurre hasta que Turn devuelve, asi que nunca
			// hay dos turnos en vuelo.
			reply, turnErr := chatSvc.Turn(ctx, conv, text)
			if turnErr != nil {
				fmt.Printf("error: %v\n", turnErr)
				break
			}
			printMessage(reply)
		}

		if errors.Is(err, io.EOF) {
			return
		}
	}
}

func printMessage(m domain.ChatMessage) {
	fmt.Println(formatMessage(m))
}

func formatMessage(m domain.ChatMessage) string {
	who := "Vos"
	if m.Role == domain.RoleAssistant {
		who = "IA"
	}
	if m.IsError {
		who += " (error)"
	}
	return fmt.Sprintf("[%s] %s", who, m.Text)
}

func printProjects(store *portfolio.Store) {
	for _, cat := range domain.ProjectCategories {
		projects := store.ProjectsByCategory(cat)
		if len(projects) == 0 {
			continue
		}
		fmt.Printf("-- %s --\n", cat)
		for _, p := range projects {
			fmt.Printf("  * %s [%s]\n", p.Title, strings.Join(p.Tags, ", "))
		}
	}
}
