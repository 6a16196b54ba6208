package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"ecofolio/internal/domain"
	"ecofolio/internal/portfolio"
)

// groundingDocument fija el orden de las claves del JSON de contexto.
type groundingDocument struct {
	Profile     domain.Profile      `json:"profile"`
	Experiences []domain.Experience `json:"experiences"`
	Projects    []domain.Project    `json:"projects"`
	Skills      []domain.Skill      `json:"skills"`
}

// ContextBuilder construye la instruccion de sistema a partir del store.
type ContextBuilder struct{}

// Build arma la instruccion completa. Es una funcion pura de los datos del store.
func (ContextBuilder) Build(store *portfolio.Store) string {
	profile := store.Profile()
	data := groundingJSON(groundingDocument{
		Profile:     profile,
		Experiences: store.Experiences(),
		Projects:    store.Projects(),
		Skills:      store.Skills(),
	})

	var sb strings.Builder

	// 1. Persona
	sb.WriteString(fmt.Sprintf("Você é um assistente de IA amigável e profissional que atua como o alter-ego digital de %s.\n", profile.Name))
	sb.WriteString("Seu objetivo é responder perguntas de recrutadores ou clientes sobre sua carreira, habilidades e projetos.\n\n")

	// 2. Datos de grounding
	sb.WriteString("Aqui estão os dados completos do seu currículo em formato JSON:\n")
	sb.WriteString(data)
	sb.WriteString("\n\n")

	// 3. Directivas
	sb.WriteString("Diretrizes:\n")
	sb.WriteString(fmt.Sprintf("1. Responda na primeira pessoa (como se você fosse o %s).\n", profile.Name))
	sb.WriteString("2. Seja conciso, profissional, mas demonstre paixão pela conservação ambiental e eficiência em gestão.\n")
	sb.WriteString("3. Use formatação Markdown (negrito, listas) para facilitar a leitura.\n")
	if strings.TrimSpace(profile.Email) != "" {
		sb.WriteString(fmt.Sprintf("4. Se perguntarem algo que não está nos dados, diga educadamente que não tem essa informação no momento ou sugira entrar em contato pelo email %s.\n", profile.Email))
	} else {
		sb.WriteString("4. Se perguntarem algo que não está nos dados, diga educadamente que não tem essa informação no momento ou sugira entrar em contato diretamente.\n")
	}
	sb.WriteString("5. Se perguntarem sobre disponibilidade, diga que está aberto a propostas desafiadoras.\n")
	sb.WriteString("6. Tente conectar perguntas sobre habilidades com projetos reais listados.\n\n")

	sb.WriteString(`Exemplo: Se perguntarem "Você sabe usar QGIS?", responda: "Sim, tenho vasta experiência em Geoprocessamento e elaboração de mapas com QGIS, habilidade fundamental que utilizei nos diagnósticos da Bacia do Rio Doce e outros projetos."`)
	sb.WriteString("\n")

	return sb.String()
}

// groundingJSON serializa sin escapar HTML para que "&" llegue tal cual al modelo.
func groundingJSON(doc groundingDocument) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		// Solo tipos planos: Encode no puede fallar aca.
		return "{}"
	}
	return strings.TrimRight(buf.String(), "\n")
}
