package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Fixed prompt contract for the strategy consultant persona. Content-level
// only: the structural contract is the JSON response schema below.
const systemPrompt = `Actúa como consultor senior en innovación social y transmedia para el laboratorio "Núcleo Colectivo". Tu tarea es construir una narrativa estratégica y diferenciada para un nuevo proyecto. No uses texto de relleno genérico. Ve directo al grano, sé visionario, medible y anclado al contexto territorial dado.`

// GeminiGenerator generates strategic narratives with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed Generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate asks the model for the four-field narrative as structured JSON.
func (g *GeminiGenerator) Generate(ctx context.Context, in Input) (Result, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(buildPrompt(in)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    resultSchema(),
			Temperature:       genai.Ptr[float32](0.8),
		},
	)
	if err != nil {
		return Result{}, fmt.Errorf("generate strategy: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return Result{}, fmt.Errorf("empty model response")
	}

	var res Result
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		return Result{}, fmt.Errorf("parse strategy response: %w", err)
	}
	if !res.complete() {
		return Result{}, fmt.Errorf("incomplete strategy response")
	}
	return res, nil
}

func buildPrompt(in Input) string {
	return fmt.Sprintf(`Desarrolla la estrategia para el siguiente proyecto:
- Sector: %s
- Producto/Solución: %s
- Público Objetivo: %s
- Problema central a resolver: %s
- Valor diferencial: %s
- Contexto Territorial: %s`,
		in.Sector, in.Product, in.Audience, in.Problem, in.Value, in.Territory)
}

func resultSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"mision": {
				Type:        genai.TypeString,
				Description: "Misión corta, accionable y de alto impacto del proyecto.",
			},
			"vision": {
				Type:        genai.TypeString,
				Description: "Visión proyectada a futuro, inspiradora y medible del proyecto.",
			},
			"diferenciador": {
				Type:        genai.TypeString,
				Description: "Cualidad única, enfoque transmedia, tecnológico o de inclusión que separa al proyecto del resto.",
			},
			"impacto_ods": {
				Type:        genai.TypeString,
				Description: "Métrica clave de éxito (KPI) y su alineación con un ODS (Objetivo de Desarrollo Sostenible).",
			},
		},
		Required: []string{"mision", "vision", "diferenciador", "impacto_ods"},
	}
}
