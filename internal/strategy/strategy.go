// Package strategy produces the AI strategic narrative (misión, visión,
// diferenciador, impacto/ODS) attached to a generated challenge. Enrichment
// is total: every call yields a complete Result, by model response or by
// local fallback.
package strategy

import (
	"context"
	"log/slog"
	"time"
)

// Input carries the project variables the narrative is built from. All
// fields are required plain strings.
type Input struct {
	Sector    string
	Product   string
	Audience  string
	Problem   string
	Value     string
	Territory string
}

// Result is the four-field strategic narrative. Once present all fields are
// non-empty; there is no partial state.
type Result struct {
	Mision        string `json:"mision"`
	Vision        string `json:"vision"`
	Diferenciador string `json:"diferenciador"`
	ImpactoODS    string `json:"impacto_ods"`
}

func (r Result) complete() bool {
	return r.Mision != "" && r.Vision != "" && r.Diferenciador != "" && r.ImpactoODS != ""
}

// Generator is the external text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, in Input) (Result, error)
}

// Client wraps a Generator and guarantees a usable Result on every call.
// A nil or failing generator falls back to deterministic local templates.
type Client struct {
	gen     Generator
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each generation call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient builds a Client. gen may be nil, in which case every call
// resolves to the fallback narrative.
func NewClient(gen Generator, opts ...Option) *Client {
	c := &Client{
		gen:     gen,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enrich resolves a strategic narrative for the input. It never returns an
// error: any generation failure is logged and replaced by Fallback, which
// has the same shape as a success result.
func (c *Client) Enrich(ctx context.Context, in Input) Result {
	if c.gen == nil {
		return Fallback(in)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.gen.Generate(ctx, in)
	if err != nil {
		slog.Warn("strategy generation failed, using fallback", "sector", in.Sector, "error", err)
		return Fallback(in)
	}
	if !res.complete() {
		slog.Warn("strategy generation incomplete, using fallback", "sector", in.Sector)
		return Fallback(in)
	}
	return res
}

// Fallback synthesizes a deterministic narrative from the input fields.
func Fallback(in Input) Result {
	return Result{
		Mision:        "Desarrollar " + in.Product + " enfocado en " + in.Value + " para mitigar el problema de " + in.Problem + ".",
		Vision:        "Transformar el ecosistema de " + in.Sector + " en " + in.Territory + " mediante innovación continua.",
		Diferenciador: "Enfoque iterativo centrado en los usuarios (" + in.Audience + ").",
		ImpactoODS:    "Alineado con los objetivos de desarrollo y progreso social local.",
	}
}
