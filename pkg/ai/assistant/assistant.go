// Package assistant assembles the router, the three responders and the
// dispatch graph into one unit.
package assistant

import (
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/internal/pkg/metrics"
	"smartfinance-ai-be/pkg/agent"
	"smartfinance-ai-be/pkg/ai/pipeline"
	"smartfinance-ai-be/pkg/ai/router"
	"smartfinance-ai-be/pkg/llm"
	"smartfinance-ai-be/pkg/rag/strategy"
	"smartfinance-ai-be/pkg/store"
)

// Models overrides the backend default model per call site. Empty means default.
type Models struct {
	Router    string
	Billing   string
	Technical string
	Policy    string
}

type Config struct {
	RouterLLM    llm.LLMProvider
	ResponderLLM llm.LLMProvider
	Store        store.ContextStore
	Cache        strategy.PassageCache
	Models       Models
	Logger       logger.ILogger
	Metrics      *metrics.Metrics
}

type Assistant struct {
	Graph        *pipeline.Graph
	Router       *router.Router
	Responders   map[router.ResponderID]*agent.Responder
	BillingCache *strategy.CachedRetrieval
}

func New(cfg Config) *Assistant {
	billing := agent.NewBillingResponder(cfg.ResponderLLM, cfg.Store, cfg.Cache, cfg.Models.Billing)
	technical := agent.NewTechnicalResponder(cfg.ResponderLLM, cfg.Store, cfg.Models.Technical)
	policy := agent.NewPolicyResponder(cfg.ResponderLLM, cfg.Models.Policy)

	responders := map[router.ResponderID]*agent.Responder{
		router.Billing:   billing,
		router.Technical: technical,
		router.Policy:    policy,
	}

	answerers := make(map[router.ResponderID]pipeline.Answerer, len(responders))
	for id, r := range responders {
		answerers[id] = r
	}

	rt := router.NewRouter(cfg.RouterLLM, cfg.Models.Router, cfg.Logger)

	return &Assistant{
		Graph:        pipeline.NewGraph(rt, answerers, cfg.Logger, cfg.Metrics),
		Router:       rt,
		Responders:   responders,
		BillingCache: billing.Strategy().(*strategy.CachedRetrieval),
	}
}
