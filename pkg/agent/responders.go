package agent

import (
	"time"

	"smartfinance-ai-be/internal/constant"
	"smartfinance-ai-be/pkg/llm"
	"smartfinance-ai-be/pkg/rag/strategy"
	"smartfinance-ai-be/pkg/store"
)

const (
	BillingRetrievalK   = 3
	TechnicalRetrievalK = 4

	defaultTimeout = 30 * time.Second
)

func options(temperature float64, model string) []llm.Option {
	opts := []llm.Option{
		llm.WithTemperature(temperature),
		llm.WithTimeout(defaultTimeout),
	}
	if model != "" {
		opts = append(opts, llm.WithModel(model))
	}
	return opts
}

// NewBillingResponder retrieves billing passages once per session
func NewBillingResponder(provider llm.LLMProvider, s store.ContextStore, cache strategy.PassageCache, model string) *Responder {
	return NewResponder(Config{
		Name:           "billing",
		Preamble:       constant.BillingPreamble,
		ContextHeading: constant.BillingContextHeading,
		Directive:      constant.BillingDirective,
		DefaultProfile: constant.BillingDefaultProfile,
		Options:        options(0.3, model),
	}, provider, strategy.NewCachedRetrieval(s, cache, store.CollectionBilling, BillingRetrievalK, "\n"))
}

// NewTechnicalResponder retrieves fresh documentation for every question
func NewTechnicalResponder(provider llm.LLMProvider, s store.ContextStore, model string) *Responder {
	return NewResponder(Config{
		Name:           "technical",
		Preamble:       constant.TechnicalPreamble,
		ContextHeading: constant.TechnicalContextHeading,
		Directive:      constant.TechnicalDirective,
		DefaultProfile: constant.TechnicalDefaultProfile,
		Options:        options(0.2, model),
	}, provider, strategy.NewFreshRetrieval(s, store.CollectionTechnical, TechnicalRetrievalK, "\n\n"))
}

// NewPolicyResponder answers from the preloaded policy document
func NewPolicyResponder(provider llm.LLMProvider, model string) *Responder {
	return NewResponder(Config{
		Name:           "policy",
		Preamble:       constant.PolicyPreamble,
		ContextHeading: constant.PolicyContextHeading,
		Directive:      constant.PolicyDirective,
		DefaultProfile: constant.PolicyDefaultProfile,
		Options:        options(0.1, model),
	}, provider, strategy.NewStaticPreload(constant.PolicyDocument))
}
