package constant

import "smartfinance-ai-be/pkg/store"

const IngestDocumentTopic = "INGEST_DOCUMENT"

// DocumentSource says where a knowledge-base file is stored and how it is tagged
type DocumentSource struct {
	Collection string
	Type       string
}

// DocumentSources is the fixed file to collection convention used when
// seeding from a directory
var DocumentSources = map[string]DocumentSource{
	"billing_policies.txt":  {Collection: store.CollectionBilling, Type: "billing"},
	"technical_faqs.txt":    {Collection: store.CollectionTechnical, Type: "technical"},
	"savings_and_goals.txt": {Collection: store.CollectionTechnical, Type: "financial_planning"},
	"fraud_prevention.txt":  {Collection: store.CollectionPolicy, Type: "policy"},
}
