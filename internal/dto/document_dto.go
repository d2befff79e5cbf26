package dto

import "github.com/google/uuid"

type IngestDocumentRequest struct {
	Collection string `json:"collection" validate:"required,oneof=billing_documents technical_documents policy_documents"`
	Source     string `json:"source" validate:"required"`
	Type       string `json:"type"`
	Content    string `json:"content" validate:"required"`
}

type IngestDocumentResponse struct {
	Id         uuid.UUID `json:"id"`
	Collection string    `json:"collection"`
	Source     string    `json:"source"`
}

// PublishIngestDocumentMessage is the queue payload consumed by the ingestion worker
type PublishIngestDocumentMessage struct {
	Id         uuid.UUID `json:"id"`
	Collection string    `json:"collection"`
	Source     string    `json:"source"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
}
