package pgvector

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type DocumentChunk struct {
	Id         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Collection string            `gorm:"type:varchar(64);not null;index"`
	Content    string            `gorm:"type:text"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb"`
	Embedding  pgvector.Vector   `gorm:"type:vector"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
