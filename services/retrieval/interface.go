package retrieval

import (
	"context"

	"ragtask/models"
)

// KnowledgeRetriever fetches the top-K most similar text fragments for a
// query from the ingestion collaborator's vector collection. An empty
// collection yields an empty slice, not an error.
type KnowledgeRetriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]models.RetrievedChunk, error)
}
