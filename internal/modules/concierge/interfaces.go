package concierge

import (
	"context"

	"accessplus/internal/domain"
	"accessplus/internal/pkg/genai"
)

type VenueRepository interface {
	List(ctx context.Context) ([]domain.Venue, error)
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// Generator is the slice of the genai client the concierge uses.
type Generator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	EditImage(ctx context.Context, model, instruction string, image []byte, mimeType string) (*genai.ImageResult, error)
}
