package concierge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"accessplus/internal/domain"
	"accessplus/internal/pkg/genai"
)

const (
	defaultModel      = "gemini-2.5-pro"
	defaultImageModel = "gemini-2.5-flash-image"
	requestTimeout    = 45 * time.Second
	maxQueryLen       = 500
	sampleSize        = 5
)

type Service struct {
	venues VenueRepository
	users  UserRepository
	ai     Generator
	model  string
}

func NewService(venues VenueRepository, users UserRepository, ai Generator, model string) *Service {
	if model == "" {
		model = defaultModel
	}
	return &Service{venues: venues, users: users, ai: ai, model: model}
}

// venueContext is the slim venue projection serialized into prompts.
type venueContext struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Recommend answers a member's planning request against the current approved
// venue list.
func (s *Service) Recommend(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}
	// cut on a rune boundary so multi-byte characters survive intact
	if runes := []rune(query); len(runes) > maxQueryLen {
		query = string(runes[:maxQueryLen])
	}

	venues, err := s.venues.List(ctx)
	if err != nil {
		return "", err
	}

	slim := make([]venueContext, 0, len(venues))
	for _, v := range venues {
		if v.Status != domain.VenueApproved {
			continue
		}
		slim = append(slim, venueContext{
			Name:        v.Name,
			Category:    string(v.Category),
			Description: v.Description,
			Location:    v.Location,
		})
	}
	venuesJSON, err := json.MarshalIndent(slim, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Eres un "AI Concierge" para ACCESS+, una membresía de lujo. Tu tarea es ayudar a los miembros a planificar sus salidas basándote en los locales afiliados disponibles.

Locales Disponibles (JSON):
%s

Basado en esta lista, responde a la siguiente solicitud del miembro. Sé creativo, sugerente y mantén un tono exclusivo y servicial. Formatea tu respuesta de manera clara.

SOLICITUD DEL MIEMBRO: "%s"

RECOMENDACIÓN DEL CONCIERGE:`, venuesJSON, query)

	return s.generate(ctx, prompt)
}

// Analyze answers an admin question against aggregate platform data.
func (s *Service) Analyze(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return "", err
	}
	venues, err := s.venues.List(ctx)
	if err != nil {
		return "", err
	}

	userSample := users
	if len(userSample) > sampleSize {
		userSample = userSample[:sampleSize]
	}
	venueSample := venues
	if len(venueSample) > sampleSize {
		venueSample = venueSample[:sampleSize]
	}
	usersJSON, _ := json.MarshalIndent(userSample, "", "  ")
	venuesJSON, _ := json.MarshalIndent(venueSample, "", "  ")

	prompt := fmt.Sprintf(`CONTEXT:
- Total Users: %d
- Users Data (sample): %s
- Total Venues: %d
- Venues Data (sample): %s

QUESTION: %s

ANALYSIS:`, len(users), usersJSON, len(venues), venuesJSON, query)

	return s.generate(ctx, prompt)
}

// EditImage forwards an image plus instruction to the image model.
func (s *Service) EditImage(ctx context.Context, instruction string, image []byte, mimeType string) (*genai.ImageResult, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	out, err := s.ai.EditImage(ctx, defaultImageModel, instruction, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	return out, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	text, err := s.ai.GenerateText(ctx, s.model, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	return text, nil
}
