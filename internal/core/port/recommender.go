package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// ContentFetcher downloads pages and returns their visible text joined into
// one document.
type ContentFetcher interface {
	Fetch(ctx context.Context, urls []string) (string, error)
}

// Recommender derives campaign settings from the content of landing pages.
// Each call sends one prompt and decodes the JSON answer as is.
type Recommender interface {
	RecommendLocations(ctx context.Context, links []string) (*domain.LocationRecommendation, error)
	RecommendSchedulesDevices(ctx context.Context, links []string, locations []domain.LocationHint) (*domain.ScheduleDeviceRecommendation, error)
	RecommendCampaignElements(ctx context.Context, links []string) (*domain.CampaignElements, error)
	RecommendAudience(ctx context.Context, links []string) (*domain.AudienceCriteria, error)
	Summarize(ctx context.Context, links []string) (string, error)
}

// Assistant turns free text into structured arguments using function
// calling. A non-empty Question in a reply means the model asked for more
// information instead of calling the function.
type Assistant interface {
	ExtractBudget(ctx context.Context, text string) (*BudgetReply, error)
	ExtractCampaignDetails(ctx context.Context, text string) (*CampaignReply, error)
}

type BudgetReply struct {
	Question     string
	AmountMicros int64
}

type CampaignReply struct {
	Question     string
	Name         string
	DurationDays int
}

// ImageGenerator renders an image for a prompt and returns the encoded bytes.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// ImageResizer writes a copy of the image at src, scaled to size, to dst.
type ImageResizer interface {
	Resize(src, dst string, size domain.ImageSize) error
}
