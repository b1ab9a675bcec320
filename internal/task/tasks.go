package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeGenerateThumbnail = "thumbnail:generate"

type GenerateThumbnailPayload struct {
	AssetID string `json:"asset_id"`
}

// NewGenerateThumbnailTask creates an Asynq task for deriving thumbnails
// for an asset by ID.
func NewGenerateThumbnailTask(assetID string) (*asynq.Task, error) {
	p := GenerateThumbnailPayload{AssetID: assetID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal generate-thumbnail payload: %w", err)
	}
	return asynq.NewTask(TypeGenerateThumbnail, data), nil
}

// ParseGenerateThumbnailPayload parses the task payload.
func ParseGenerateThumbnailPayload(t *asynq.Task) (GenerateThumbnailPayload, error) {
	var p GenerateThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return GenerateThumbnailPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
