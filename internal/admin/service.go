package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/model"
)

// Service drives the admin content editor: CRUD over the equipment, plant and
// quest catalogs. It is independent of the player session; only the bearer
// token on the shared client matters. Payloads are validated locally before
// any request is issued, so a bad form never reaches the network.
type Service struct {
	client   *client.Client
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates an admin service
func New(c *client.Client, logger *slog.Logger) *Service {
	return &Service{
		client:   c,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// ValidationError wraps a rejected payload so callers can distinguish local
// form errors from transport failures.
type ValidationError struct {
	Err error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload: %v", e.Err)
}

// Unwrap exposes the underlying validator error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (s *Service) check(payload any) error {
	if err := s.validate.Struct(payload); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ListEquipment returns the equipment catalog
func (s *Service) ListEquipment(ctx context.Context) ([]model.EquipmentItem, error) {
	var items []model.EquipmentItem
	if err := s.client.Get(ctx, "/admin/equipment", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateEquipment adds an equipment catalog record
func (s *Service) CreateEquipment(ctx context.Context, in model.EquipmentItemInput) (*model.EquipmentItem, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	var item model.EquipmentItem
	if err := s.client.Post(ctx, "/admin/equipment", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateEquipment replaces an equipment catalog record
func (s *Service) UpdateEquipment(ctx context.Context, id int, in model.EquipmentItemInput) (*model.EquipmentItem, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	var item model.EquipmentItem
	if err := s.client.Put(ctx, fmt.Sprintf("/admin/equipment/%d", id), in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListPlants returns the plant catalog
func (s *Service) ListPlants(ctx context.Context) ([]model.PlantType, error) {
	var plants []model.PlantType
	if err := s.client.Get(ctx, "/admin/plants", &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

// CreatePlant adds a plant type
func (s *Service) CreatePlant(ctx context.Context, in model.PlantTypeInput) (*model.PlantType, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	var plant model.PlantType
	if err := s.client.Post(ctx, "/admin/plants", in, &plant); err != nil {
		return nil, err
	}
	return &plant, nil
}

// UpdatePlant replaces a plant type
func (s *Service) UpdatePlant(ctx context.Context, id int, in model.PlantTypeInput) (*model.PlantType, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	var plant model.PlantType
	if err := s.client.Put(ctx, fmt.Sprintf("/admin/plants/%d", id), in, &plant); err != nil {
		return nil, err
	}
	return &plant, nil
}

// ListQuests returns all quests with their node graphs
func (s *Service) ListQuests(ctx context.Context) ([]model.Quest, error) {
	var quests []model.Quest
	if err := s.client.Get(ctx, "/admin/quests", &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

// CreateQuest adds a quest with its node graph
func (s *Service) CreateQuest(ctx context.Context, in model.QuestInput) (*model.Quest, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	var quest model.Quest
	if err := s.client.Post(ctx, "/admin/quests", in, &quest); err != nil {
		return nil, err
	}
	return &quest, nil
}

// UpdateQuest fully replaces an existing quest
func (s *Service) UpdateQuest(ctx context.Context, id int, in model.QuestInput) (*model.Quest, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	var quest model.Quest
	if err := s.client.Put(ctx, fmt.Sprintf("/admin/quests/%d", id), in, &quest); err != nil {
		return nil, err
	}
	return &quest, nil
}
