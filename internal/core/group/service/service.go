package groupapp

import (
	"context"
	"errors"
	"strings"

	"yatube/internal/core/apperror"
	groupEntity "yatube/internal/core/group"
	"yatube/internal/core/validation"
	groupPort "yatube/internal/ports/group"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type GroupService struct {
	GroupRepository groupPort.GroupRepository
	validate        *validator.Validate
	logger          *zap.Logger
}

func NewGroupService(repo groupPort.GroupRepository, logger *zap.Logger) *GroupService {
	return &GroupService{
		GroupRepository: repo,
		validate:        validation.New(nil),
		logger:          logger,
	}
}

// CreateGroup validates and stores a group. A taken slug is a validation error.
func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	g := &groupEntity.Group{
		Title:       strings.TrimSpace(title),
		Slug:        strings.TrimSpace(slug),
		Description: strings.TrimSpace(description),
	}
	if err := s.validate.Struct(g); err != nil {
		return nil, validation.Translate(err)
	}

	if _, err := s.GroupRepository.FindBySlug(ctx, g.Slug); err == nil {
		return nil, apperror.NewValidationError("slug", "a group with this slug already exists")
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	created, err := s.GroupRepository.Create(ctx, g)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Group created", zap.String("slug", created.Slug))
	return groupPort.ToDTO(created), nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return groupPort.ToDTO(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, groupPort.ToDTO(g))
	}
	return dtos, nil
}

// DeleteGroup removes the group; its posts stay, without a group.
func (s *GroupService) DeleteGroup(ctx context.Context, slug string) error {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.GroupRepository.Delete(ctx, g.ID.String()); err != nil {
		return err
	}
	s.logger.Info("Group deleted", zap.String("slug", slug))
	return nil
}
