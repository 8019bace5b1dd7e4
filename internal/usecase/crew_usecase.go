package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/usecase/dto"
)

type CrewUseCase struct {
	crewRepo repository.CrewRepository
	mediaDir string
	logger   *zap.Logger
}

func NewCrewUseCase(crewRepo repository.CrewRepository, mediaDir string, logger *zap.Logger) *CrewUseCase {
	return &CrewUseCase{
		crewRepo: crewRepo,
		mediaDir: mediaDir,
		logger:   logger,
	}
}

func (uc *CrewUseCase) Create(ctx context.Context, req dto.CrewRequest) (*domain.Crew, error) {
	crew := &domain.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := uc.crewRepo.Create(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

func (uc *CrewUseCase) Get(ctx context.Context, id int64) (*domain.Crew, error) {
	return uc.crewRepo.GetByID(ctx, id)
}

func (uc *CrewUseCase) List(ctx context.Context, page domain.Page) ([]*domain.Crew, int, error) {
	return uc.crewRepo.List(ctx, page)
}

func (uc *CrewUseCase) Update(ctx context.Context, id int64, req dto.CrewRequest) (*domain.Crew, error) {
	crew, err := uc.crewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	crew.FirstName = req.FirstName
	crew.LastName = req.LastName
	if err := uc.crewRepo.Update(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

func (uc *CrewUseCase) Delete(ctx context.Context, id int64) error {
	return uc.crewRepo.Delete(ctx, id)
}

// NewImagePath builds a unique destination under the media dir, keeping the
// original extension. The crew must exist before the caller stores the file.
func (uc *CrewUseCase) NewImagePath(ctx context.Context, id int64, originalName string) (string, error) {
	if _, err := uc.crewRepo.GetByID(ctx, id); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	return filepath.Join(uc.mediaDir, name), nil
}

func (uc *CrewUseCase) SetImage(ctx context.Context, id int64, path string) (*domain.Crew, error) {
	if err := uc.crewRepo.SetImagePath(ctx, id, path); err != nil {
		return nil, err
	}

	uc.logger.Info("Crew image stored", zap.Int64("crew_id", id), zap.String("path", path))
	return uc.crewRepo.GetByID(ctx, id)
}
