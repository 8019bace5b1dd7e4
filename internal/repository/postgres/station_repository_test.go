package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
	"github.com/station-booking/internal/repository/postgres/testhelpers"
)

type StationRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.StationRepository
	ctx    context.Context
}

func (s *StationRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	_ = testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)

	s.repo = testhelpers.NewStationRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *StationRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *StationRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *StationRepositoryTestSuite) uniqueName(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, time.Now().UnixNano())
}

func (s *StationRepositoryTestSuite) TestCreateAndGet() {
	station := &domain.Station{
		Name:      s.uniqueName("Valencia Nord"),
		Latitude:  39.4666,
		Longitude: -0.3773,
	}

	err := s.repo.Create(s.ctx, station)
	s.NoError(err)
	s.NotZero(station.ID)

	got, err := s.repo.GetByID(s.ctx, station.ID)
	s.NoError(err)
	s.Equal(station.Name, got.Name)
	s.Equal(station.Latitude, got.Latitude)
}

func (s *StationRepositoryTestSuite) TestCreate_DuplicateName() {
	name := s.uniqueName("Zaragoza Delicias")

	first := &domain.Station{Name: name}
	s.Require().NoError(s.repo.Create(s.ctx, first))

	second := &domain.Station{Name: name}
	err := s.repo.Create(s.ctx, second)
	s.Error(err)

	appErr, ok := err.(*errors.AppError)
	s.True(ok)
	s.Equal(errors.CodeConflict, appErr.Code)
	s.Contains(appErr.Details, "name")
}

func (s *StationRepositoryTestSuite) TestUpdate_NotFound() {
	err := s.repo.Update(s.ctx, &domain.Station{ID: 999999999, Name: s.uniqueName("Ghost")})
	s.Equal(errors.ErrStationNotFound, err)
}

func (s *StationRepositoryTestSuite) TestDelete() {
	station := &domain.Station{Name: s.uniqueName("Temporal")}
	s.Require().NoError(s.repo.Create(s.ctx, station))

	s.NoError(s.repo.Delete(s.ctx, station.ID))

	_, err := s.repo.GetByID(s.ctx, station.ID)
	s.Equal(errors.ErrStationNotFound, err)

	s.Equal(errors.ErrStationNotFound, s.repo.Delete(s.ctx, station.ID))
}

func TestStationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StationRepositoryTestSuite))
}
