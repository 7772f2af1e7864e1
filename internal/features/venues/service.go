package venues

import (
	"context"
	"math"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

type VenueService struct {
	venueRepository *VenueRepository
}

func (s *VenueService) ListVenues(
	ctx context.Context,
	search, state string,
	params pagination.Params,
) (*ListVenuesResponseDTO, error) {
	venues, total, err := s.venueRepository.ListVenues(ctx, search, state, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &ListVenuesResponseDTO{
		Venues:     venues,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

func (s *VenueService) GetVenue(ctx context.Context, venueID int64) (*models.Venue, error) {
	venue, err := s.venueRepository.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, api_errors.FromStore(err, "Venue")
	}

	return venue, nil
}

func (s *VenueService) GetVenueMatches(
	ctx context.Context,
	venueID int64,
	season int,
	params pagination.Params,
) (*VenueMatchesResponseDTO, error) {
	if _, err := s.venueRepository.GetVenueByID(ctx, venueID); err != nil {
		return nil, api_errors.FromStore(err, "Venue")
	}

	matches, total, err := s.venueRepository.GetVenueMatches(ctx, venueID, season, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &VenueMatchesResponseDTO{
		VenueID:    venueID,
		Matches:    matches,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

func (s *VenueService) GetVenueStats(ctx context.Context, venueID int64) (*VenueStatsDTO, error) {
	venue, err := s.venueRepository.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, api_errors.FromStore(err, "Venue")
	}

	row, err := s.venueRepository.GetVenueStats(ctx, venueID)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	homeWinPercentage := 0.0
	if row.MatchesHosted > 0 {
		homeWinPercentage = float64(row.HomeWins) / float64(row.MatchesHosted) * 100
	}

	return &VenueStatsDTO{
		VenueID:           venue.ID,
		VenueName:         venue.Name,
		MatchesHosted:     row.MatchesHosted,
		TotalAttendance:   row.TotalAttendance,
		AverageAttendance: math.Round(row.AverageAttendance*10) / 10,
		HighestAttendance: row.HighestAttendance,
		HomeWins:          row.HomeWins,
		HomeWinPercentage: math.Round(homeWinPercentage*10) / 10,
	}, nil
}
