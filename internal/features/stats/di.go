package stats

import (
	"github.com/tom-mcmillan/nwsl-api/internal/features/players"
	"github.com/tom-mcmillan/nwsl-api/internal/features/teams"

	"golang.org/x/sync/singleflight"
)

var statsRepository = &StatsRepository{}

var statsService = &StatsService{
	statsRepository,
	teams.GetTeamService(),
	players.GetPlayerService(),
	singleflight.Group{},
}

var statsController = &StatsController{
	statsService,
}

func GetStatsService() *StatsService {
	return statsService
}

func GetStatsController() *StatsController {
	return statsController
}
