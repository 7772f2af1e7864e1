package teams

var teamRepository = &TeamRepository{}

var teamService = &TeamService{
	teamRepository,
}

var teamController = &TeamController{
	teamService,
}

func GetTeamService() *TeamService {
	return teamService
}

func GetTeamController() *TeamController {
	return teamController
}
