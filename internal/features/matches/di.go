package matches

var matchRepository = &MatchRepository{}

var matchService = &MatchService{
	matchRepository,
}

var matchController = &MatchController{
	matchService,
}

func GetMatchService() *MatchService {
	return matchService
}

func GetMatchController() *MatchController {
	return matchController
}
