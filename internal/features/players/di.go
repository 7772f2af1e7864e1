package players

var playerRepository = &PlayerRepository{}

var playerService = &PlayerService{
	playerRepository,
}

var playerController = &PlayerController{
	playerService,
}

func GetPlayerService() *PlayerService {
	return playerService
}

func GetPlayerController() *PlayerController {
	return playerController
}
