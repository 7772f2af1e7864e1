package venues

var venueRepository = &VenueRepository{}

var venueService = &VenueService{
	venueRepository,
}

var venueController = &VenueController{
	venueService,
}

func GetVenueService() *VenueService {
	return venueService
}

func GetVenueController() *VenueController {
	return venueController
}
