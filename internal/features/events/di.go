package events

var eventRepository = &EventRepository{}

var eventService = &EventService{
	eventRepository,
}

var eventController = &EventController{
	eventService,
}

func GetEventService() *EventService {
	return eventService
}

func GetEventController() *EventController {
	return eventController
}
