package models

// AllModels lists every persisted entity in migration order: parent
// tables before the tables holding foreign keys into them.
var AllModels = []any{
	&Venue{},
	&Team{},
	&Player{},
	&Match{},
	&MatchLineup{},
	&MatchEvent{},
	&ApiKey{},
	&AuditLog{},
}
