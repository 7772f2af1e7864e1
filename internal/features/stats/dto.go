package stats

type ScorerEntryDTO struct {
	Rank       int    `json:"rank"`
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name,omitempty"`
	Goals      int64  `json:"goals"`
	Matches    int64  `json:"matches"`
}

type GoalLeaderboardResponseDTO struct {
	Season  int               `json:"season,omitempty"`
	Limit   int               `json:"limit"`
	Leaders []*ScorerEntryDTO `json:"leaders"`
}

type AssistEntryDTO struct {
	Rank       int    `json:"rank"`
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name,omitempty"`
	Assists    int64  `json:"assists"`
	Matches    int64  `json:"matches"`
}

type AssistLeaderboardResponseDTO struct {
	Season  int               `json:"season,omitempty"`
	Limit   int               `json:"limit"`
	Leaders []*AssistEntryDTO `json:"leaders"`
}

type CleanSheetEntryDTO struct {
	Rank        int    `json:"rank"`
	PlayerID    int64  `json:"player_id"`
	PlayerName  string `json:"player_name"`
	TeamName    string `json:"team_name,omitempty"`
	CleanSheets int64  `json:"clean_sheets"`
	Appearances int64  `json:"appearances"`
}

type CleanSheetLeaderboardResponseDTO struct {
	Season         int                   `json:"season,omitempty"`
	Limit          int                   `json:"limit"`
	MinAppearances int                   `json:"min_appearances"`
	Leaders        []*CleanSheetEntryDTO `json:"leaders"`
}

// RecordDTO is a win/draw/loss record with goal totals.
type RecordDTO struct {
	MatchesPlayed  int64 `json:"matches_played"`
	Wins           int64 `json:"wins"`
	Draws          int64 `json:"draws"`
	Losses         int64 `json:"losses"`
	GoalsFor       int64 `json:"goals_for"`
	GoalsAgainst   int64 `json:"goals_against"`
	GoalDifference int64 `json:"goal_difference"`
	Points         int64 `json:"points"`
}

type TeamScorerDTO struct {
	PlayerID   int64  `json:"player_id"   gorm:"column:player_id"`
	PlayerName string `json:"player_name" gorm:"column:player_name"`
	Goals      int64  `json:"goals"       gorm:"column:goals"`
}

// TeamSeasonReviewDTO is one team's season: the overall record, the
// home/away split and its top scorers.
type TeamSeasonReviewDTO struct {
	TeamID     int64            `json:"team_id"`
	TeamName   string           `json:"team_name"`
	Season     int              `json:"season"`
	Overall    RecordDTO        `json:"overall"`
	Home       RecordDTO        `json:"home"`
	Away       RecordDTO        `json:"away"`
	TopScorers []*TeamScorerDTO `json:"top_scorers"`
}

type CareerTotalsDTO struct {
	Appearances   int64 `json:"appearances"`
	Starts        int64 `json:"starts"`
	MinutesPlayed int64 `json:"minutes_played"`
	Goals         int64 `json:"goals"`
	Assists       int64 `json:"assists"`
	YellowCards   int64 `json:"yellow_cards"`
	RedCards      int64 `json:"red_cards"`
}

type SeasonStatsDTO struct {
	Season        int   `json:"season"`
	Appearances   int64 `json:"appearances"`
	Starts        int64 `json:"starts"`
	MinutesPlayed int64 `json:"minutes_played"`
	Goals         int64 `json:"goals"`
	Assists       int64 `json:"assists"`
	YellowCards   int64 `json:"yellow_cards"`
	RedCards      int64 `json:"red_cards"`
}

type PlayerCareerResponseDTO struct {
	PlayerID   int64             `json:"player_id"`
	PlayerName string            `json:"player_name"`
	Totals     CareerTotalsDTO   `json:"totals"`
	Seasons    []*SeasonStatsDTO `json:"seasons"`
}
