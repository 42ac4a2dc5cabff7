package httpapi

import (
	"github.com/footballower/backend/internal/domain/schedule"
	"github.com/footballower/backend/internal/domain/standings"
	"github.com/footballower/backend/internal/usecase"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type favoriteRequest struct {
	TeamName string `json:"teamName" validate:"required"`
}

type authResponse struct {
	Username string `json:"username"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type standingsRowResponse struct {
	Team         string   `json:"team"`
	Rank         string   `json:"rank"`
	Points       string   `json:"points"`
	Name         string   `json:"name,omitempty"`
	ProfileURL   string   `json:"profileUrl,omitempty"`
	Coach        string   `json:"coach,omitempty"`
	Competitions []string `json:"competitions,omitempty"`
	ID           int64    `json:"id,omitempty"`
	CrestURL     string   `json:"crestUrl,omitempty"`
}

type recentMatchResponse struct {
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore string `json:"homeScore"`
	AwayScore string `json:"awayScore"`
}

type matchDateResponse struct {
	Date     string `json:"date"`
	DateText string `json:"dateText"`
}

type upcomingFixtureResponse struct {
	NextMatch []string           `json:"nextMatch"`
	MatchDate *matchDateResponse `json:"matchDate,omitempty"`
}

type teamScheduleResponse struct {
	RecentMatches   []recentMatchResponse    `json:"recentMatches"`
	UpcomingFixture *upcomingFixtureResponse `json:"upcomingFixture,omitempty"`
}

type favoriteScheduleResponse struct {
	Team     string                `json:"team"`
	Schedule *teamScheduleResponse `json:"schedule,omitempty"`
	Error    string                `json:"error,omitempty"`
}

type favoriteResponse struct {
	TeamName string `json:"teamName"`
}

func toStandingsResponse(rows []standings.EnrichedRow) []standingsRowResponse {
	out := make([]standingsRowResponse, 0, len(rows))
	for _, row := range rows {
		item := standingsRowResponse{
			Team:   row.Team,
			Rank:   row.Rank,
			Points: row.Points,
		}
		if row.Profile != nil {
			item.Name = row.Profile.Name
			item.ProfileURL = row.Profile.ProfileURL
			item.Coach = row.Profile.Coach
			item.Competitions = row.Profile.Competitions
			item.ID = row.Profile.ID
			item.CrestURL = row.Profile.CrestURL
		}
		out = append(out, item)
	}
	return out
}

func toTeamScheduleResponse(item schedule.TeamSchedule) teamScheduleResponse {
	out := teamScheduleResponse{
		RecentMatches: make([]recentMatchResponse, 0, len(item.RecentMatches)),
	}
	for _, match := range item.RecentMatches {
		out.RecentMatches = append(out.RecentMatches, recentMatchResponse{
			HomeTeam:  match.HomeTeam,
			AwayTeam:  match.AwayTeam,
			HomeScore: match.HomeScore,
			AwayScore: match.AwayScore,
		})
	}
	if item.UpcomingFixture != nil {
		fixture := &upcomingFixtureResponse{NextMatch: item.UpcomingFixture.NextMatch}
		if fixture.NextMatch == nil {
			fixture.NextMatch = []string{}
		}
		if item.UpcomingFixture.Kickoff != nil {
			fixture.MatchDate = &matchDateResponse{
				Date:     item.UpcomingFixture.Kickoff.Date,
				DateText: item.UpcomingFixture.Kickoff.DateText,
			}
		}
		out.UpcomingFixture = fixture
	}
	return out
}

func toFavoriteScheduleResponses(items []usecase.FavoriteSchedule) []favoriteScheduleResponse {
	out := make([]favoriteScheduleResponse, 0, len(items))
	for _, item := range items {
		entry := favoriteScheduleResponse{
			Team:  item.Team,
			Error: item.Error,
		}
		if item.Schedule != nil {
			converted := toTeamScheduleResponse(*item.Schedule)
			entry.Schedule = &converted
		}
		out = append(out, entry)
	}
	return out
}
