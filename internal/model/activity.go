package model

// Dates travel as "2006-01-02" strings. Streak logic carries no time of day,
// so the wire format does not either.
const DateFormat = "2006-01-02"

type Activity struct {
	ID              int64  `json:"id"`
	UserID          string `json:"user_id"`
	Kind            string `json:"kind"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
	OccurredOn      string `json:"occurred_on"`
}

type RecordActivityRequest struct {
	Kind            string `json:"kind"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`

	// OccurredOn defaults to today when empty.
	OccurredOn string `json:"occurred_on"`
}

type RecordActivityResponse struct {
	Statistic    UserStatistic `json:"statistic"`
	Achievements []Achievement `json:"achievements"`
}

type GetListActivityRequest struct {
	Kind   string `json:"kind"`
	Begin  string `json:"begin"`
	End    string `json:"end"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetListActivityResponse struct {
	Activities []Activity `json:"activities"`
}

type GetActivityCalendarRequest struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
}

type CalendarMark struct {
	Date        string `json:"date"`
	HasActivity bool   `json:"has_activity"`
}

type GetActivityCalendarResponse struct {
	Marks []CalendarMark `json:"marks"`
}
