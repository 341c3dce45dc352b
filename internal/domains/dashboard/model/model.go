package model

import (
	entryModel "dashboard/internal/domains/entry/model"
)

type Link struct {
	Label  string
	Href   string
	Active bool
}

type User struct {
	Name      string
	Email     string
	Initials  string
	AvatarURL string
}

type NavBar struct {
	Brand    string
	Links    []Link
	User     User
	UserMenu []string
}

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
)

type MetricCard struct {
	Title          string
	Value          string
	Trend          string
	TrendDirection TrendDirection
}

type SeriesKind string

const (
	SeriesArea SeriesKind = "area"
	SeriesBar  SeriesKind = "bar"
)

type Point struct {
	Label string
	Value int
}

type Series struct {
	Title       string
	Description string
	Kind        SeriesKind
	Points      []Point
}

// Scaled returns each point as a percentage of the largest value in the series.
func (s Series) Scaled() []int {
	peak := 0
	for _, point := range s.Points {
		peak = max(peak, point.Value)
	}

	scaled := make([]int, len(s.Points))
	if peak <= 0 {
		return scaled
	}

	for i, point := range s.Points {
		scaled[i] = max(0, point.Value) * 100 / peak
	}

	return scaled
}

type Badge struct {
	Text    string
	Variant entryModel.Variant
}

type SummaryCard struct {
	Title       string
	Description string
	Value       string
	Progress    *int
	Trend       string
	Badge       *Badge
}

type Footer struct {
	ShowProgress bool
	ShowBadge    bool
	ShowTrend    bool
}

// Footer decides what goes under the card value: progress with its trend, then
// the badge, and the trend on its own only when there is neither.
func (c SummaryCard) Footer() Footer {
	footer := Footer{
		ShowProgress: c.Progress != nil && *c.Progress != 0,
		ShowBadge:    c.Badge != nil,
	}

	footer.ShowTrend = c.Trend != "" && (footer.ShowProgress || !footer.ShowBadge)

	return footer
}

type Hero struct {
	Greeting string
	Subtitle string
	Metrics  []MetricCard
	Revenue  Series
	Activity Series
}

type Summary struct {
	Title  string
	Period string
	Cards  []SummaryCard
}

type Dashboard struct {
	Nav     NavBar
	Hero    Hero
	Summary Summary
}
