package dto

import (
	"dashboard/internal/domains/dashboard/model"
)

type LinkResponse struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type UserResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Initials  string `json:"initials"`
	AvatarURL string `json:"avatar_url"`
}

type NavBarResponse struct {
	Brand    string         `json:"brand"`
	Links    []LinkResponse `json:"links"`
	User     UserResponse   `json:"user"`
	UserMenu []string       `json:"user_menu"`
}

func (r *NavBarResponse) FromModel(nav model.NavBar) {
	r.Brand = nav.Brand
	r.User = UserResponse(nav.User)
	r.UserMenu = append([]string(nil), nav.UserMenu...)

	r.Links = make([]LinkResponse, len(nav.Links))
	for i, link := range nav.Links {
		r.Links[i] = LinkResponse(link)
	}
}

type MetricCardResponse struct {
	Title          string `json:"title"`
	Value          string `json:"value"`
	Trend          string `json:"trend"`
	TrendDirection string `json:"trend_direction"`
}

type PointResponse struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Height int    `json:"height"`
}

type SeriesResponse struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Kind        string          `json:"kind"`
	Points      []PointResponse `json:"points"`
}

func (r *SeriesResponse) FromModel(series model.Series) {
	r.Title = series.Title
	r.Description = series.Description
	r.Kind = string(series.Kind)

	heights := series.Scaled()

	r.Points = make([]PointResponse, len(series.Points))
	for i, point := range series.Points {
		r.Points[i] = PointResponse{Label: point.Label, Value: point.Value, Height: heights[i]}
	}
}

type HeroResponse struct {
	Greeting string               `json:"greeting"`
	Subtitle string               `json:"subtitle"`
	Metrics  []MetricCardResponse `json:"metrics"`
	Revenue  SeriesResponse       `json:"revenue"`
	Activity SeriesResponse       `json:"activity"`
}

func (r *HeroResponse) FromModel(hero model.Hero) {
	r.Greeting = hero.Greeting
	r.Subtitle = hero.Subtitle
	r.Revenue.FromModel(hero.Revenue)
	r.Activity.FromModel(hero.Activity)

	r.Metrics = make([]MetricCardResponse, len(hero.Metrics))
	for i, metric := range hero.Metrics {
		r.Metrics[i] = MetricCardResponse{
			Title:          metric.Title,
			Value:          metric.Value,
			Trend:          metric.Trend,
			TrendDirection: string(metric.TrendDirection),
		}
	}
}

type BadgeResponse struct {
	Text    string `json:"text"`
	Variant string `json:"variant"`
}

type SummaryCardResponse struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Value        string         `json:"value"`
	Progress     *int           `json:"progress,omitempty"`
	Trend        string         `json:"trend,omitempty"`
	Badge        *BadgeResponse `json:"badge,omitempty"`
	ShowProgress bool           `json:"show_progress"`
	ShowBadge    bool           `json:"show_badge"`
	ShowTrend    bool           `json:"show_trend"`
}

func (r *SummaryCardResponse) FromModel(card model.SummaryCard) {
	footer := card.Footer()

	r.Title = card.Title
	r.Description = card.Description
	r.Value = card.Value
	r.Trend = card.Trend
	r.ShowProgress = footer.ShowProgress
	r.ShowBadge = footer.ShowBadge
	r.ShowTrend = footer.ShowTrend

	if card.Progress != nil {
		progress := *card.Progress
		r.Progress = &progress
	}

	if card.Badge != nil {
		r.Badge = &BadgeResponse{Text: card.Badge.Text, Variant: string(card.Badge.Variant)}
	}
}

type SummaryResponse struct {
	Title  string                `json:"title"`
	Period string                `json:"period"`
	Cards  []SummaryCardResponse `json:"cards"`
}

func (r *SummaryResponse) FromModel(summary model.Summary) {
	r.Title = summary.Title
	r.Period = summary.Period

	r.Cards = make([]SummaryCardResponse, len(summary.Cards))
	for i, card := range summary.Cards {
		r.Cards[i].FromModel(card)
	}
}

type DashboardResponse struct {
	Nav     NavBarResponse  `json:"nav"`
	Hero    HeroResponse    `json:"hero"`
	Summary SummaryResponse `json:"summary"`
}

func (r *DashboardResponse) FromModel(dashboard model.Dashboard) {
	r.Nav.FromModel(dashboard.Nav)
	r.Hero.FromModel(dashboard.Hero)
	r.Summary.FromModel(dashboard.Summary)
}
