package repository

import (
	"context"
	"dashboard/infras/otel"
	"dashboard/internal/domains/dashboard/model"
	entryModel "dashboard/internal/domains/entry/model"
	"dashboard/shared/constant"
)

type Dashboard interface {
	Get(ctx context.Context) (model.Dashboard, error)
}

type repositoryImpl struct {
	otel otel.Otel
}

func New(ot otel.Otel) Dashboard {
	return &repositoryImpl{otel: ot}
}

func (r *repositoryImpl) Get(ctx context.Context) (model.Dashboard, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Dashboard.Get")
	defer scope.End()

	// Built per call so callers never share slices.
	return model.Dashboard{
		Nav:     navBar(),
		Hero:    hero(),
		Summary: summary(),
	}, nil
}

func navBar() model.NavBar {
	return model.NavBar{
		Brand: "Dashboard",
		Links: []model.Link{
			{Label: "Overview", Href: "/", Active: true},
			{Label: "Projects", Href: "/#entries"},
			{Label: "Analytics", Href: "/#hero"},
			{Label: "Reports", Href: "/#summary"},
		},
		User: model.User{
			Name:      "John Doe",
			Email:     "john@example.com",
			Initials:  "JD",
			AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=32&h=32&fit=crop&crop=face",
		},
		UserMenu: []string{"Profile", "Settings", "Log out"},
	}
}

func hero() model.Hero {
	return model.Hero{
		Greeting: "Welcome back, John!",
		Subtitle: "Here's what's happening with your projects today.",
		Metrics: []model.MetricCard{
			{Title: "Total Revenue", Value: "$45,231.89", Trend: "+20.1% from last month", TrendDirection: model.TrendUp},
			{Title: "Active Users", Value: "+2,350", Trend: "+180.1% from last month", TrendDirection: model.TrendUp},
			{Title: "Projects", Value: "+12,234", Trend: "+19% from last month", TrendDirection: model.TrendUp},
			{Title: "Conversion Rate", Value: "3.24%", Trend: "-2.1% from last month", TrendDirection: model.TrendDown},
		},
		Revenue: model.Series{
			Title:       "Revenue Overview",
			Description: "Monthly revenue for the last 7 months",
			Kind:        model.SeriesArea,
			Points: []model.Point{
				{Label: "Jan", Value: 4000},
				{Label: "Feb", Value: 3000},
				{Label: "Mar", Value: 5000},
				{Label: "Apr", Value: 4500},
				{Label: "May", Value: 6000},
				{Label: "Jun", Value: 5500},
				{Label: "Jul", Value: 7000},
			},
		},
		Activity: model.Series{
			Title:       "Weekly Activity",
			Description: "Daily activity for this week",
			Kind:        model.SeriesBar,
			Points: []model.Point{
				{Label: "Mon", Value: 120},
				{Label: "Tue", Value: 150},
				{Label: "Wed", Value: 180},
				{Label: "Thu", Value: 200},
				{Label: "Fri", Value: 170},
				{Label: "Sat", Value: 90},
				{Label: "Sun", Value: 60},
			},
		},
	}
}

func summary() model.Summary {
	completion, performance := 73, 94

	return model.Summary{
		Title:  "Performance Summary",
		Period: "This Week",
		Cards: []model.SummaryCard{
			{
				Title:       "Project Completion",
				Description: "Overall progress this quarter",
				Value:       "73%",
				Progress:    &completion,
				Trend:       "+5.2% from last quarter",
			},
			{
				Title:       "Active Tasks",
				Description: "Tasks currently in progress",
				Value:       "24",
				Badge:       &model.Badge{Text: "In Progress", Variant: entryModel.VariantSecondary},
			},
			{
				Title:       "Performance Score",
				Description: "Overall team performance",
				Value:       "94%",
				Progress:    &performance,
				Trend:       "+12% improvement",
			},
			{
				Title:       "Completed This Week",
				Description: "Successfully finished tasks",
				Value:       "18",
				Badge:       &model.Badge{Text: "Completed", Variant: entryModel.VariantDefault},
			},
		},
	}
}
