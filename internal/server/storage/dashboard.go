package storage

import (
	"context"
	"time"
)

// CategoryAggregate holds per-category solved stats for a list.
type CategoryAggregate struct {
	AvgTimeMinutes *float64
	Category       string
	SolvedCount    int
}

// FarthestSolved описывает самую дальнюю по порядку решенную задачу списка.
type FarthestSolved struct {
	Category   string
	OrderIndex int
}

// DashboardStorage defines aggregate queries backing the dashboard view
type DashboardStorage interface {
	// LatestActivity returns the list and timestamp of the user's most
	// recent attempt update. Returns ("", zero, nil) when there is none.
	LatestActivity(ctx context.Context, userID string) (listID string, at time.Time, err error)

	// SolvedDates returns distinct solved dates (YYYY-MM-DD) of a list,
	// newest first. Используется для подсчета streak.
	SolvedDates(ctx context.Context, userID, listID string) ([]string, error)

	// CategoryStats aggregates solved counts and average time per category
	CategoryStats(ctx context.Context, userID, listID string) ([]CategoryAggregate, error)

	// Farthest returns the farthest solved problem of a list by catalog
	// order. Returns (nil, nil) when nothing is solved yet.
	Farthest(ctx context.Context, userID, listID string) (*FarthestSolved, error)
}
