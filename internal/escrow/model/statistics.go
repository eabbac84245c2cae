package model

import "time"

// StatisticsDates are the newest dates recorded in the trade statistics dataset,
// in milliseconds since the epoch as the dataset stores them.
type StatisticsDates struct {
	LatestTradeDate int64
	LatestOfferDate int64
}

// LatestTrade returns LatestTradeDate as a time.
func (d StatisticsDates) LatestTrade() time.Time {
	return time.UnixMilli(d.LatestTradeDate).UTC()
}
