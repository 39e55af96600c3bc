// File: /models/types.go
package models

// GoalPeriod is the period a revenue goal is expressed in.
type GoalPeriod string

const (
	GoalDaily   GoalPeriod = "daily"
	GoalWeekly  GoalPeriod = "weekly"
	GoalMonthly GoalPeriod = "monthly"
)

func (p GoalPeriod) Valid() bool {
	switch p {
	case GoalDaily, GoalWeekly, GoalMonthly:
		return true
	}
	return false
}

// GoalType selects whether the goal is compared with gross or net revenue.
type GoalType string

const (
	GoalGross GoalType = "gross"
	GoalNet   GoalType = "net"
)

func (t GoalType) Valid() bool {
	return t == GoalGross || t == GoalNet
}

// RevenueKind distinguishes platform payouts from cash rides.
type RevenueKind string

const (
	RevenueApp  RevenueKind = "app"
	RevenueCash RevenueKind = "cash"
)

const (
	SourceCash  = "Cash"
	SourceOther = "Other"
)
