package domain

import "time"

// Visit — факт посещения витрины, не больше одного на IP в сутки.
type Visit struct {
	IPAddress string
	UserAgent string
	VisitDate time.Time
}

type VisitorStats struct {
	Today int64
	Week  int64
	Total int64
}
