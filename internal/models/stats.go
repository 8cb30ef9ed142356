package models

// Stats is the derived progress snapshot. Each field is an integer
// percentage in [0,100], recomputed in full from the activity log after
// every mutation; it is never partially updated.
type Stats struct {
	Quran     int `json:"quran"`
	Prayers   int `json:"prayers"`
	Dhikr     int `json:"dhikr"`
	GoodDeeds int `json:"goodDeeds"`
	Overall   int `json:"overall"`
}
