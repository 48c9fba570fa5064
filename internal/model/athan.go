package model

// NakaiPrayer is one entry of nakai_prayer.json, keyed by "02 Jan 2006".
// Prayer times are decimal hours (12.5 is 12:30).
type NakaiPrayer struct {
	NakaiNameEn string  `json:"nakai_name_en" validate:"required"`
	NakaiNameMv string  `json:"nakai_name_mv"`
	NakaiDay    int     `json:"nakai_day"     validate:"gte=1"`
	Fajr        float64 `json:"Fajr"          validate:"gte=0,lt=24"`
	Sunrise     float64 `json:"Sunrise"       validate:"gte=0,lt=24"`
	Dhuhr       float64 `json:"Dhuhr"         validate:"gte=0,lt=24"`
	Asr         float64 `json:"Asr"           validate:"gte=0,lt=24"`
	Maghrib     float64 `json:"Maghrib"       validate:"gte=0,lt=24"`
	Isha        float64 `json:"Isha"          validate:"gte=0,lt=24"`
}

type Prayer struct {
	Name   string `json:"name"`   // "Fajr", "Sun Rise", ...
	Time   string `json:"time"`   // "05:12"
	Period string `json:"period"` // "AM" or "PM"
	Icon   string `json:"icon"`
}

type Nakai struct {
	NameEn      string `json:"name_en"`
	NameMv      string `json:"name_mv"`
	Day         int    `json:"day"`
	Description string `json:"description"`
}
