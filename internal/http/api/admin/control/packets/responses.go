package packets

// RESPONSES FOR /api/admin/*

type ReloadResponse struct {
	Holidays   int    `json:"holidays"`
	PrayerDays int    `json:"prayer_days"`
	Months     int    `json:"months"`
	Dropped    int    `json:"dropped"`
	LoadedAt   string `json:"loaded_at"`
}

type AssetResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
