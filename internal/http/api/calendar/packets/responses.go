package packets

import "github.com/Nixie-Tech-LLC/nakai/internal/model"

// RESPONSES FOR /api/selection and /api/months/:slug

type SelectionResponse struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Slug     string `json:"slug"`
	Selected string `json:"selected"`
}

type MonthContentResponse struct {
	Slug        string          `json:"slug"`
	Month       int             `json:"month"`
	Flower      string          `json:"flower"`
	FlowerMv    string          `json:"flower_mv"`
	Description string          `json:"description"`
	ThemeColor  string          `json:"theme_color"`
	ImageURL    string          `json:"image_url"`
	VideoURL    string          `json:"video_url"`
	Benefits    []model.Benefit `json:"benefits"`
}
