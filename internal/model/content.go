package model

// MonthContent is one entry of month.json: the featured tea and the page theme.
type MonthContent struct {
	Flower              string `json:"flower"                       validate:"required"`
	FlowerMv            string `json:"flower_mv"`
	FlowerDescription   string `json:"flower_description"`
	FlowerImage         string `json:"flower_image"`
	Video               string `json:"video"`
	ThemeColor          string `json:"theme_color"`
	Benefit1Title       string `json:"flower_benefit_1_title"`
	Benefit1Description string `json:"flower_benefit_1_description"`
	Benefit2Title       string `json:"flower_benefit_2_title"`
	Benefit2Description string `json:"flower_benefit_2_description"`
	Benefit3Title       string `json:"flower_benefit_3_title"`
	Benefit3Description string `json:"flower_benefit_3_description"`
}

type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (c MonthContent) Benefits() []Benefit {
	out := make([]Benefit, 0, 3)
	for _, b := range []Benefit{
		{c.Benefit1Title, c.Benefit1Description},
		{c.Benefit2Title, c.Benefit2Description},
		{c.Benefit3Title, c.Benefit3Description},
	} {
		if b.Title != "" || b.Description != "" {
			out = append(out, b)
		}
	}
	return out
}
