package prayer

// climate notes for the nakai of the Maldivian seafaring year
var nakaiDescriptions = map[string]string{
	"Mula":          "Strong winds, rough seas",
	"Furahalha":     "Strong north-easterly winds, rough seas",
	"Uthuruhalha":   "Clear blue skies, strong winds, rough seas",
	"Huvan":         "Calm seas, clear blue skies",
	"Dhinasha":      "North-easterly winds, moderate seas, plenty of sunshine",
	"Hiyaviha":      "Seas are calm, days and nights are hot",
	"Furabadhuruva": "Frequent, short, sharp bursts of thunder and lightning",
	"Fusbadhuruva":  "Usually clear blue skies",
	"Reyva":         "If storm occur they may be severe",
	"Assidha":       "Begins with storm, then becomes hot and dry",
	"Burunu":        "Begins with a storm and strong winds, then becomes calm",
	"Kethi":         "Dark clouds, frequent rains",
	"Roanu":         "Storms, strong winds and rough seas",
	"Miyahelia":     "Storms, rough seas and strong westerly winds",
	"Adha":          "South-westerly winds and light rain",
	"Funoas":        "Storms, rough seas, frequent sudden gales",
	"Fus":           "Wet and overcast",
	"Ahuliha":       "Less frequent storms, calmer days",
	"Maa":           "Generally calm",
	"Fura":          "Isolated showers, usually dry with light north-westerly winds",
	"Uthura":        "Strong north-westerly winds",
	"Atha":          "Generally clear and calm with isolated showers",
	"Hitha":         "Light winds, isolated showers",
	"Hey":           "Strong winds from all directions",
	"Nora":          "Light winds, some sun and showers",
	"Dosha":         "Light north-easterly winds",
}

// NakaiDescription returns "" for names outside the table.
func NakaiDescription(name string) string {
	return nakaiDescriptions[name]
}
