package outfit

// Request optionally overrides the live weather. Both fields must be set to take effect.
type Request struct {
	Temperature *float64 `json:"temperature"`
	Condition   *string  `json:"condition"`
}

// Response is serialized back to API consumers.
type Response struct {
	Items            []ItemView `json:"items"`
	Reasoning        string     `json:"reasoning"`
	Temperature      int        `json:"temperature"`
	Weather          string     `json:"weather"`
	Category         Category   `json:"category"`
	Occasion         string     `json:"occasion"`
	WeatherDefaulted bool       `json:"weatherDefaulted,omitempty"`
}

// ItemView is the public projection of a chosen clothing item.
type ItemView struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Src   string  `json:"src"`
	Image *string `json:"image"`
	Alt   string  `json:"alt"`
}

// Config wires runtime settings for the outfit domain.
type Config struct {
	DefaultTemperature float64
	DefaultCondition   string
	DefaultOccasion    string
}
