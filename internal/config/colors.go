package config

// BoardColor is a pair of CSS colours for the dark and light squares.
type BoardColor struct {
	Dark  string `json:"dark"`
	Light string `json:"light"`
}

type BoardColorPreset struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Color BoardColor `json:"color"`
}

// BoardColors is an ordered list of presets.
type BoardColors []BoardColorPreset

func DefaultBoardColors() BoardColors {
	return BoardColors{
		{ID: "brown", Name: "Brown", Color: BoardColor{Dark: "#b88762", Light: "#edd6b0"}},
		{ID: "green", Name: "Green", Color: BoardColor{Dark: "#739552", Light: "#ebecd0"}},
		{ID: "red", Name: "Red", Color: BoardColor{Dark: "#bb5746", Light: "#f5dbc3"}},
		{ID: "orange", Name: "Orange", Color: BoardColor{Dark: "#d18815", Light: "#fae4ae"}},
		{ID: "blue", Name: "Blue", Color: BoardColor{Dark: "#4b7399", Light: "#eae9d2"}},
		{ID: "purple", Name: "Purple", Color: BoardColor{Dark: "#8476ba", Light: "#f0f1f0"}},
	}
}

func (b BoardColors) Get(id string) (BoardColor, bool) {
	for _, p := range b {
		if p.ID == id {
			return p.Color, true
		}
	}
	return BoardColor{}, false
}
