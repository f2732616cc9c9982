package model

import (
	"encoding/json"
	"strconv"
)

// QuestionBank is a named collection of categories playable as one game.
// Banks are immutable once loaded; the wire format matches the JSON bank
// files consumed by the board UI.
type QuestionBank struct {
	Subject    string     `json:"subject"`
	Categories []Category `json:"categories"`
}

// Category groups questions sharing a theme, displayed as one board column.
type Category struct {
	ID        FlexID     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Question is a single board cell.
type Question struct {
	ID            FlexID   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Points        int      `json:"points"`
	Image         string   `json:"image,omitempty"`
}

// FlexID is an opaque identifier that accepts either a JSON number or a
// JSON string. Bank files in the wild use numeric ids; authored banks may
// use strings. Numeric ids are written back out as numbers so a bank
// survives a decode/encode cycle unchanged.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func (id FlexID) String() string {
	return string(id)
}
