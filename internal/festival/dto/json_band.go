package dto

import "github.com/handiism/festival-bands/internal/model"

// JSONBand represents one band object of the dataset document.
//
// Fields missing from the document decode to their zero values; they are
// rendered blank rather than rejected.
type JSONBand struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    []string `json:"category"`
	Gigs        []string `json:"gigs"`
}

// ToBand converts JSONBand to a model.Band.
func (jb *JSONBand) ToBand() model.Band {
	return model.Band{
		Name:        jb.Name,
		Description: jb.Description,
		Category:    jb.Category,
		Gigs:        jb.Gigs,
	}
}
