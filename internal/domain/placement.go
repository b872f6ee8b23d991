package domain

import "time"

// Placement binds a card to a cell of a profile's paged grid.
// The tuple (profile_id, card_id, page_index, row_index, col_index) is
// unique; the same card may appear again at a different cell.
type Placement struct {
	ID        int       `json:"id" db:"id"`
	ProfileID int       `json:"profile_id" db:"profile_id"`
	CardID    int       `json:"card_id" db:"card_id"`
	RowIndex  int       `json:"row_index" db:"row_index"`
	ColIndex  int       `json:"col_index" db:"col_index"`
	PageIndex int       `json:"page_index" db:"page_index"`
	IsVisible bool      `json:"is_visible" db:"is_visible"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PlacementPatch carries a partial position/visibility update. Nil fields
// were absent from the request and must not be touched.
type PlacementPatch struct {
	RowIndex  *int  `json:"row_index"`
	ColIndex  *int  `json:"col_index"`
	PageIndex *int  `json:"page_index"`
	IsVisible *bool `json:"is_visible"`
}

func (p *PlacementPatch) IsEmpty() bool {
	return p.RowIndex == nil && p.ColIndex == nil && p.PageIndex == nil && p.IsVisible == nil
}

// PlacementCard is a placement joined with its card's display fields,
// the shape the board renderer consumes.
type PlacementCard struct {
	ID              int     `json:"id" db:"id"`
	ProfileID       int     `json:"profile_id" db:"profile_id"`
	CardID          int     `json:"card_id" db:"card_id"`
	RowIndex        int     `json:"row_index" db:"row_index"`
	ColIndex        int     `json:"col_index" db:"col_index"`
	PageIndex       int     `json:"page_index" db:"page_index"`
	IsVisible       bool    `json:"is_visible" db:"is_visible"`
	Title           string  `json:"title" db:"title"`
	LabelText       *string `json:"label_text" db:"label_text"`
	ImagePath       *string `json:"image_path" db:"image_path"`
	AudioPath       *string `json:"audio_path" db:"audio_path"`
	ImageURL        *string `json:"image_url" db:"image_url"`
	SoundURL        *string `json:"sound_url" db:"sound_url"`
	TextColor       *string `json:"text_color" db:"text_color"`
	BackgroundColor *string `json:"background_color" db:"background_color"`
	Category        *string `json:"category" db:"category"`
	CardData        *string `json:"card_data" db:"card_data"`
}
