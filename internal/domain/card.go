package domain

import "time"

// Card is a reusable symbol/media unit placed into one or more profiles.
// Cards are created and edited elsewhere; this service reads them only.
type Card struct {
	ID              int       `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	LabelText       *string   `json:"label_text" db:"label_text"`
	ImagePath       *string   `json:"image_path" db:"image_path"`
	AudioPath       *string   `json:"audio_path" db:"audio_path"`
	ImageURL        *string   `json:"image_url" db:"image_url"`
	SoundURL        *string   `json:"sound_url" db:"sound_url"`
	TextColor       *string   `json:"text_color" db:"text_color"`
	BackgroundColor *string   `json:"background_color" db:"background_color"`
	Category        *string   `json:"category" db:"category"`
	CardData        *string   `json:"card_data" db:"card_data"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
