package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a positioned promotional slide for the storefront hero area.
type Banner struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	LinkURL     string    `json:"link_url,omitempty"`
	ButtonText  string    `json:"button_text,omitempty"`
	Position    int       `json:"position"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FlashBanner is the thin announcement strip above the header.
type FlashBanner struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	LinkURL         string    `json:"link_url,omitempty"`
	BackgroundColor string    `json:"background_color,omitempty"`
	TextColor       string    `json:"text_color,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateBannerRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkURL     string `json:"link_url,omitempty" validate:"omitempty,url"`
	ButtonText  string `json:"button_text,omitempty"`
	Position    int    `json:"position" validate:"gte=0"`
}

type UpdateBannerRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkURL     *string `json:"link_url,omitempty" validate:"omitempty,url"`
	ButtonText  *string `json:"button_text,omitempty"`
	Position    *int    `json:"position,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type CreateFlashBannerRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description,omitempty"`
	LinkURL         string `json:"link_url,omitempty" validate:"omitempty,url"`
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
}

type UpdateFlashBannerRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description     *string `json:"description,omitempty"`
	LinkURL         *string `json:"link_url,omitempty" validate:"omitempty,url"`
	BackgroundColor *string `json:"background_color,omitempty"`
	TextColor       *string `json:"text_color,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}
