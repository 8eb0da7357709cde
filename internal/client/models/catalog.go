package models

import "strings"

type Book struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Author        *int64   `json:"author"`
	AuthorName    string   `json:"author_name,omitempty"`
	Category      *int64   `json:"category"`
	CategoryName  string   `json:"category_name,omitempty"`
	Genre         string   `json:"genre,omitempty"`
	GenreDisplay  string   `json:"genre_display,omitempty"`
	FileType      string   `json:"file_type,omitempty"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	ContentURL    string   `json:"content_url,omitempty"`
	Language      string   `json:"language,omitempty"`
	IsPaid        bool     `json:"is_paid"`
	Price         *float64 `json:"price"`
	PublishedYear *int     `json:"published_year"`
	IsActive      bool     `json:"is_active"`
}

// Readable reports whether the content can be opened in the reader, which
// handles PDF and EPUB documents only.
func (b Book) Readable() bool {
	u := strings.ToLower(b.ContentURL)
	return strings.Contains(u, ".pdf") || strings.Contains(u, ".epub")
}

// BookInput is the body sent when creating or updating a book.
type BookInput struct {
	UserID        int64    `json:"user_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Author        *int64   `json:"author"`
	Category      *int64   `json:"category"`
	Genre         *string  `json:"genre"`
	FileType      string   `json:"file_type"`
	CoverImageURL string   `json:"cover_image_url"`
	ContentURL    string   `json:"content_url"`
	Language      string   `json:"language"`
	IsPaid        bool     `json:"is_paid"`
	Price         *float64 `json:"price"`
	PublishedYear *int     `json:"published_year"`
}

type Author struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// AuthorInput is the body sent when creating or updating an author.
type AuthorInput struct {
	UserID   int64   `json:"user_id"`
	Name     string  `json:"name"`
	Bio      string  `json:"bio"`
	PhotoURL *string `json:"photo_url"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Genre struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UploadKind selects the upload endpoint.
type UploadKind string

const (
	UploadImage UploadKind = "image"
	UploadPDF   UploadKind = "pdf"
	UploadText  UploadKind = "text"
)

// Upload is the backend's answer to a file upload.
type Upload struct {
	URL string `json:"url"`
}
