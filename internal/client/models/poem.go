package models

type Poem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Author       *int64 `json:"author"`
	AuthorName   string `json:"author_name,omitempty"`
	Category     *int64 `json:"category"`
	CategoryName string `json:"category_name,omitempty"`
	Language     string `json:"language,omitempty"`
}

// PoemInput is the body sent when creating or updating a poem.
type PoemInput struct {
	UserID   int64  `json:"user_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   *int64 `json:"author"`
	Category *int64 `json:"category"`
	Language string `json:"language"`
}

type PoemCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// PoemCategoryInput is the body sent when adding a poem category.
type PoemCategoryInput struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Review struct {
	ID       int64  `json:"id"`
	User     int64  `json:"user"`
	Username string `json:"username,omitempty"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
}

// ReviewInput is the body of a poem review submission.
type ReviewInput struct {
	UserID  int64  `json:"user_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
