package models

import "time"

// PostContent holds the author-supplied fields shared by post requests and
// post responses.
// swagger:model PostContent
type PostContent struct {
	// Author username
	// required: true
	// example: alice
	Username string `json:"username" db:"username"`

	// Post text
	// required: true
	// example: hello world
	Content string `json:"content" db:"content"`
}

// Post represents a row of the tweets table as returned to clients
// swagger:model Post
type Post struct {
	// Server-assigned identifier
	// example: 1
	ID int64 `json:"id" db:"id"`

	PostContent

	// Creation time, set once by the database
	Created time.Time `json:"created" db:"created"`

	// Number of likes
	// example: 0
	Likes int64 `json:"likes" db:"likes"`
}
