package models

// Project is a single portfolio entry owned by a user. The owner is fixed at
// creation; no operation rebinds user_id.
type Project struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	TechUsed    string `db:"tech_used"`
	GithubLink  string `db:"github_link"`
	UserID      int64  `db:"user_id"`
}

// ProjectForm carries the create-project form. All fields are required on
// create.
type ProjectForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	TechUsed    string `form:"tech_used" binding:"required"`
	GithubLink  string `form:"github_link" binding:"required"`
}

// EditProjectForm carries the edit-project form. Edit overwrites all fields
// as submitted, blanks included, so nothing is marked required here.
type EditProjectForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	TechUsed    string `form:"tech_used"`
	GithubLink  string `form:"github_link"`
}
