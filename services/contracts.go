package services

import (
	"time"

	"darasa/models"
)

// Request contracts. The validators package decodes and checks these before a
// controller hands them to a service.

type RegisterInput struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=6,max=128"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Bio      *string `json:"bio" validate:"omitempty,max=1000"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileInput accepts username for compatibility with older clients; it is
// never applied.
type ProfileInput struct {
	Username *string `json:"username"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Bio      *string `json:"bio" validate:"omitempty,max=1000"`
}

type CategoryInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	CourseIDs   []uint  `json:"course_ids" validate:"omitempty,dive,gt=0"`
}

type CategoryUpdateInput struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description     *string `json:"description" validate:"omitempty,max=1000"`
	AddCourseIDs    []uint  `json:"add_course_ids" validate:"omitempty,dive,gt=0"`
	RemoveCourseIDs []uint  `json:"remove_course_ids" validate:"omitempty,dive,gt=0"`
}

type CourseInput struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
	YoutubeURL  string `json:"youtube_url" validate:"required,max=500"`
	CategoryID  *uint  `json:"category_id" validate:"omitempty,gt=0"`
}

type CourseListQuery struct {
	Page       int    `query:"page" validate:"min=1"`
	PageSize   int    `query:"page_size" validate:"min=1,max=100"`
	Search     string `query:"search" validate:"max=200"`
	CategoryID *uint  `query:"category_id" validate:"omitempty,gt=0"`
}

type CommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type RatingInput struct {
	Value int `json:"value" validate:"required,min=1,max=5"`
}

// Response contracts.

type UserOut struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	FullName *string `json:"full_name"`
	Bio      *string `json:"bio"`
	Role     string  `json:"role"`
}

type TokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CategoryRef struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CategoryOut struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Courses     []uint  `json:"courses"`
}

type CategoryDetailOut struct {
	CategoryOut
	CourseList []CourseOut `json:"course_list"`
}

type CourseOut struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	YoutubeURL  string       `json:"youtube_url"`
	CategoryID  *uint        `json:"category_id"`
	Category    *CategoryRef `json:"category,omitempty"`
	CreatorID   uint         `json:"creator_id"`
	Creator     *UserOut     `json:"creator"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type CommentOut struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id"`
	CourseID  uint      `json:"course_id"`
}

type RatingOut struct {
	ID       uint `json:"id"`
	Value    int  `json:"value"`
	UserID   uint `json:"user_id"`
	CourseID uint `json:"course_id"`
}

type MessageOut struct {
	Detail string `json:"detail"`
}

func NewUserOut(u *models.User) *UserOut {
	if u == nil {
		return nil
	}
	return &UserOut{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Bio:      u.Bio,
		Role:     u.Role,
	}
}

func NewCategoryOut(c *models.Category) CategoryOut {
	ids := make([]uint, 0, len(c.Courses))
	for _, course := range c.Courses {
		ids = append(ids, course.ID)
	}
	return CategoryOut{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Courses:     ids,
	}
}

func NewCategoryDetailOut(c *models.Category) CategoryDetailOut {
	list := make([]CourseOut, 0, len(c.Courses))
	for i := range c.Courses {
		list = append(list, NewCourseOut(&c.Courses[i]))
	}
	return CategoryDetailOut{CategoryOut: NewCategoryOut(c), CourseList: list}
}

func NewCourseOut(c *models.Course) CourseOut {
	out := CourseOut{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		YoutubeURL:  c.YoutubeURL,
		CategoryID:  c.CategoryID,
		CreatorID:   c.CreatorID,
		Creator:     NewUserOut(c.Creator),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Category != nil {
		out.Category = &CategoryRef{ID: c.Category.ID, Name: c.Category.Name, Description: c.Category.Description}
	}
	return out
}

func NewCommentOut(c *models.Comment) CommentOut {
	return CommentOut{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UserID:    c.UserID,
		CourseID:  c.CourseID,
	}
}

func NewRatingOut(r *models.Rating) RatingOut {
	return RatingOut{ID: r.ID, Value: r.Value, UserID: r.UserID, CourseID: r.CourseID}
}
