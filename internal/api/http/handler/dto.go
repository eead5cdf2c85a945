package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/socialfeed-server/internal/model"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createPostRequest struct {
	Content  string `json:"content"`
	MediaURL string `json:"mediaUrl" validate:"omitempty,url"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type sessionUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

type sessionResponse struct {
	User sessionUserResponse `json:"user"`
}

type authorResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type mediaResponse struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"postId"`
	MediaURL  string    `json:"mediaUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type postResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Media     []mediaResponse `json:"media"`
	User      authorResponse  `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func newUserResponse(p model.Profile) userResponse {
	return userResponse{
		ID:        p.ID,
		Email:     p.Email,
		Username:  p.Username,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newUserResponses(profiles []model.Profile) []userResponse {
	out := make([]userResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, newUserResponse(p))
	}
	return out
}

func newSessionResponse(s model.Session) sessionResponse {
	return sessionResponse{
		User: sessionUserResponse{
			ID:       s.User.ID,
			Email:    s.User.Email,
			Username: s.User.Username,
		},
	}
}

func newPostResponse(p model.Post) postResponse {
	media := make([]mediaResponse, 0, len(p.Media))
	for _, m := range p.Media {
		media = append(media, mediaResponse{
			ID:        m.ID,
			PostID:    m.PostID,
			MediaURL:  m.URL,
			CreatedAt: m.CreatedAt,
		})
	}

	return postResponse{
		ID:        p.ID,
		UserID:    p.AuthorID,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Media:     media,
		User: authorResponse{
			ID:       p.Author.ID,
			Username: p.Author.Username,
			Email:    p.Author.Email,
		},
	}
}

func newPostResponses(posts []model.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostResponse(p))
	}
	return out
}
