package api

import "github.com/devu-community/chatsview/domain"

// JSON shapes of the collaborator endpoints

type ChatResponse struct {
	Id          int64             `json:"id"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Hit         int               `json:"hit"`
	Like        int               `json:"like"`
	Username    string            `json:"username"`
	CreateAt    string            `json:"createAt"`
	Tags        []string          `json:"tags"`
	StudyStatus string            `json:"studyStatus"`
	Comments    []CommentResponse `json:"comments"`
}

type CommentResponse struct {
	CommentId int64  `json:"commentId"`
	Username  string `json:"username"`
	Contents  string `json:"contents"`
	CreateAt  string `json:"createAt"`
}

type LikedPost struct {
	Id int64 `json:"id"`
}

type LikeRequest struct {
	Username string `json:"username"`
	PostId   int64  `json:"postId"`
}

type LikeResponse struct {
	Liked bool `json:"liked"`
}

type LikeSizeResponse struct {
	LikeSize int `json:"likeSize"`
}

type CreateCommentRequest struct {
	Username string `json:"username"`
	PostId   int64  `json:"postId"`
	Contents string `json:"contents"`
}

type UpdateCommentRequest struct {
	Contents string `json:"contents"`
}

func (r ChatResponse) toDomain() *domain.Post {
	comments := make([]domain.Comment, 0, len(r.Comments))
	for _, c := range r.Comments {
		comments = append(comments, domain.Comment{
			CommentId:      domain.CommentId(c.CommentId),
			AuthorUsername: c.Username,
			Contents:       c.Contents,
			CreatedAt:      c.CreateAt,
		})
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Post{
		Id:             domain.PostId(r.Id),
		Title:          r.Title,
		Content:        r.Content,
		HitCount:       r.Hit,
		LikeCount:      r.Like,
		AuthorUsername: r.Username,
		CreatedAt:      r.CreateAt,
		Tags:           tags,
		StudyStatus:    r.StudyStatus,
		Comments:       comments,
	}
}
