package domain

// PostId identifies a forum post on the REST collaborator
type PostId int64

// CommentId identifies a comment; it is the key of the comment menu selection
type CommentId int64

// Post is the aggregate shown by the chats view: the post and its embedded comments
type Post struct {
	Id             PostId
	Title          string
	Content        string
	HitCount       int
	LikeCount      int
	AuthorUsername string
	CreatedAt      string // raw server timestamp, sliced by position for display
	Tags           []string
	StudyStatus    string
	Comments       []Comment
}

// Comment lives only inside Post.Comments
type Comment struct {
	CommentId      CommentId
	AuthorUsername string
	Contents       string
	CreatedAt      string
}

// IsAuthor reports whether username wrote the post
func (p *Post) IsAuthor(username string) bool {
	return username != "" && p.AuthorUsername == username
}

// IsAuthor reports whether username wrote the comment
func (c Comment) IsAuthor(username string) bool {
	return username != "" && c.AuthorUsername == username
}

// FindComment returns the comment with the given id, if present
func (p *Post) FindComment(id CommentId) (Comment, bool) {
	for _, c := range p.Comments {
		if c.CommentId == id {
			return c, true
		}
	}
	return Comment{}, false
}

// LikedIndex is the set of post ids the current account has liked (account wide)
type LikedIndex map[PostId]struct{}

// NewLikedIndex reduces a flat id list to a set
func NewLikedIndex(ids []PostId) LikedIndex {
	idx := make(LikedIndex, len(ids))
	for _, id := range ids {
		idx[id] = struct{}{}
	}
	return idx
}

// Contains reports membership of id; a nil index contains nothing
func (l LikedIndex) Contains(id PostId) bool {
	_, ok := l[id]
	return ok
}
