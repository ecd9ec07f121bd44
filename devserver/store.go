package devserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/devu-community/chatsview/api"
	_ "modernc.org/sqlite"
)

// TimestampLayout is the zone-less layout the forum server emits for createAt
const TimestampLayout = "2006-01-02T15:04:05.000000"

var ErrNoRecord = errors.New("no such record")

const (
	tablePosts    = "posts"
	tableComments = "comments"
	tableLikes    = "likes"

	sqlCreatePostsTable = `CREATE TABLE IF NOT EXISTS posts(
                        id integer PRIMARY KEY AUTOINCREMENT,
                        title varchar(200) NOT NULL,
                        content text NOT NULL,
                        hit integer NOT NULL DEFAULT 0,
                        username varchar(100) NOT NULL,
                        created_at varchar(32) NOT NULL,
                        tags text NOT NULL DEFAULT '[]',
                        study_status varchar(32) NOT NULL DEFAULT ''
                        )`
	sqlCreateCommentsTable = `CREATE TABLE IF NOT EXISTS comments(
                        id integer PRIMARY KEY AUTOINCREMENT,
                        post_id integer NOT NULL,
                        username varchar(100) NOT NULL,
                        contents varchar(1000) NOT NULL,
                        created_at varchar(32) NOT NULL
                        )`
	sqlCreateLikesTable = `CREATE TABLE IF NOT EXISTS likes(
                        post_id integer NOT NULL,
                        username varchar(100) NOT NULL,
                        PRIMARY KEY (post_id, username)
                        )`
	sqlCreateCommentsPostIndex = `CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id)`
)

// Store keeps posts, comments and likes for the development collaborator
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens the sqlite database at dsn and creates the schema
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sql db: %w", err)
	}

	// in-memory databases live as long as their single connection
	if strings.Contains(dsn, "memory") {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping sql db: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range []string{
		sqlCreatePostsTable,
		sqlCreateCommentsTable,
		sqlCreateLikesTable,
		sqlCreateCommentsPostIndex,
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(TimestampLayout)
}

// NewPost is the input for CreatePost
type NewPost struct {
	Title       string
	Content     string
	Username    string
	Tags        []string
	StudyStatus string
}

func (s *Store) CreatePost(ctx context.Context, p NewPost) (int64, error) {
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return 0, fmt.Errorf("failed to encode tags: %w", err)
	}

	res, err := sq.Insert(tablePosts).
		Columns("title", "content", "username", "created_at", "tags", "study_status").
		Values(p.Title, p.Content, p.Username, s.timestamp(), string(tags), p.StudyStatus).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to exec insert: %w", err)
	}
	return res.LastInsertId()
}

// ReadChat loads a post with its comments and like count, counting the view as a hit
func (s *Store) ReadChat(ctx context.Context, id int64) (*api.ChatResponse, error) {
	_, err := sq.Update(tablePosts).
		Set("hit", sq.Expr("hit + 1")).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to bump hit: %w", err)
	}

	var chat api.ChatResponse
	var tags string
	err = sq.Select("id", "title", "content", "hit", "username", "created_at", "tags", "study_status").
		From(tablePosts).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&chat.Id, &chat.Title, &chat.Content, &chat.Hit, &chat.Username, &chat.CreateAt, &tags, &chat.StudyStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &chat.Tags); err != nil {
		log.Printf("Post %d has malformed tags: %v", id, err)
		chat.Tags = []string{}
	}

	chat.Like, err = s.LikeCount(ctx, id)
	if err != nil {
		return nil, err
	}

	chat.Comments, err = s.commentsByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return &chat, nil
}

func (s *Store) commentsByPost(ctx context.Context, postId int64) ([]api.CommentResponse, error) {
	rows, err := sq.Select("id", "username", "contents", "created_at").
		From(tableComments).
		Where(sq.Eq{"post_id": postId}).
		OrderBy("id").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]api.CommentResponse, 0)
	for rows.Next() {
		var c api.CommentResponse
		if err := rows.Scan(&c.CommentId, &c.Username, &c.Contents, &c.CreateAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *Store) DeletePost(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := sq.Delete(tablePosts).Where(sq.Eq{"id": id}).RunWith(tx).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRecord
	}
	if _, err := sq.Delete(tableComments).Where(sq.Eq{"post_id": id}).RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	if _, err := sq.Delete(tableLikes).Where(sq.Eq{"post_id": id}).RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to delete likes: %w", err)
	}
	return tx.Commit()
}

func (s *Store) LikeCount(ctx context.Context, postId int64) (int, error) {
	var n int
	err := sq.Select("COUNT(*)").
		From(tableLikes).
		Where(sq.Eq{"post_id": postId}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}

// LikedPosts returns every post id username has liked
func (s *Store) LikedPosts(ctx context.Context, username string) ([]int64, error) {
	rows, err := sq.Select("post_id").
		From(tableLikes).
		Where(sq.Eq{"username": username}).
		OrderBy("post_id").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query likes: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ToggleLike flips the like of username on postId and returns the resulting state
func (s *Store) ToggleLike(ctx context.Context, username string, postId int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = sq.Select("COUNT(*)").From(tablePosts).Where(sq.Eq{"id": postId}).
		RunWith(tx).QueryRowContext(ctx).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post: %w", err)
	}
	if exists == 0 {
		return false, ErrNoRecord
	}

	res, err := sq.Delete(tableLikes).
		Where(sq.Eq{"post_id": postId, "username": username}).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	liked := false
	if n, _ := res.RowsAffected(); n == 0 {
		_, err = sq.Insert(tableLikes).
			Columns("post_id", "username").
			Values(postId, username).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to insert like: %w", err)
		}
		liked = true
	}

	return liked, tx.Commit()
}

func (s *Store) CreateComment(ctx context.Context, username string, postId int64, contents string) (int64, error) {
	var exists int
	err := sq.Select("COUNT(*)").From(tablePosts).Where(sq.Eq{"id": postId}).
		RunWith(s.db).QueryRowContext(ctx).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check post: %w", err)
	}
	if exists == 0 {
		return 0, ErrNoRecord
	}

	res, err := sq.Insert(tableComments).
		Columns("post_id", "username", "contents", "created_at").
		Values(postId, username, contents, s.timestamp()).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to exec insert: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) UpdateComment(ctx context.Context, id int64, contents string) error {
	res, err := sq.Update(tableComments).
		Set("contents", contents).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to exec update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRecord
	}
	return nil
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	res, err := sq.Delete(tableComments).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to exec delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRecord
	}
	return nil
}

// Seed inserts a sample post with a few comments and likes when the store is empty
func (s *Store) Seed(ctx context.Context) error {
	var n int
	if err := sq.Select("COUNT(*)").From(tablePosts).RunWith(s.db).QueryRowContext(ctx).Scan(&n); err != nil {
		return fmt.Errorf("failed to count posts: %w", err)
	}
	if n > 0 {
		return nil
	}

	id, err := s.CreatePost(ctx, NewPost{
		Title:       "스터디 같이 하실 분",
		Content:     "Go 스터디원을 모집합니다. 주 2회 온라인으로 진행해요.",
		Username:    "devu",
		Tags:        []string{"go", "study"},
		StudyStatus: "RECRUITING",
	})
	if err != nil {
		return err
	}

	for _, c := range []struct{ user, text string }{
		{"alice", "참여하고 싶어요!"},
		{"bob", "시간대가 어떻게 되나요?"},
	} {
		if _, err := s.CreateComment(ctx, c.user, id, c.text); err != nil {
			return err
		}
	}

	if _, err := s.ToggleLike(ctx, "alice", id); err != nil {
		return err
	}

	log.Printf("Seeded dev store with post %d", id)
	return nil
}
