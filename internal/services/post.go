package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tweets/internal/logger"
	"github.com/sbilibin2017/gw-tweets/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=post.go -destination=post_mock_test.go -package=services

var (
	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("forbidden")
)

// PostReader defines read operations for posts.
type PostReader interface {
	List(ctx context.Context) ([]models.Post, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Save(ctx context.Context, username, content string) (*models.Post, error)
	LockByID(ctx context.Context, id int64) (*models.Post, error)
	UpdateContent(ctx context.Context, id int64, content string) (*models.Post, error)
	IncrementLikes(ctx context.Context, id int64) (*models.Post, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PostService implements post operations and their ownership rules.
type PostService struct {
	reader      PostReader
	writer      PostWriter
	kafkaWriter KafkaWriter
}

// NewPostService creates a new PostService. kafkaWriter may be nil, in which
// case no events are published.
func NewPostService(reader PostReader, writer PostWriter, kafkaWriter KafkaWriter) *PostService {
	return &PostService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "error", err)
		return nil, err
	}
	return posts, nil
}

// Create stores a post written by identity. Posting on behalf of another
// user is ErrForbidden.
func (s *PostService) Create(ctx context.Context, identity, author, content string) (*models.Post, error) {
	if author != identity {
		logger.Log.Warnw("post author mismatch", "identity", identity, "author", author)
		return nil, ErrForbidden
	}

	post, err := s.writer.Save(ctx, author, content)
	if err != nil {
		logger.Log.Errorw("failed to save post", "username", author, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.PostCreated, post.ID, identity)
	return post, nil
}

// UpdateContent replaces the content of a post owned by identity.
func (s *PostService) UpdateContent(ctx context.Context, identity string, id int64, content string) (*models.Post, error) {
	if _, err := s.lockOwned(ctx, identity, id); err != nil {
		return nil, err
	}

	post, err := s.writer.UpdateContent(ctx, id, content)
	if err != nil {
		logger.Log.Errorw("failed to update post", "post_id", id, "error", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	s.publishEvent(ctx, models.PostUpdated, id, identity)
	return post, nil
}

// Delete removes a post owned by identity.
func (s *PostService) Delete(ctx context.Context, identity string, id int64) error {
	if _, err := s.lockOwned(ctx, identity, id); err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete post", "post_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}

	s.publishEvent(ctx, models.PostDeleted, id, identity)
	return nil
}

// Like adds one like to any existing post. Repeated likes all count.
func (s *PostService) Like(ctx context.Context, identity string, id int64) (*models.Post, error) {
	post, err := s.writer.IncrementLikes(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to like post", "post_id", id, "error", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	s.publishEvent(ctx, models.PostLiked, id, identity)
	return post, nil
}

// lockOwned locks the post row and checks that identity wrote it.
func (s *PostService) lockOwned(ctx context.Context, identity string, id int64) (*models.Post, error) {
	post, err := s.writer.LockByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load post", "post_id", id, "error", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.Username != identity {
		logger.Log.Warnw("post ownership check failed", "post_id", id, "identity", identity, "author", post.Username)
		return nil, ErrForbidden
	}
	return post, nil
}

// publishEvent publishes a post event to Kafka. Failures are logged only.
func (s *PostService) publishEvent(ctx context.Context, eventType string, postID int64, username string) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.PostEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		PostID:    postID,
		Username:  username,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal post event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(postID, 10)),
		Value: data,
		Time:  time.Unix(event.Timestamp, 0),
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish post event", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}

	logger.Log.Infow("post event published", "event_id", event.EventID, "type", eventType, "post_id", postID)
}
