package postgres

import (
	"context"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/plateforme-chat/chats-service/internal/config"
	"github.com/plateforme-chat/chats-service/internal/model"
)

const defaultPageLimit = 50

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// SaveMessage persists the message and fills in the store-assigned id. Ids
// are strictly increasing, which makes them the natural ordering key and
// the pagination cursor.
func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("channel_id", "author_id", "author_handle", "content", "sent_at").
		Values(message.ChannelID, message.AuthorID, message.AuthorHandle, message.Content, message.SentAt).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.connection.GetContext(ctx, &message.ID, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

// GetChannelMessages returns at most limit messages of the channel, ordered
// ascending by id. A before of 0 selects the newest page; otherwise only
// messages with id strictly below before are considered.
func (r *Repository) GetChannelMessages(ctx context.Context, channelID string, before int64, limit uint64) (model.MessageList, error) {
	queryBuilder := sq.Select(
		"id",
		"channel_id",
		"author_id",
		"author_handle",
		"content",
		"sent_at",
	).
		From("messages").
		Where(sq.Eq{"channel_id": channelID}).
		OrderBy("id DESC")

	if before > 0 {
		queryBuilder = queryBuilder.Where(sq.Lt{"id": before})
	}

	if limit > 0 && limit < defaultPageLimit {
		queryBuilder = queryBuilder.Limit(limit)
	} else {
		queryBuilder = queryBuilder.Limit(defaultPageLimit)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.connection.SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel messages: %v", err)
	}

	// Selected newest-first to honor the cursor; returned oldest-first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// DeleteChannelMessages purges every persisted message of a deleted channel.
func (r *Repository) DeleteChannelMessages(ctx context.Context, channelID string) error {
	query, args, err := sq.Delete("messages").
		Where(sq.Eq{"channel_id": channelID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete channel messages: %v", err)
	}

	return nil
}

// UpdateAuthorHandle rewrites the denormalized handle on messages after the
// account service renames a user.
func (r *Repository) UpdateAuthorHandle(ctx context.Context, authorID, newHandle string) error {
	query, args, err := sq.Update("messages").
		Set("author_handle", newHandle).
		Where(sq.Eq{"author_id": authorID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
