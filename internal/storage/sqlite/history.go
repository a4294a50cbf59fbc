package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/banterbot/internal/core"
	"github.com/sandevgo/banterbot/pkg/log"
)

// HistoryRepo persists scored messages per session. The row id doubles as
// the durable sequence number, so rehydrated messages keep their relative
// order and turn grouping across restarts.
type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (h *HistoryRepo) AddMessage(ctx context.Context, sessionID string, msg core.ScoredMessage) error {
	query := `INSERT INTO messages (session_id, role, content, importance, turn) VALUES (?, ?, ?, ?, ?)`
	_, err := h.db.ExecContext(ctx, query, sessionID, msg.Role, msg.Content, msg.Importance, msg.Turn)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (h *HistoryRepo) GetMessages(ctx context.Context, sessionID string, limit int) ([]core.ScoredMessage, error) {
	// Fetch the LAST 'limit' messages by ordering DESC
	query := `SELECT id, role, content, importance, turn FROM messages WHERE session_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := h.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []core.ScoredMessage
	for rows.Next() {
		var msg core.ScoredMessage
		var content sql.NullString

		if err := rows.Scan(&msg.Sequence, &msg.Role, &content, &msg.Importance, &msg.Turn); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.Content = content.String

		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse back to chronological order, oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(messages)).Msg("loaded history messages")
	return messages, nil
}

func (h *HistoryRepo) Clear(ctx context.Context, sessionID string) error {
	_, err := h.db.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}
	return nil
}
