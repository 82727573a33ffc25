package repositories

import (
	"context"

	"github.com/google/uuid"

	"propertyhub/internal/models"
)

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Attachment, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*models.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type attachmentRepo struct {
	db Database
}

func NewAttachmentRepository(db Database) AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, attachment *models.Attachment) error {
	query := `
		INSERT INTO attachments (id, request_id, object_key, file_name, content_type, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, attachment.ID, attachment.RequestID,
		attachment.ObjectKey, attachment.FileName, attachment.ContentType,
		attachment.Size)
	return err
}

func (r *attachmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Attachment, error) {
	attachment := &models.Attachment{}
	query := `
		SELECT id, request_id, object_key, file_name, content_type, size, created_at
		FROM attachments
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&attachment.ID,
		&attachment.RequestID, &attachment.ObjectKey, &attachment.FileName,
		&attachment.ContentType, &attachment.Size, &attachment.CreatedAt)
	if err != nil {
		return nil, err
	}
	return attachment, nil
}

func (r *attachmentRepo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*models.Attachment, error) {
	query := `
		SELECT id, request_id, object_key, file_name, content_type, size, created_at
		FROM attachments
		WHERE request_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []*models.Attachment
	for rows.Next() {
		attachment := &models.Attachment{}
		if err := rows.Scan(&attachment.ID, &attachment.RequestID,
			&attachment.ObjectKey, &attachment.FileName,
			&attachment.ContentType, &attachment.Size,
			&attachment.CreatedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}
	return attachments, rows.Err()
}

func (r *attachmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM attachments WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
