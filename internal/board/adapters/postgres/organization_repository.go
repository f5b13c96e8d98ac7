package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gumboard/internal/board/domain/entities"
	"gumboard/internal/board/ports/repositories"
	"gumboard/pkg/logger"
)

// OrganizationRepository реализует интерфейс repositories.OrganizationRepository.
type OrganizationRepository struct {
	db DB
}

// NewOrganizationRepository создает новый репозиторий организаций.
func NewOrganizationRepository(db DB) repositories.OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// GetByID получает организацию вместе с настроенными webhook-адресами.
func (r *OrganizationRepository) GetByID(ctx context.Context, orgID string) (*entities.Organization, error) {
	log := logger.Log(ctx).With(zap.String("method", "OrganizationRepository.GetByID"))
	log.Debug(ctx, "getting organization", zap.String("orgID", orgID))

	var org entities.Organization
	err := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(slack_webhook_url, ''), COALESCE(discord_webhook_url, '')
         FROM organizations
         WHERE id = $1`,
		orgID,
	).Scan(&org.ID, &org.Name, &org.SlackWebhookURL, &org.DiscordWebhookURL)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "organization not found", zap.String("orgID", orgID))
			return nil, nil
		}
		log.Error(ctx, "failed to get organization", zap.Error(err))
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &org, nil
}
