package repository

import (
	"context"
	"encoding/json"

	"session-booking/internal/domain/availability"
	"session-booking/internal/infra"
	"session-booking/internal/infra/db"
	"session-booking/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
)

type RuleRepository struct {
	db db.DBTX
}

func NewRuleRepository(conn db.DBTX) *RuleRepository {
	return &RuleRepository{db: conn}
}

var ruleColumns = []string{
	"id", "timezone", "weekly_availability", "max_advance_days", "min_notice_hours",
	"buffer_minutes", "max_bookings_per_day", "slot_increment_minutes",
}

func (r *RuleRepository) GetDefaultRule(ctx context.Context) (availability.Rule, error) {
	query, args, err := psql.Select(ruleColumns...).
		From("availability_rules").
		Where(sq.Eq{"is_default": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return availability.Rule{}, errs.Wrap(err, "build default rule query")
	}

	var (
		rule   availability.Rule
		weekly []byte
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&rule.ID, &rule.Timezone, &weekly, &rule.MaxAdvanceDays, &rule.MinNoticeHours,
		&rule.BufferMinutes, &rule.MaxBookingsPerDay, &rule.SlotIncrementMinutes,
	)
	if err != nil {
		return availability.Rule{}, infra.WrapRepoErr("failed to get default availability rule", err)
	}
	if err := json.Unmarshal(weekly, &rule.WeeklyAvailability); err != nil {
		return availability.Rule{}, errs.Mark(errs.Wrap(err, "decode weekly availability"), errs.ErrConfiguration)
	}
	return rule, nil
}

// SaveDefaultRule replaces the default rule. Callers validate the rule first.
func (r *RuleRepository) SaveDefaultRule(ctx context.Context, rule availability.Rule) (int64, error) {
	weekly, err := json.Marshal(rule.WeeklyAvailability)
	if err != nil {
		return 0, errs.Wrap(err, "encode weekly availability")
	}

	if _, err := r.db.Exec(ctx, "DELETE FROM availability_rules WHERE is_default"); err != nil {
		return 0, infra.WrapRepoErr("failed to clear default availability rule", err)
	}

	query, args, err := psql.Insert("availability_rules").
		Columns("is_default", "timezone", "weekly_availability", "max_advance_days", "min_notice_hours",
			"buffer_minutes", "max_bookings_per_day", "slot_increment_minutes").
		Values(true, rule.Timezone, weekly, rule.MaxAdvanceDays, rule.MinNoticeHours,
			rule.BufferMinutes, rule.MaxBookingsPerDay, rule.SlotIncrementMinutes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, errs.Wrap(err, "build insert rule query")
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to save default availability rule", err)
	}
	return id, nil
}
