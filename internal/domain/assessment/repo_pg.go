package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardiocheck/cardiocheck/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const assessmentCols = `id, patient_id, input, likelihood_score, likelihood_level,
	impact_score, impact_level, final_risk_score, risk_category, recommended_action,
	explanation, recommendations, heatmap_x, heatmap_y, created_at`

func (r *repoPG) scanAssessment(row pgx.Row) (*Assessment, error) {
	var a Assessment
	err := row.Scan(&a.ID, &a.PatientID, &a.Input, &a.LikelihoodScore, &a.LikelihoodLevel,
		&a.ImpactScore, &a.ImpactLevel, &a.FinalRiskScore, &a.RiskCategory, &a.RecommendedAction,
		&a.Explanation, &a.Recommendations, &a.HeatmapX, &a.HeatmapY, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Assessment) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO assessment (id, patient_id, input, likelihood_score, likelihood_level,
			impact_score, impact_level, final_risk_score, risk_category, recommended_action,
			explanation, recommendations, heatmap_x, heatmap_y)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		a.ID, a.PatientID, a.Input, a.LikelihoodScore, a.LikelihoodLevel,
		a.ImpactScore, a.ImpactLevel, a.FinalRiskScore, a.RiskCategory, a.RecommendedAction,
		a.Explanation, a.Recommendations, a.HeatmapX, a.HeatmapY)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return r.scanAssessment(r.conn(ctx).QueryRow(ctx, `SELECT `+assessmentCols+` FROM assessment WHERE id = $1`, id))
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM assessment WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM assessment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+assessmentCols+` FROM assessment WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Assessment
	for rows.Next() {
		a, err := r.scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}

func (r *repoPG) TrendsByPatient(ctx context.Context, patientID uuid.UUID, since time.Time) ([]TrendPoint, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT date_trunc('day', created_at)::date AS day,
			COUNT(*),
			AVG(final_risk_score)::float8,
			MAX(final_risk_score),
			AVG((input->>'systolic_bp')::numeric)::float8,
			AVG((input->>'heart_rate')::numeric)::float8
		FROM assessment
		WHERE patient_id = $1 AND created_at >= $2
		GROUP BY 1
		ORDER BY 1`, patientID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var points []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Day, &p.Count, &p.AvgScore, &p.MaxScore, &p.AvgSystolicBP, &p.AvgHeartRate); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
