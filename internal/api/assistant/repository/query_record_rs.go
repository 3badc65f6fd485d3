package assistantRepository

import (
	"PoderBackend/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (r *queryRecordRepository) CreateQueryRecord(ctx context.Context, record entity.QueryRecord) error {
	query, args, err := sqlx.Named(queryCreateQueryRecord, record)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to build query record insert")
		return err
	}

	query = r.q.Rebind(query)
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"error":    err.Error(),
			"query_id": record.ID,
		}).Error("Failed to insert query record")
		return err
	}

	return nil
}

func (r *queryRecordRepository) GetQueryRecords(ctx context.Context, limit, offset int) ([]entity.QueryRecord, int, error) {
	records := make([]entity.QueryRecord, 0, limit)
	if err := r.q.SelectContext(ctx, &records, queryGetQueryRecords, limit, offset); err != nil {
		r.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to select query records")
		return nil, 0, err
	}

	var total int
	if err := r.q.GetContext(ctx, &total, queryCountQueryRecords); err != nil {
		r.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to count query records")
		return nil, 0, err
	}

	return records, total, nil
}
