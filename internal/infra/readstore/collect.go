package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
)

func selectAll[T any](ctx context.Context, dbtx db.DBTX, ds *goqu.SelectDataset, what string) ([]T, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build "+what+" query", err, infra.KindDBFailure)
	}

	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query "+what, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan "+what, err)
	}
	return out, nil
}

// selectOne reports a missing row as infra.KindNotFound.
func selectOne[T any](ctx context.Context, dbtx db.DBTX, ds *goqu.SelectDataset, what string) (*T, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build "+what+" query", err, infra.KindDBFailure)
	}

	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query "+what, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load "+what, err)
	}
	return row, nil
}

func paged(ds *goqu.SelectDataset, page readmodel.Page) *goqu.SelectDataset {
	if page.Limit <= 0 {
		return ds
	}
	return ds.Offset(uint(page.Offset)).Limit(uint(page.Limit))
}

func mapRows[R, T any](rows []R, fn func(R) T) []T {
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}
	return out
}
