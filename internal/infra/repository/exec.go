package repository

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
)

// insertReturningID runs an INSERT ... RETURNING id.
func insertReturningID(ctx context.Context, dbtx db.DBTX, stmt db.Statement, what string) (int64, error) {
	query, args, err := stmt.ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build "+what+" insert", err, infra.KindDBFailure)
	}

	var id int64
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create "+what, err)
	}
	return id, nil
}

// execAffectingOne runs an UPDATE or DELETE that must touch exactly one row.
func execAffectingOne(ctx context.Context, dbtx db.DBTX, stmt db.Statement, what string) error {
	query, args, err := stmt.ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build "+what+" statement", err, infra.KindDBFailure)
	}

	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to write "+what, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
	}
	return nil
}
