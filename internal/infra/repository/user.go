package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	return insertReturningID(ctx, r.db, insertUserStmt(u), "user")
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	return execAffectingOne(ctx, r.db, updateUserStmt(u), "user")
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	stmt := db.Dialect.Delete(db.TableUsers).
		Where(goqu.C("id").Eq(id)).
		Prepared(true)
	return execAffectingOne(ctx, r.db, stmt, "user")
}

func insertUserStmt(u *user.User) db.Statement {
	return db.Dialect.Insert(db.TableUsers).
		Rows(goqu.Record{
			"name":  u.Name().Value(),
			"email": u.Email().Value(),
		}).
		Returning("id").
		Prepared(true)
}

func updateUserStmt(u *user.User) db.Statement {
	return db.Dialect.Update(db.TableUsers).
		Set(goqu.Record{
			"name":  u.Name().Value(),
			"email": u.Email().Value(),
		}).
		Where(goqu.C("id").Eq(u.ID())).
		Prepared(true)
}
