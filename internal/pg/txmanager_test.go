package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// joinTx is the minimal pgx.Tx a context can carry; no method is ever
// called on it here.
type joinTx struct{ pgx.Tx }

func TestTxManager_Begin_JoinsExistingTx(t *testing.T) {
	m := &txManager{} // no pool: joining must not open a new transaction

	ctx := context.WithValue(context.Background(), txKey{}, pgx.Tx(joinTx{}))

	called := false
	err := m.Begin(ctx, func(innerCtx context.Context) error {
		called = true
		tx, ok := txFromContext(innerCtx)
		assert.True(t, ok)
		assert.NotNil(t, tx)
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	err = m.Begin(ctx, func(context.Context) error { return errors.New("boom") })
	assert.EqualError(t, err, "boom")
}
