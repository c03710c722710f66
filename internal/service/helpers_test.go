package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-places/internal/mock"
	"go.uber.org/mock/gomock"
)

var errStorage = errors.New("storage error")

// fixedIDs hands out the configured ids in order.
type fixedIDs struct {
	ids []string
}

func (f *fixedIDs) Generate() string {
	if len(f.ids) == 0 {
		return "generated-id"
	}
	id := f.ids[0]
	f.ids = f.ids[1:]
	return id
}

// runInTx makes the transactor mock execute fn with the caller's context and
// return what fn returns, like a real transaction that commits on nil.
func runInTx(tx *mock.MockTransactor) *gomock.Call {
	return tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	)
}

func newController(t *testing.T) *gomock.Controller {
	t.Helper()
	return gomock.NewController(t)
}
