package liability_test

import (
	"context"
	"testing"

	"go-payledger/internal/audit"
	"go-payledger/internal/liability"
	liabilityerrors "go-payledger/internal/liability/errors"
	"go-payledger/internal/rbac"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeRecorder struct {
	entries []audit.Entry
}

func (f *fakeRecorder) Record(ctx context.Context, e audit.Entry) {
	f.entries = append(f.entries, e)
}

func TestLiabilityService_Create(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New().String()
	employeeID := uuid.New().String()
	ownerID := uuid.New().String()
	managerID := uuid.New().String()

	t.Run("owner grant is auto approved", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeLiabilityRepository{}
		recorder := &fakeRecorder{}
		svc := liability.NewService(db, repo, recorder)

		installments := 4
		resp, err := svc.Create(ctx, businessID, ownerID, rbac.RoleOwner, liability.CreateLiabilityRequest{
			EmployeeID:        employeeID,
			Kind:              liability.KindLoan,
			Amount:            "1000",
			InstallmentsTotal: &installments,
		})

		assert.NoError(t, err)
		assert.Equal(t, liability.StatusApproved, resp.Status)
		assert.Equal(t, "250.00", resp.AmountPerInstallment)
		assert.NotNil(t, resp.ApprovedBy)

		assert.Len(t, recorder.entries, 1)
		assert.Equal(t, audit.OpCreate, recorder.entries[0].Operation)
	})

	t.Run("manager request starts pending", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		svc := liability.NewService(db, &fakeLiabilityRepository{}, &fakeRecorder{})

		resp, err := svc.Create(ctx, businessID, managerID, rbac.RoleManager, liability.CreateLiabilityRequest{
			EmployeeID: employeeID,
			Kind:       liability.KindAdvance,
			Amount:     "200.50",
		})

		assert.NoError(t, err)
		assert.Equal(t, liability.StatusPending, resp.Status)
		assert.Equal(t, 1, resp.InstallmentsTotal)
		assert.Equal(t, "200.50", resp.AmountPerInstallment)
		assert.Nil(t, resp.ApprovedBy)
	})

	t.Run("non positive amount rejected", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := liability.NewService(db, &fakeLiabilityRepository{}, &fakeRecorder{})

		_, err = svc.Create(ctx, businessID, ownerID, rbac.RoleOwner, liability.CreateLiabilityRequest{
			EmployeeID: employeeID,
			Kind:       liability.KindAdvance,
			Amount:     "0",
		})
		assert.ErrorIs(t, err, liabilityerrors.ErrInvalidAmount)
	})
}

func TestLiabilityService_Decide(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New().String()
	ownerID := uuid.New().String()

	pending := func() *liability.Liability {
		return &liability.Liability{
			ID:         uuid.New(),
			BusinessID: uuid.MustParse(businessID),
			EmployeeID: uuid.New(),
			Kind:       liability.KindAdvance,
			Amount:     decimal.NewFromInt(200),
			Status:     liability.StatusPending,
		}
	}

	t.Run("approve pending", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		row := pending()
		repo := &fakeLiabilityRepository{
			findByID: func(ctx context.Context, bid, id string) (*liability.Liability, error) {
				return row, nil
			},
		}
		recorder := &fakeRecorder{}
		svc := liability.NewService(db, repo, recorder)

		resp, err := svc.Decide(ctx, businessID, ownerID, row.ID.String(), true)

		assert.NoError(t, err)
		assert.Equal(t, liability.StatusApproved, resp.Status)
		assert.Len(t, recorder.entries, 1)
		assert.Equal(t, audit.OpUpdate, recorder.entries[0].Operation)
		assert.NotNil(t, recorder.entries[0].Before)
	})

	t.Run("double decision rejected", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		row := pending()
		row.Status = liability.StatusRejected
		repo := &fakeLiabilityRepository{
			findByID: func(ctx context.Context, bid, id string) (*liability.Liability, error) {
				return row, nil
			},
		}
		svc := liability.NewService(db, repo, &fakeRecorder{})

		_, err = svc.Decide(ctx, businessID, ownerID, row.ID.String(), true)
		assert.ErrorIs(t, err, liabilityerrors.ErrAlreadyDecided)
	})
}

func TestLiabilityService_Delete(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New().String()
	ownerID := uuid.New().String()

	t.Run("only pending can be deleted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		row := &liability.Liability{
			ID:         uuid.New(),
			BusinessID: uuid.MustParse(businessID),
			Status:     liability.StatusApproved,
		}
		repo := &fakeLiabilityRepository{
			findByID: func(ctx context.Context, bid, id string) (*liability.Liability, error) {
				return row, nil
			},
		}
		svc := liability.NewService(db, repo, &fakeRecorder{})

		err = svc.Delete(ctx, businessID, ownerID, row.ID.String())
		assert.ErrorIs(t, err, liabilityerrors.ErrNotPending)
	})

	t.Run("pending delete records audit with before snapshot", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		row := &liability.Liability{
			ID:         uuid.New(),
			BusinessID: uuid.MustParse(businessID),
			Status:     liability.StatusPending,
		}
		repo := &fakeLiabilityRepository{
			findByID: func(ctx context.Context, bid, id string) (*liability.Liability, error) {
				return row, nil
			},
		}
		recorder := &fakeRecorder{}
		svc := liability.NewService(db, repo, recorder)

		err = svc.Delete(ctx, businessID, ownerID, row.ID.String())

		assert.NoError(t, err)
		assert.Len(t, recorder.entries, 1)
		assert.Equal(t, audit.OpDelete, recorder.entries[0].Operation)
		assert.NotNil(t, recorder.entries[0].Before)
		assert.Nil(t, recorder.entries[0].After)
	})
}
