package liability

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-payledger/internal/audit"
	liabilityerrors "go-payledger/internal/liability/errors"
	"go-payledger/internal/rbac"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=liability_service.go -destination=mock/liability_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, businessID, actorID, actorRole string, req CreateLiabilityRequest) (LiabilityResponse, error)
	Decide(ctx context.Context, businessID, actorID, id string, approve bool) (LiabilityResponse, error)
	Delete(ctx context.Context, businessID, actorID, id string) error
	GetAll(ctx context.Context, businessID string, filter QueryFilter) ([]LiabilityResponse, error)
	GetByID(ctx context.Context, businessID, id string) (LiabilityResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("liability.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("liability.service")
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	businessID, actorID, actorRole string,
	req CreateLiabilityRequest,
) (LiabilityResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return LiabilityResponse{}, liabilityerrors.ErrInvalidAmount
	}
	amount = amount.Round(2)

	grantDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.GrantDate != nil && *req.GrantDate != "" {
		grantDate, err = time.Parse("2006-01-02", *req.GrantDate)
		if err != nil {
			return LiabilityResponse{}, liabilityerrors.ErrInvalidGrantDate
		}
	}

	installments := 1
	if req.Kind == KindLoan && req.InstallmentsTotal != nil {
		installments = *req.InstallmentsTotal
	}
	if installments < 1 {
		return LiabilityResponse{}, liabilityerrors.ErrInvalidInstallments
	}

	// Per-installment amount is fixed at creation; rounding drift on the
	// last installment is accepted, the loan still closes after
	// installments_total deductions.
	perInstallment := amount.Div(decimal.NewFromInt(int64(installments))).Round(2)

	row := &Liability{
		ID:                   uuid.New(),
		BusinessID:           uuid.MustParse(businessID),
		EmployeeID:           uuid.MustParse(req.EmployeeID),
		Kind:                 req.Kind,
		Amount:               amount,
		GrantDate:            grantDate,
		Description:          req.Description,
		InstallmentsTotal:    installments,
		InstallmentsPaid:     0,
		AmountPerInstallment: perInstallment,
		Status:               StatusPending,
	}

	// The owner grants money directly; no separate approval round-trip.
	if actorRole == rbac.RoleOwner {
		actorUUID := uuid.MustParse(actorID)
		row.Status = StatusApproved
		row.ApprovedBy = &actorUUID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LiabilityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create liability persist failed", zap.Error(err))
		return LiabilityResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LiabilityResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "Liability",
		Operation:  audit.OpCreate,
		EntityID:   row.ID.String(),
		ActorID:    actorID,
		After:      row,
	})

	s.logger.Info("create liability success",
		zap.String("liability_id", row.ID.String()),
		zap.String("kind", row.Kind),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) Decide(
	ctx context.Context,
	businessID, actorID, id string,
	approve bool,
) (LiabilityResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LiabilityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LiabilityResponse{}, liabilityerrors.ErrLiabilityNotFound
		}
		return LiabilityResponse{}, err
	}

	target := StatusApproved
	if !approve {
		target = StatusRejected
	}
	if !CanTransition(row.Status, target) {
		return LiabilityResponse{}, liabilityerrors.ErrAlreadyDecided
	}

	before := *row
	row.Status = target
	actorUUID, err := uuid.Parse(actorID)
	if err == nil {
		row.ApprovedBy = &actorUUID
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("decide liability persist failed", zap.Error(err))
		return LiabilityResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LiabilityResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "Liability",
		Operation:  audit.OpUpdate,
		EntityID:   id,
		ActorID:    actorID,
		Before:     before,
		After:      row,
	})

	s.logger.Info("decide liability",
		zap.String("liability_id", id),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

// Delete removes a request that was never approved. Anything past PENDING is
// part of the financial history and stays.
func (s *service) Delete(ctx context.Context, businessID, actorID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return liabilityerrors.ErrLiabilityNotFound
		}
		return err
	}
	if row.Status != StatusPending {
		return liabilityerrors.ErrNotPending
	}

	if err := qtx.Delete(ctx, businessID, id); err != nil {
		s.logger.Error("delete liability failed", zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Entry{
		BusinessID: businessID,
		EntityKind: "Liability",
		Operation:  audit.OpDelete,
		EntityID:   id,
		ActorID:    actorID,
		Before:     row,
	})

	s.logger.Info("delete liability", zap.String("liability_id", id))
	return nil
}

func (s *service) GetAll(ctx context.Context, businessID string, filter QueryFilter) ([]LiabilityResponse, error) {
	rows, err := s.repo.FindAllByBusiness(ctx, businessID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]LiabilityResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, businessID, id string) (LiabilityResponse, error) {
	row, err := s.repo.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LiabilityResponse{}, liabilityerrors.ErrLiabilityNotFound
		}
		return LiabilityResponse{}, err
	}
	return mapToResponse(*row), nil
}

func mapToResponse(l Liability) LiabilityResponse {
	resp := LiabilityResponse{
		ID:                   l.ID.String(),
		BusinessID:           l.BusinessID.String(),
		EmployeeID:           l.EmployeeID.String(),
		Kind:                 l.Kind,
		Amount:               l.Amount.StringFixed(2),
		GrantDate:            l.GrantDate.Format("2006-01-02"),
		Description:          l.Description,
		InstallmentsTotal:    l.InstallmentsTotal,
		InstallmentsPaid:     l.InstallmentsPaid,
		AmountPerInstallment: l.AmountPerInstallment.StringFixed(2),
		Remaining:            l.Remaining().StringFixed(2),
		Status:               l.Status,
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}
