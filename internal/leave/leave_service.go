package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-payledger/internal/audit"
	leaveerrors "go-payledger/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, businessID, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, businessID, actorID string, canReadAll bool) ([]LeaveResponse, error)
	GetByID(ctx context.Context, businessID, id string) (LeaveResponse, error)
	Submit(ctx context.Context, businessID, actorID, id string) (LeaveResponse, error)
	Cancel(ctx context.Context, businessID, actorID, id string) (LeaveResponse, error)
	Approve(ctx context.Context, businessID, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, businessID, actorID, id, rejectionReason string) (LeaveResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(ctx context.Context, businessID, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("business_id", businessID),
		zap.String("employee_id", req.EmployeeID),
	)

	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidBusinessID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.EmployeeBelongsToBusiness(ctx, businessID, req.EmployeeID)
	if err != nil {
		s.logger.Error("create leave membership check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !belongs {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotInBusiness
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, businessID, req.EmployeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:         uuid.New(),
		BusinessID: businessUUID,
		EmployeeID: employeeUUID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  int(endDate.Sub(startDate).Hours()/24) + 1,
		Reason:     req.Reason,
		Status:     StatusPending,
		CreatedBy:  actorUUID,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, businessID, actorID string, canReadAll bool) ([]LeaveResponse, error) {
	var (
		leaves []Leave
		err    error
	)
	if canReadAll {
		leaves, err = s.repo.FindAllByBusiness(ctx, businessID)
	} else {
		leaves, err = s.repo.FindAllByEmployee(ctx, businessID, actorID)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, businessID, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) Submit(ctx context.Context, businessID, actorID, id string) (LeaveResponse, error) {
	return s.transition(ctx, businessID, actorID, id, StatusSubmitted, nil)
}

func (s *service) Cancel(ctx context.Context, businessID, actorID, id string) (LeaveResponse, error) {
	return s.transition(ctx, businessID, actorID, id, StatusCanceled, nil)
}

func (s *service) Approve(ctx context.Context, businessID, actorID, id string) (LeaveResponse, error) {
	return s.transition(ctx, businessID, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, businessID, actorID, id, rejectionReason string) (LeaveResponse, error) {
	return s.transition(ctx, businessID, actorID, id, StatusRejected, &rejectionReason)
}

func (s *service) transition(
	ctx context.Context,
	businessID, actorID, id, target string,
	rejectionReason *string,
) (LeaveResponse, error) {
	s.logger.Debug("transition leave requested",
		zap.String("leave_id", id),
		zap.String("target_status", target),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDAndBusiness(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if !allowedTransition(l.Status, target) {
		s.logger.Warn("transition leave invalid",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", target),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	before := *l

	l.Status = target
	switch target {
	case StatusApproved:
		now := time.Now().UTC()
		l.ApprovedBy = &actorUUID
		l.ApprovedAt = &now
		l.RejectionReason = nil
	case StatusRejected:
		if rejectionReason == nil || *rejectionReason == "" {
			return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
		}
		l.ApprovedBy = nil
		l.ApprovedAt = nil
		l.RejectionReason = rejectionReason
	default:
		l.ApprovedBy = nil
		l.ApprovedAt = nil
		l.RejectionReason = nil
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("transition leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	// Decisions are the audited moments; drafts and submissions are not.
	if target == StatusApproved || target == StatusRejected {
		s.recorder.Record(ctx, audit.Entry{
			BusinessID: businessID,
			EntityKind: "Leave",
			Operation:  audit.OpUpdate,
			EntityID:   id,
			ActorID:    actorID,
			Before:     before,
			After:      l,
		})
	}

	s.logger.Info("transition leave success",
		zap.String("leave_id", id),
		zap.String("status", target),
	)
	return mapToResponse(*l), nil
}

func parseDate(raw string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return d, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		BusinessID:      l.BusinessID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		CreatedBy:       l.CreatedBy.String(),
		RejectionReason: l.RejectionReason,
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res
}
