package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

// editWindow is how long after completion a session may still be
// re-completed, cancelled or have counts edited.
const editWindow = 2 * time.Hour

// SessionUseCase owns the stock-count lifecycle: create a draft with a
// snapshot of the kiosk's stock, record counts, then complete (apply counted
// quantities to products) or cancel (revert to the snapshot). Completion is
// revert-then-apply so re-completing within the edit window never
// double-counts an adjustment.
type SessionUseCase struct {
	txRunner    TxRunner
	sessionRepo repository.InventorySessionRepository
	itemRepo    repository.InventoryItemRepository
	kioskRepo   repository.KioskRepository
	notifier    Notifier
}

// NewSessionUseCase builds the use case. notifier may be nil.
func NewSessionUseCase(
	txRunner TxRunner,
	sessionRepo repository.InventorySessionRepository,
	itemRepo repository.InventoryItemRepository,
	kioskRepo repository.KioskRepository,
	notifier Notifier,
) *SessionUseCase {
	return &SessionUseCase{
		txRunner:    txRunner,
		sessionRepo: sessionRepo,
		itemRepo:    itemRepo,
		kioskRepo:   kioskRepo,
		notifier:    notifier,
	}
}

// Create opens a draft session for a kiosk and snapshots every product's
// current on-hand quantity into one line item each. Session and items are
// inserted in one transaction.
func (uc *SessionUseCase) Create(ctx context.Context, createdBy string, in dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if in.KioskID == "" {
		return nil, domain.ErrInvalidInput
	}
	kiosk, err := uc.kioskRepo.GetByID(in.KioskID)
	if err != nil {
		return nil, err
	}
	if kiosk == nil {
		return nil, domain.ErrNotFound
	}

	session := &entity.InventorySession{
		ID:        uuid.New().String(),
		KioskID:   in.KioskID,
		CreatedBy: createdBy,
		Status:    entity.SessionDraft,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}

	var items []*entity.InventoryItem
	err = uc.txRunner.Run(ctx, func(
		sessions repository.InventorySessionRepository,
		itemRepo repository.InventoryItemRepository,
		products repository.ProductRepository,
	) error {
		if err := sessions.Create(session); err != nil {
			return err
		}
		list, err := products.ListByKiosk(in.KioskID)
		if err != nil {
			return err
		}
		items = make([]*entity.InventoryItem, 0, len(list))
		for _, p := range list {
			items = append(items, &entity.InventoryItem{
				ID:             uuid.New().String(),
				SessionID:      session.ID,
				ProductID:      p.ID,
				SystemQuantity: p.Quantity,
			})
		}
		return itemRepo.BulkCreate(items)
	})
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session, items), nil
}

// Get returns a session with its line items.
func (uc *SessionUseCase) Get(sessionID string) (*dto.SessionResponse, error) {
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session, items), nil
}

// List returns sessions of a kiosk, optionally filtered by status. Items are
// not attached; the UI loads them per session.
func (uc *SessionUseCase) List(kioskID, status string, limit, offset int) (*dto.SessionListResponse, error) {
	list, err := uc.sessionRepo.ListByKiosk(kioskID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SessionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSessionResponse(s, nil))
	}
	return &dto.SessionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// RecordCount stores an observed quantity on one line item and recomputes
// its difference. It never touches product stock; only completion does.
func (uc *SessionUseCase) RecordCount(sessionID, itemID string, in dto.RecordCountRequest) (*dto.InventoryItemResponse, error) {
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if err := ensureEditable(session, time.Now()); err != nil {
		return nil, err
	}

	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.SessionID != sessionID {
		return nil, domain.ErrNotFound
	}
	if in.ActualQuantity != nil && *in.ActualQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	item.Recount(in.ActualQuantity)
	item.Notes = in.Notes
	if err := uc.itemRepo.UpdateCount(item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Complete applies the counted quantities to product stock and marks the
// session completed. Re-completing a completed session (allowed within the
// edit window) first reverts every product to its snapshot so the previous
// application is undone before the new one lands.
func (uc *SessionUseCase) Complete(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if err := ensureEditable(session, time.Now()); err != nil {
		return nil, err
	}

	now := time.Now()
	var items []*entity.InventoryItem
	err = uc.txRunner.Run(ctx, func(
		sessions repository.InventorySessionRepository,
		itemRepo repository.InventoryItemRepository,
		products repository.ProductRepository,
	) error {
		items, err = itemRepo.ListBySession(sessionID)
		if err != nil {
			return err
		}
		if session.Status == entity.SessionCompleted {
			// Undo the previous completion before applying the new counts.
			for _, it := range items {
				if err := products.SetQuantity(it.ProductID, it.SystemQuantity); err != nil {
					return err
				}
			}
		}
		for _, it := range items {
			if it.ActualQuantity == nil {
				continue
			}
			if err := products.SetQuantity(it.ProductID, *it.ActualQuantity); err != nil {
				return err
			}
		}
		return sessions.SetStatus(sessionID, entity.SessionCompleted, &now)
	})
	if err != nil {
		return nil, err
	}

	session.Status = entity.SessionCompleted
	session.CompletedAt = &now
	uc.notifyDiscrepancies(ctx, session, items)
	return toSessionResponse(session, items), nil
}

// Cancel makes the session terminal. Cancelling a completed session (within
// the edit window) reverts every product to its snapshot; cancelling a draft
// has no stock effect because nothing was ever applied.
func (uc *SessionUseCase) Cancel(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if err := ensureEditable(session, time.Now()); err != nil {
		return nil, err
	}

	wasCompleted := session.Status == entity.SessionCompleted
	var items []*entity.InventoryItem
	err = uc.txRunner.Run(ctx, func(
		sessions repository.InventorySessionRepository,
		itemRepo repository.InventoryItemRepository,
		products repository.ProductRepository,
	) error {
		items, err = itemRepo.ListBySession(sessionID)
		if err != nil {
			return err
		}
		if wasCompleted {
			for _, it := range items {
				if err := products.SetQuantity(it.ProductID, it.SystemQuantity); err != nil {
					return err
				}
			}
		}
		// CompletedAt stays as-is: it records that the session was once
		// applied, which the audit trail needs.
		return sessions.SetStatus(sessionID, entity.SessionCancelled, session.CompletedAt)
	})
	if err != nil {
		return nil, err
	}

	session.Status = entity.SessionCancelled
	return toSessionResponse(session, items), nil
}

// Delete removes a draft session and its items. Completed and cancelled
// sessions are kept as an audit trail and cannot be deleted.
func (uc *SessionUseCase) Delete(ctx context.Context, sessionID string) error {
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrNotFound
	}
	if session.Status != entity.SessionDraft {
		return domain.ErrNotDraft
	}
	return uc.txRunner.Run(ctx, func(
		sessions repository.InventorySessionRepository,
		itemRepo repository.InventoryItemRepository,
		_ repository.ProductRepository,
	) error {
		if err := itemRepo.DeleteBySession(sessionID); err != nil {
			return err
		}
		return sessions.Delete(sessionID)
	})
}

// ensureEditable rejects mutations of cancelled sessions and of completed
// sessions whose edit window has passed.
func ensureEditable(session *entity.InventorySession, now time.Time) error {
	switch session.Status {
	case entity.SessionCancelled:
		return domain.ErrConflict
	case entity.SessionCompleted:
		if session.CompletedAt == nil || now.Sub(*session.CompletedAt) > editWindow {
			return domain.ErrEditWindowExpired
		}
	}
	return nil
}

// notifyDiscrepancies reports counted shortages/surpluses to the staff chat.
// Best effort: runs after commit, errors only get logged.
func (uc *SessionUseCase) notifyDiscrepancies(ctx context.Context, session *entity.InventorySession, items []*entity.InventoryItem) {
	if uc.notifier == nil {
		return
	}
	var shortage, surplus, counted int
	for _, it := range items {
		if it.Difference == nil {
			continue
		}
		counted++
		if *it.Difference < 0 {
			shortage -= *it.Difference
		} else {
			surplus += *it.Difference
		}
	}
	if shortage == 0 && surplus == 0 {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Інвентаризацію завершено (кіоск %s)\n", session.KioskID)
	fmt.Fprintf(&b, "Позицій пораховано: %d\n", counted)
	if shortage > 0 {
		fmt.Fprintf(&b, "Нестача: %d шт\n", shortage)
	}
	if surplus > 0 {
		fmt.Fprintf(&b, "Надлишок: %d шт\n", surplus)
	}
	if err := uc.notifier.Send(ctx, b.String()); err != nil {
		log.Error().Err(err).Str("session_id", session.ID).Msg("inventory notification failed")
	}
}

func toItemResponse(it *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:             it.ID,
		SessionID:      it.SessionID,
		ProductID:      it.ProductID,
		SystemQuantity: it.SystemQuantity,
		ActualQuantity: it.ActualQuantity,
		Difference:     it.Difference,
		Notes:          it.Notes,
	}
}

func toSessionResponse(s *entity.InventorySession, items []*entity.InventoryItem) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:          s.ID,
		KioskID:     s.KioskID,
		CreatedBy:   s.CreatedBy,
		Status:      s.Status,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
		Items:       make([]dto.InventoryItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, toItemResponse(it))
	}
	return resp
}
