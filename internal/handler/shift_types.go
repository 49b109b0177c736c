package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
)

type shiftTypeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	Version       int32   `json:"version"`
}

func newShiftTypeResponse(shiftType *domain.ShiftType) *shiftTypeResponse {
	return &shiftTypeResponse{
		ID:            shiftType.ID().String(),
		Name:          shiftType.Name().String(),
		StartTime:     shiftType.StartTime().String(),
		EndTime:       shiftType.EndTime().String(),
		DurationHours: shiftType.DurationHours(),
		Version:       shiftType.Version(),
	}
}

func (h *Handler) GetAllShiftTypes(w http.ResponseWriter, r *http.Request) {
	shiftTypes, err := h.repository.GetAllShiftTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	res := make([]*shiftTypeResponse, 0, len(shiftTypes))
	for _, shiftType := range shiftTypes {
		res = append(res, newShiftTypeResponse(shiftType))
	}

	h.successResponse(w, r, "シフト区分一覧を取得しました", res)
}

func (h *Handler) CreateShiftType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	name, err := domain.NewShiftTypeName(req.Name)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	startTime, err := domain.NewShiftTypeTime(req.StartTime)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	endTime, err := domain.NewShiftTypeTime(req.EndTime)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	shiftType, err := domain.NewShiftType(name, startTime, endTime)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	if err := h.repository.CreateShiftType(shiftType); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "シフト区分を作成しました", newShiftTypeResponse(shiftType))
}

func (h *Handler) GetShiftTypeInfo(w http.ResponseWriter, r *http.Request) {
	shiftType := r.Context().Value(ShiftTypeInfoCtx).(*domain.ShiftType)
	h.successResponse(w, r, "シフト区分を取得しました", newShiftTypeResponse(shiftType))
}

func (h *Handler) UpdateShiftType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      *string `json:"name"`
		StartTime *string `json:"startTime"`
		EndTime   *string `json:"endTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shiftType := r.Context().Value(ShiftTypeInfoCtx).(*domain.ShiftType)

	if req.Name != nil {
		name, err := domain.NewShiftTypeName(*req.Name)
		if err != nil {
			h.domainError(w, r, err)
			return
		}
		shiftType.UpdateName(name)
	}

	// 時刻は前後関係を保ったまま更新する必要があるため、片方だけの指定も現在値と合わせて検証する
	if req.StartTime != nil || req.EndTime != nil {
		startTime := shiftType.StartTime()
		endTime := shiftType.EndTime()

		if req.StartTime != nil {
			parsed, err := domain.NewShiftTypeTime(*req.StartTime)
			if err != nil {
				h.domainError(w, r, err)
				return
			}
			startTime = parsed
		}
		if req.EndTime != nil {
			parsed, err := domain.NewShiftTypeTime(*req.EndTime)
			if err != nil {
				h.domainError(w, r, err)
				return
			}
			endTime = parsed
		}

		if err := shiftType.UpdateTime(startTime, endTime); err != nil {
			h.domainError(w, r, err)
			return
		}
	}

	if err := h.repository.UpdateShiftType(shiftType); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "シフト区分の更新に失敗しました。もう一度お試しください")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "シフト区分を更新しました", newShiftTypeResponse(shiftType))
}

func (h *Handler) DeleteShiftType(w http.ResponseWriter, r *http.Request) {
	shiftType := r.Context().Value(ShiftTypeInfoCtx).(*domain.ShiftType)

	if err := h.repository.DeleteShiftType(shiftType.ID()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "シフト区分を削除しました", nil)
}
