package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
)

type employeeResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"fullName"`
	EmployeeType     string `json:"employeeType"`
	EmployeeTypeName string `json:"employeeTypeName"`
	Version          int32  `json:"version"`
}

func newEmployeeResponse(employee *domain.Employee) *employeeResponse {
	return &employeeResponse{
		ID:               employee.ID().String(),
		FullName:         employee.FullName().String(),
		EmployeeType:     employee.Type().Code(),
		EmployeeTypeName: employee.Type().DisplayName(),
		Version:          employee.Version(),
	}
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	res := make([]*employeeResponse, 0, len(employees))
	for _, employee := range employees {
		res = append(res, newEmployeeResponse(employee))
	}

	h.successResponse(w, r, "従業員一覧を取得しました", res)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName     string `json:"fullName" validate:"required"`
		EmployeeType string `json:"employeeType" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	fullName, err := domain.NewEmployeeFullName(req.FullName)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	employeeType, err := domain.ParseEmployeeType(req.EmployeeType)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	employee := domain.NewEmployee(fullName, employeeType)

	if err := h.repository.CreateEmployee(employee); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "従業員を登録しました", newEmployeeResponse(employee))
}

func (h *Handler) GetEmployeeInfo(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)
	h.successResponse(w, r, "従業員情報を取得しました", newEmployeeResponse(employee))
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName     *string `json:"fullName"`
		EmployeeType *string `json:"employeeType"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if req.FullName != nil {
		fullName, err := domain.NewEmployeeFullName(*req.FullName)
		if err != nil {
			h.domainError(w, r, err)
			return
		}
		employee.UpdateFullName(fullName)
	}
	if req.EmployeeType != nil {
		employeeType, err := domain.ParseEmployeeType(*req.EmployeeType)
		if err != nil {
			h.domainError(w, r, err)
			return
		}
		employee.UpdateType(employeeType)
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "従業員情報の更新に失敗しました。もう一度お試しください")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "従業員情報を更新しました", newEmployeeResponse(employee))
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "従業員を削除しました", nil)
}
