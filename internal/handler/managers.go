package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/utils"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetAllManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.repository.GetAllManagers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "管理者一覧を取得しました", managers)
}

func (h *Handler) CreateManager(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 初期パスワードを生成してハッシュ化する
	password := utils.GenerateRandomPassword(h.config.NewManager.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	manager := &domain.Manager{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Email:        req.Email,
	}

	if err := h.repository.CreateManager(manager); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "managers_username_key":
				h.badRequest(w, r, errors.New("このユーザー名は既に使用されています"))
			case pgErr.ConstraintName == "managers_email_key":
				h.badRequest(w, r, errors.New("このメールアドレスは既に使用されています"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 初期パスワードをメールで通知する
	mailMessage := domain.MailMessage{
		Type: "create_manager",
		To:   manager.Email,
		Data: domain.CreateManagerMailData{
			FullName: req.FullName,
			Username: req.Username,
			Password: password,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"mail_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "管理者を作成しました", manager)
}

func (h *Handler) GetManagerInfo(w http.ResponseWriter, r *http.Request) {
	manager := r.Context().Value(ManagerInfoCtx).(*domain.Manager)
	h.successResponse(w, r, "管理者情報を取得しました", manager)
}

func (h *Handler) UpdateManager(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName *string `json:"fullName"`
		Email    *string `json:"email" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	manager := r.Context().Value(ManagerInfoCtx).(*domain.Manager)

	if req.FullName != nil {
		manager.FullName = *req.FullName
	}
	if req.Email != nil {
		manager.Email = *req.Email
	}

	if err := h.repository.UpdateManager(manager); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "managers_email_key":
				h.badRequest(w, r, errors.New("このメールアドレスは既に使用されています"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "管理者情報の更新に失敗しました。もう一度お試しください")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "管理者情報を更新しました", manager)
}

func (h *Handler) DeleteManager(w http.ResponseWriter, r *http.Request) {
	manager := r.Context().Value(ManagerInfoCtx).(*domain.Manager)

	if err := h.repository.DeleteManager(manager.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "管理者を削除しました", nil)
}

func (h *Handler) UpdateManagerPassword(w http.ResponseWriter, r *http.Request) {
	manager := r.Context().Value(ManagerInfoCtx).(*domain.Manager)

	var req struct {
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	manager.PasswordHash = string(hashedPassword)
	if err := h.repository.UpdateManager(manager); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "パスワードを変更しました", nil)
}
