package handler

import (
	"github.com/fuyo-dev/shift-scheduler/backend/internal/config"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	clock       domain.Clock

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, clock domain.Clock) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	ja := ja.New()
	uni := ut.New(ja, ja)
	trans, _ := uni.GetTranslator("ja")
	if err := ja_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		clock:       clock,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 認証関連
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下の API はログイン後のみ呼び出せる
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/managers", func(r chi.Router) {
			r.Post("/", h.CreateManager)
			r.Get("/", h.GetAllManagers)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.managerInfo)
				r.Get("/", h.GetManagerInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateManager)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteManager)
				r.Patch("/password", h.UpdateManagerPassword)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", h.CreateEmployee)
			r.Get("/", h.GetAllEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployeeInfo)
				r.Patch("/", h.UpdateEmployee)
				r.Delete("/", h.DeleteEmployee)
			})
		})

		r.Route("/shift-types", func(r chi.Router) {
			r.Post("/", h.CreateShiftType)
			r.Get("/", h.GetAllShiftTypes)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftTypeInfo)
				r.Get("/", h.GetShiftTypeInfo)
				r.Patch("/", h.UpdateShiftType)
				r.Delete("/", h.DeleteShiftType)
			})
		})

		r.Route("/shift-schedules", func(r chi.Router) {
			r.Post("/", h.CreateShiftSchedule)
			r.Get("/", h.GetAllShiftSchedules)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftScheduleInfo)
				r.Get("/", h.GetShiftScheduleInfo)
				r.Delete("/", h.DeleteShiftSchedule)
				r.Post("/publish", h.PublishShiftSchedule)
				r.Post("/unpublish", h.UnpublishShiftSchedule)
				r.Get("/work-summaries", h.GetWorkSummaries)
				r.Route("/assignments", func(r chi.Router) {
					r.Post("/standard", h.AssignShift)
					r.Post("/custom", h.AssignShiftWithCustomTime)
					r.Post("/time-off", h.GrantTimeOff)
					r.Delete("/", h.Unassign)
				})
				r.Route("/notices", func(r chi.Router) {
					r.Post("/", h.CreateShiftNotice)
					r.Patch("/{noticeId}", h.UpdateShiftNotice)
					r.Delete("/{noticeId}", h.DeleteShiftNotice)
				})
			})
		})
	})
}
