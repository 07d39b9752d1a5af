package handler

import (
	"adminbot/internal/domain"
	"adminbot/internal/middleware"
	"adminbot/internal/repository"
	"adminbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Messages shared across handlers
const (
	msgUnknownCommand     = "Неизвестная команда. Выберите пункт меню."
	msgEnterBroadcastText = "Введите текст рассылки:"
	msgEnterAnswerText    = "Введите текст ответа:"
	msgQuestionNotFound   = "Вопрос не найден"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	admins     repository.AdminRepository
	states     repository.StateRepository
	broadcasts *service.BroadcastService
	questions  *service.QuestionService
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	admins repository.AdminRepository,
	states repository.StateRepository,
	broadcasts *service.BroadcastService,
	questions *service.QuestionService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		admins:     admins,
		states:     states,
		broadcasts: broadcasts,
		questions:  questions,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers behind the admin gate
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.AdminMiddleware(h.admins, h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text and media messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnPhoto, h.handleMedia)
	h.bot.Handle(tele.OnVideo, h.handleMedia)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{{Text: "Создать рассылку", Data: string(domain.ActionNewsletter)}},
			{{Text: "Открытые вопросы", Data: string(domain.ActionShowOpenQuestions)}},
			{{Text: "Закрытые вопросы", Data: string(domain.ActionShowCloseQuestions)}},
		},
	}
}
