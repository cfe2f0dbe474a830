package handler

import (
	"sync"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/middleware"
	"vocaquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	quizService  *service.QuizService
	statsService *service.StatsService
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Per-user locks so button mashing is handled one press at a time
	callbackLocks map[int64]*userLock
	callbackMux   sync.Mutex
}

// userLock is a per-user mutex counting its holders and waiters
type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	quizService *service.QuizService,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		authService:   authService,
		quizService:   quizService,
		statsService:  statsService,
		logger:        logger,
		states:        make(map[int64]*domain.StateData),
		callbackLocks: make(map[int64]*userLock),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Password entry and /start stay open to everyone
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	authorized := h.bot.Group()
	authorized.Use(middleware.AuthMiddleware(h.authService, h.logger))

	authorized.Handle("/quiz", h.handleNewQuiz)
	authorized.Handle("/results", h.handleViewDays)

	authorized.Handle(&btnNewQuiz, h.handleNewQuiz)
	authorized.Handle(&btnViewDays, h.handleViewDays)
	authorized.Handle(&btnCancel, h.handleCancel)
	authorized.Handle(&btnBack, h.handleStart)
	authorized.Handle(&btnBackToDays, h.handleViewDays)
	authorized.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	authorized.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	delete(h.states, userID)
}

// lockUser serializes presses of one user and returns the unlock func.
// The lock is dropped from the map once nobody holds or waits for it.
func (h *Handler) lockUser(userID int64) func() {
	h.callbackMux.Lock()
	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &userLock{}
		h.callbackLocks[userID] = lock
	}
	lock.refs++
	h.callbackMux.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		h.callbackMux.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(h.callbackLocks, userID)
		}
		h.callbackMux.Unlock()
	}
}

// Inline keyboard buttons
var (
	btnNewQuiz = tele.Btn{
		Unique: "new_quiz",
		Text:   "🎯 Новая викторина",
	}
	btnViewDays = tele.Btn{
		Unique: "view_days",
		Text:   "📊 Мои результаты",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Прервать",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Назад",
	}
	btnBackToDays = tele.Btn{
		Unique: "back_to_days",
		Text:   "◀️ К дням",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Главное меню",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnNewQuiz),
		menu.Row(btnViewDays),
	)
	return menu
}

const (
	mainMenuText       = "🏠 Главное меню\n\nВыберите действие:"
	errorText          = "Произошла ошибка. Попробуйте позже."
	passwordPromptText = "Привет! Это викторина по словам. Чтобы начать, введи пароль:"
)
