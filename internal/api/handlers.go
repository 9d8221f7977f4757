package api

import (
	"net/http"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/assistant"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var account model.Account
	if err := decodeBody(r, &account); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.engine.CreateAccount(r.Context(), &account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.engine.ListAccounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := s.engine.GetAccount(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

type accountPatch struct {
	Name *string            `json:"name"`
	Type *model.AccountType `json:"type"`
	Bank *string            `json:"bank"`
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	var patch accountPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	account, err := s.engine.UpdateAccount(r.Context(), mux.Vars(r)["id"], service.AccountUpdate{
		Name: patch.Name,
		Type: patch.Type,
		Bank: patch.Bank,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var card model.Card
	if err := decodeBody(r, &card); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.engine.CreateCard(r.Context(), &card)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.engine.ListCards(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	card, err := s.engine.GetCard(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

type cardPatch struct {
	Name        *string          `json:"name"`
	Limit       *decimal.Decimal `json:"limit"`
	Type        *model.CardType  `json:"type"`
	Bank        *string          `json:"bank"`
	DueDate     *int             `json:"dueDate"`
	ClosingDate *int             `json:"closingDate"`
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	var patch cardPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	card, err := s.engine.UpdateCard(r.Context(), mux.Vars(r)["id"], service.CardUpdate{
		Name:        patch.Name,
		Limit:       patch.Limit,
		Type:        patch.Type,
		Bank:        patch.Bank,
		DueDate:     patch.DueDate,
		ClosingDate: patch.ClosingDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var txn model.Transaction
	if err := decodeBody(r, &txn); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.engine.CreateTransaction(r.Context(), &txn)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.engine.ListTransactions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	txn, err := s.engine.GetTransaction(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txn)
}

type transactionPatch struct {
	Title           *string                  `json:"title"`
	Description     *string                  `json:"description"`
	UserDescription *string                  `json:"userDescription"`
	Amount          *decimal.Decimal         `json:"amount"`
	Type            *model.TransactionType   `json:"type"`
	Category        *string                  `json:"category"`
	Subcategory     *string                  `json:"subcategory"`
	PaymentMethod   *model.PaymentMethod     `json:"paymentMethod"`
	PaymentSource   *string                  `json:"paymentSource"`
	Status          *model.TransactionStatus `json:"status"`
	Date            *time.Time               `json:"date"`
	IsRecurring     *bool                    `json:"isRecurring"`
	IsInstallment   *bool                    `json:"isInstallment"`
	Installment     *model.InstallmentInfo   `json:"installmentInfo"`
	Transfer        *model.TransferInfo      `json:"transferInfo"`
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var patch transactionPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	txn, err := s.engine.UpdateTransaction(r.Context(), mux.Vars(r)["id"], service.TransactionUpdate{
		Title:           patch.Title,
		Description:     patch.Description,
		UserDescription: patch.UserDescription,
		Amount:          patch.Amount,
		Type:            patch.Type,
		Category:        patch.Category,
		Subcategory:     patch.Subcategory,
		PaymentMethod:   patch.PaymentMethod,
		PaymentSource:   patch.PaymentSource,
		Status:          patch.Status,
		Date:            patch.Date,
		IsRecurring:     patch.IsRecurring,
		IsInstallment:   patch.IsInstallment,
		Installment:     patch.Installment,
		Transfer:        patch.Transfer,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txn)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var goal model.Goal
	if err := decodeBody(r, &goal); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.engine.CreateGoal(r.Context(), &goal)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.engine.ListGoals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := s.engine.GetGoal(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

type goalPatch struct {
	Title               *string             `json:"title"`
	Description         *string             `json:"description"`
	ImageURL            *string             `json:"imageUrl"`
	TargetAmount        *decimal.Decimal    `json:"targetAmount"`
	CurrentAmount       *decimal.Decimal    `json:"currentAmount"`
	MonthlyContribution *decimal.Decimal    `json:"monthlyContribution"`
	TargetDate          *time.Time          `json:"targetDate"`
	Category            *string             `json:"category"`
	Priority            *model.GoalPriority `json:"priority"`
	Status              *model.GoalStatus   `json:"status"`
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var patch goalPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	goal, err := s.engine.UpdateGoal(r.Context(), mux.Vars(r)["id"], service.GoalUpdate{
		Title:               patch.Title,
		Description:         patch.Description,
		ImageURL:            patch.ImageURL,
		TargetAmount:        patch.TargetAmount,
		CurrentAmount:       patch.CurrentAmount,
		MonthlyContribution: patch.MonthlyContribution,
		TargetDate:          patch.TargetDate,
		Category:            patch.Category,
		Priority:            patch.Priority,
		Status:              patch.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleCreateLimit(w http.ResponseWriter, r *http.Request) {
	var lim model.Limit
	if err := decodeBody(r, &lim); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.engine.CreateLimit(r.Context(), &lim)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := s.engine.ListLimits(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, limits)
}

func (s *Server) handleGetLimit(w http.ResponseWriter, r *http.Request) {
	lim, err := s.engine.GetLimit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lim)
}

type limitPatch struct {
	Title          *string            `json:"title"`
	Category       *string            `json:"category"`
	Subcategory    *string            `json:"subcategory"`
	LimitAmount    *decimal.Decimal   `json:"limitAmount"`
	Period         *model.LimitPeriod `json:"period"`
	AlertThreshold *int               `json:"alertThreshold"`
	IsActive       *bool              `json:"isActive"`
	StartDate      *time.Time         `json:"startDate"`
	StartType      *model.StartType   `json:"startType"`
}

func (s *Server) handleUpdateLimit(w http.ResponseWriter, r *http.Request) {
	var patch limitPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	lim, err := s.engine.UpdateLimit(r.Context(), mux.Vars(r)["id"], service.LimitUpdate{
		Title:          patch.Title,
		Category:       patch.Category,
		Subcategory:    patch.Subcategory,
		LimitAmount:    patch.LimitAmount,
		Period:         patch.Period,
		AlertThreshold: patch.AlertThreshold,
		IsActive:       patch.IsActive,
		StartDate:      patch.StartDate,
		StartType:      patch.StartType,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lim)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.engine.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

type categoryRequest struct {
	Name string             `json:"name"`
	Icon string             `json:"icon"`
	Type model.CategoryType `json:"type"`
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	category, err := s.engine.CreateCustomCategory(r.Context(), req.Name, req.Icon, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

type subcategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (s *Server) handleAddSubcategory(w http.ResponseWriter, r *http.Request) {
	var req subcategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	category, err := s.engine.AddCustomSubcategory(r.Context(), mux.Vars(r)["id"], req.Name, req.Icon)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.engine.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

type assistantRequest struct {
	Output string `json:"output"`
}

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	cmd := assistant.Parse(req.Output)
	result, err := s.dispatcher.Dispatch(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.ResetAllData(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
