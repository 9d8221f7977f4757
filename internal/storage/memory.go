package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
)

// MemoryStorage implements the service.Storage port with volatile in-process
// maps. A single RWMutex serializes mutations, matching the single-writer
// requirement of the ledger engine. Useful for tests and for running without
// a database file.
type MemoryStorage struct {
	accounts     map[string]model.Account
	cards        map[string]model.Card
	transactions map[string]model.Transaction
	goals        map[string]model.Goal
	limits       map[string]model.Limit
	categories   map[string]model.Category
	order        map[string]int // insertion order across all collections
	seq          int
	mu           sync.RWMutex
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		accounts:     make(map[string]model.Account),
		cards:        make(map[string]model.Card),
		transactions: make(map[string]model.Transaction),
		goals:        make(map[string]model.Goal),
		limits:       make(map[string]model.Limit),
		categories:   make(map[string]model.Category),
		order:        make(map[string]int),
	}
}

// Migrate is a no-op for in-memory storage.
func (m *MemoryStorage) Migrate(_ context.Context) error { return nil }

// Close is a no-op for in-memory storage.
func (m *MemoryStorage) Close() error { return nil }

// ResetAllData clears every entity collection.
func (m *MemoryStorage) ResetAllData(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = make(map[string]model.Account)
	m.cards = make(map[string]model.Card)
	m.transactions = make(map[string]model.Transaction)
	m.goals = make(map[string]model.Goal)
	m.limits = make(map[string]model.Limit)
	m.categories = make(map[string]model.Category)
	m.order = make(map[string]int)
	return nil
}

func (m *MemoryStorage) track(id string) {
	if _, ok := m.order[id]; !ok {
		m.seq++
		m.order[id] = m.seq
	}
}

// Account operations

// CreateAccount inserts a new account.
func (m *MemoryStorage) CreateAccount(ctx context.Context, account *model.Account) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAccount(account); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; ok {
		return fmt.Errorf("%w: account %s", common.ErrDuplicateEntry, account.ID)
	}
	m.accounts[account.ID] = *account
	m.track(account.ID)
	return nil
}

// GetAccount returns the account with the given id.
func (m *MemoryStorage) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", common.ErrNotFound, id)
	}
	return &account, nil
}

// ListAccounts returns all accounts in insertion order.
func (m *MemoryStorage) ListAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]model.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		accounts = append(accounts, account)
	}
	m.sortByInsertion(len(accounts), func(i int) string { return accounts[i].ID }, func(i, j int) {
		accounts[i], accounts[j] = accounts[j], accounts[i]
	})
	return accounts, nil
}

// SaveAccount persists the full account record.
func (m *MemoryStorage) SaveAccount(ctx context.Context, account *model.Account) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAccount(account); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		return fmt.Errorf("%w: account %s", common.ErrNotFound, account.ID)
	}
	m.accounts[account.ID] = *account
	return nil
}

// Card operations

// CreateCard inserts a new card.
func (m *MemoryStorage) CreateCard(ctx context.Context, card *model.Card) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCard(card); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[card.ID]; ok {
		return fmt.Errorf("%w: card %s", common.ErrDuplicateEntry, card.ID)
	}
	m.cards[card.ID] = *card
	m.track(card.ID)
	return nil
}

// GetCard returns the card with the given id.
func (m *MemoryStorage) GetCard(ctx context.Context, id string) (*model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	card, ok := m.cards[id]
	if !ok {
		return nil, fmt.Errorf("%w: card %s", common.ErrNotFound, id)
	}
	return &card, nil
}

// ListCards returns all cards in insertion order.
func (m *MemoryStorage) ListCards(ctx context.Context) ([]model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	cards := make([]model.Card, 0, len(m.cards))
	for _, card := range m.cards {
		cards = append(cards, card)
	}
	m.sortByInsertion(len(cards), func(i int) string { return cards[i].ID }, func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards, nil
}

// SaveCard persists the full card record.
func (m *MemoryStorage) SaveCard(ctx context.Context, card *model.Card) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCard(card); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[card.ID]; !ok {
		return fmt.Errorf("%w: card %s", common.ErrNotFound, card.ID)
	}
	m.cards[card.ID] = *card
	return nil
}

// Transaction operations

// CreateTransaction inserts a new transaction.
func (m *MemoryStorage) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[txn.ID]; ok {
		return fmt.Errorf("%w: transaction %s", common.ErrDuplicateEntry, txn.ID)
	}
	m.transactions[txn.ID] = copyTransaction(txn)
	m.track(txn.ID)
	return nil
}

// GetTransaction returns the transaction with the given id.
func (m *MemoryStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	txn, ok := m.transactions[id]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	out := copyTransaction(&txn)
	return &out, nil
}

// ListTransactions returns all transactions in insertion order.
func (m *MemoryStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	transactions := make([]model.Transaction, 0, len(m.transactions))
	for _, txn := range m.transactions {
		transactions = append(transactions, copyTransaction(&txn))
	}
	m.sortByInsertion(len(transactions), func(i int) string { return transactions[i].ID }, func(i, j int) {
		transactions[i], transactions[j] = transactions[j], transactions[i]
	})
	return transactions, nil
}

// SaveTransaction persists the full transaction record.
func (m *MemoryStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[txn.ID]; !ok {
		return fmt.Errorf("%w: transaction %s", common.ErrNotFound, txn.ID)
	}
	m.transactions[txn.ID] = copyTransaction(txn)
	return nil
}

// Goal operations

// CreateGoal inserts a new goal.
func (m *MemoryStorage) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.goals[goal.ID]; ok {
		return fmt.Errorf("%w: goal %s", common.ErrDuplicateEntry, goal.ID)
	}
	m.goals[goal.ID] = *goal
	m.track(goal.ID)
	return nil
}

// GetGoal returns the goal with the given id.
func (m *MemoryStorage) GetGoal(ctx context.Context, id string) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	goal, ok := m.goals[id]
	if !ok {
		return nil, fmt.Errorf("%w: goal %s", common.ErrNotFound, id)
	}
	return &goal, nil
}

// ListGoals returns all goals in insertion order.
func (m *MemoryStorage) ListGoals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	goals := make([]model.Goal, 0, len(m.goals))
	for _, goal := range m.goals {
		goals = append(goals, goal)
	}
	m.sortByInsertion(len(goals), func(i int) string { return goals[i].ID }, func(i, j int) {
		goals[i], goals[j] = goals[j], goals[i]
	})
	return goals, nil
}

// SaveGoal persists the full goal record.
func (m *MemoryStorage) SaveGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.goals[goal.ID]; !ok {
		return fmt.Errorf("%w: goal %s", common.ErrNotFound, goal.ID)
	}
	m.goals[goal.ID] = *goal
	return nil
}

// Limit operations

// CreateLimit inserts a new spending limit.
func (m *MemoryStorage) CreateLimit(ctx context.Context, limit *model.Limit) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateLimit(limit); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.limits[limit.ID]; ok {
		return fmt.Errorf("%w: limit %s", common.ErrDuplicateEntry, limit.ID)
	}
	m.limits[limit.ID] = *limit
	m.track(limit.ID)
	return nil
}

// GetLimit returns the limit with the given id.
func (m *MemoryStorage) GetLimit(ctx context.Context, id string) (*model.Limit, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	limit, ok := m.limits[id]
	if !ok {
		return nil, fmt.Errorf("%w: limit %s", common.ErrNotFound, id)
	}
	return &limit, nil
}

// ListLimits returns all limits in insertion order.
func (m *MemoryStorage) ListLimits(ctx context.Context) ([]model.Limit, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	limits := make([]model.Limit, 0, len(m.limits))
	for _, limit := range m.limits {
		limits = append(limits, limit)
	}
	m.sortByInsertion(len(limits), func(i int) string { return limits[i].ID }, func(i, j int) {
		limits[i], limits[j] = limits[j], limits[i]
	})
	return limits, nil
}

// SaveLimit persists the full limit record.
func (m *MemoryStorage) SaveLimit(ctx context.Context, limit *model.Limit) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateLimit(limit); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.limits[limit.ID]; !ok {
		return fmt.Errorf("%w: limit %s", common.ErrNotFound, limit.ID)
	}
	m.limits[limit.ID] = *limit
	return nil
}

// Custom category operations

// CreateCustomCategory inserts a user-defined category.
func (m *MemoryStorage) CreateCustomCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; ok {
		return fmt.Errorf("%w: custom category %s", common.ErrDuplicateEntry, category.ID)
	}
	m.categories[category.ID] = copyCategory(category)
	m.track(category.ID)
	return nil
}

// ListCustomCategories returns all user-defined categories in insertion order.
func (m *MemoryStorage) ListCustomCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	categories := make([]model.Category, 0, len(m.categories))
	for _, cat := range m.categories {
		categories = append(categories, copyCategory(&cat))
	}
	m.sortByInsertion(len(categories), func(i int) string { return categories[i].ID }, func(i, j int) {
		categories[i], categories[j] = categories[j], categories[i]
	})
	return categories, nil
}

// SaveCustomCategory replaces a user-defined category.
func (m *MemoryStorage) SaveCustomCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		return fmt.Errorf("%w: custom category %s", common.ErrNotFound, category.ID)
	}
	m.categories[category.ID] = copyCategory(category)
	return nil
}

// sortByInsertion orders a slice by the sequence the ids were first created.
func (m *MemoryStorage) sortByInsertion(n int, id func(int) string, swap func(i, j int)) {
	for i := 1; i < n; i++ {
		for j := i; j > 0 && m.order[id(j)] < m.order[id(j-1)]; j-- {
			swap(j, j-1)
		}
	}
}

func copyTransaction(txn *model.Transaction) model.Transaction {
	out := *txn
	if txn.Installment != nil {
		inst := *txn.Installment
		out.Installment = &inst
	}
	if txn.Transfer != nil {
		tr := *txn.Transfer
		out.Transfer = &tr
	}
	return out
}

func copyCategory(cat *model.Category) model.Category {
	out := *cat
	out.Subcategories = append([]model.SubCategory(nil), cat.Subcategories...)
	return out
}
