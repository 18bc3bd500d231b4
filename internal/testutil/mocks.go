package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/websocket"
)

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository
type MockExpenseRepository struct {
	Expenses map[domain.ID]*domain.Expense
	Order    []domain.ID
	NextID   int
	ListFn   func(ctx context.Context, token string, filters domain.ExpenseFilters) ([]*domain.Expense, error)
	CreateFn func(ctx context.Context, token string, input domain.ExpenseInput) (*domain.Expense, error)
	DeleteFn func(ctx context.Context, token string, id domain.ID) error
	Tokens   []string
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[domain.ID]*domain.Expense),
		NextID:   1,
	}
}

// AddExpense adds an expense directly to the mock
func (m *MockExpenseRepository) AddExpense(e *domain.Expense) {
	if _, ok := m.Expenses[e.ID]; !ok {
		m.Order = append(m.Order, e.ID)
	}
	m.Expenses[e.ID] = e
}

// List returns expenses in insertion order, filtered by month and category
func (m *MockExpenseRepository) List(ctx context.Context, token string, filters domain.ExpenseFilters) ([]*domain.Expense, error) {
	m.Tokens = append(m.Tokens, token)
	if m.ListFn != nil {
		return m.ListFn(ctx, token, filters)
	}
	result := []*domain.Expense{}
	for _, id := range m.Order {
		e := m.Expenses[id]
		if filters.Month != "" && e.Date.MonthKey() != filters.Month {
			continue
		}
		if filters.Category != "" && e.Category != filters.Category {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

// GetByID retrieves an expense by ID
func (m *MockExpenseRepository) GetByID(ctx context.Context, token string, id domain.ID) (*domain.Expense, error) {
	if e, ok := m.Expenses[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

// Create creates a new expense
func (m *MockExpenseRepository) Create(ctx context.Context, token string, input domain.ExpenseInput) (*domain.Expense, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token, input)
	}
	e := &domain.Expense{
		ID:            domain.ID(fmt.Sprint(m.NextID)),
		Name:          input.Name,
		Value:         input.Value,
		Category:      input.Category,
		Date:          input.Date,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		IsRecurring:   input.IsRecurring,
	}
	m.NextID++
	m.AddExpense(e)
	return e, nil
}

// Update updates an existing expense
func (m *MockExpenseRepository) Update(ctx context.Context, token string, id domain.ID, input domain.ExpenseInput) (*domain.Expense, error) {
	e, ok := m.Expenses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.Name = input.Name
	e.Value = input.Value
	e.Category = input.Category
	e.Date = input.Date
	e.Description = input.Description
	e.PaymentMethod = input.PaymentMethod
	return e, nil
}

// Delete removes an expense
func (m *MockExpenseRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, token, id)
	}
	if _, ok := m.Expenses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.Expenses, id)
	for i, oid := range m.Order {
		if oid == id {
			m.Order = append(m.Order[:i], m.Order[i+1:]...)
			break
		}
	}
	return nil
}

// MockIncomeRepository is a mock implementation of domain.IncomeRepository
type MockIncomeRepository struct {
	Incomes []*domain.Income
	NextID  int
	ListFn  func(ctx context.Context, token string, month string) ([]*domain.Income, error)
}

// NewMockIncomeRepository creates a new MockIncomeRepository
func NewMockIncomeRepository() *MockIncomeRepository {
	return &MockIncomeRepository{NextID: 1}
}

// List returns incomes, filtered by month
func (m *MockIncomeRepository) List(ctx context.Context, token string, month string) ([]*domain.Income, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, token, month)
	}
	result := []*domain.Income{}
	for _, inc := range m.Incomes {
		if month == "" || inc.Date.MonthKey() == month {
			result = append(result, inc)
		}
	}
	return result, nil
}

// Create creates a new income
func (m *MockIncomeRepository) Create(ctx context.Context, token string, input domain.IncomeInput) (*domain.Income, error) {
	inc := &domain.Income{
		ID:          domain.ID(fmt.Sprint(m.NextID)),
		Description: input.Description,
		Value:       input.Value,
		Category:    input.Category,
		Date:        input.Date,
	}
	m.NextID++
	m.Incomes = append(m.Incomes, inc)
	return inc, nil
}

// Update updates an existing income
func (m *MockIncomeRepository) Update(ctx context.Context, token string, id domain.ID, input domain.IncomeInput) (*domain.Income, error) {
	for _, inc := range m.Incomes {
		if inc.ID == id {
			inc.Description = input.Description
			inc.Value = input.Value
			inc.Category = input.Category
			inc.Date = input.Date
			return inc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes an income
func (m *MockIncomeRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	for i, inc := range m.Incomes {
		if inc.ID == id {
			m.Incomes = append(m.Incomes[:i], m.Incomes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// SetActiveCall records the arguments of a SetActive call
type SetActiveCall struct {
	ID      domain.ID
	Active  bool
	EndDate *domain.Date
}

// MockRecurringExpenseRepository is a mock implementation of domain.RecurringExpenseRepository
type MockRecurringExpenseRepository struct {
	Recurring      []*domain.RecurringExpense
	NextID         int
	SetActiveCalls []SetActiveCall
	ListFn         func(ctx context.Context, token string) ([]*domain.RecurringExpense, error)
	CreateFn       func(ctx context.Context, token string, input domain.RecurringExpenseInput) (*domain.RecurringExpense, error)
}

// NewMockRecurringExpenseRepository creates a new MockRecurringExpenseRepository
func NewMockRecurringExpenseRepository() *MockRecurringExpenseRepository {
	return &MockRecurringExpenseRepository{NextID: 1}
}

// AddRecurring adds a recurring expense directly to the mock
func (m *MockRecurringExpenseRepository) AddRecurring(rec *domain.RecurringExpense) {
	m.Recurring = append(m.Recurring, rec)
}

// List returns all recurring expenses
func (m *MockRecurringExpenseRepository) List(ctx context.Context, token string) ([]*domain.RecurringExpense, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, token)
	}
	result := make([]*domain.RecurringExpense, len(m.Recurring))
	copy(result, m.Recurring)
	return result, nil
}

// GetByID retrieves a recurring expense by ID
func (m *MockRecurringExpenseRepository) GetByID(ctx context.Context, token string, id domain.ID) (*domain.RecurringExpense, error) {
	for _, rec := range m.Recurring {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create creates a new recurring expense
func (m *MockRecurringExpenseRepository) Create(ctx context.Context, token string, input domain.RecurringExpenseInput) (*domain.RecurringExpense, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token, input)
	}
	input = input.Normalize()
	rec := &domain.RecurringExpense{
		ID:            domain.ID(fmt.Sprint(m.NextID)),
		Name:          input.Name,
		Value:         input.Value,
		Category:      input.Category,
		Frequency:     input.Frequency,
		DayOfMonth:    input.DayOfMonth,
		DayOfWeek:     input.DayOfWeek,
		PaymentMethod: input.PaymentMethod,
		IsActive:      input.IsActive,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
	}
	m.NextID++
	m.Recurring = append(m.Recurring, rec)
	return rec, nil
}

// Update updates an existing recurring expense
func (m *MockRecurringExpenseRepository) Update(ctx context.Context, token string, id domain.ID, input domain.RecurringExpenseInput) (*domain.RecurringExpense, error) {
	rec, err := m.GetByID(ctx, token, id)
	if err != nil {
		return nil, err
	}
	input = input.Normalize()
	rec.Name = input.Name
	rec.Value = input.Value
	rec.Category = input.Category
	rec.Frequency = input.Frequency
	rec.DayOfMonth = input.DayOfMonth
	rec.DayOfWeek = input.DayOfWeek
	rec.IsActive = input.IsActive
	rec.StartDate = input.StartDate
	rec.EndDate = input.EndDate
	return rec, nil
}

// SetActive records the call and applies it
func (m *MockRecurringExpenseRepository) SetActive(ctx context.Context, token string, id domain.ID, active bool, endDate *domain.Date) (*domain.RecurringExpense, error) {
	m.SetActiveCalls = append(m.SetActiveCalls, SetActiveCall{ID: id, Active: active, EndDate: endDate})
	rec, err := m.GetByID(ctx, token, id)
	if err != nil {
		return nil, err
	}
	rec.IsActive = active
	rec.EndDate = endDate
	return rec, nil
}

// Delete removes a recurring expense
func (m *MockRecurringExpenseRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	for i, rec := range m.Recurring {
		if rec.ID == id {
			m.Recurring = append(m.Recurring[:i], m.Recurring[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// MockPaymentMethodRepository is a mock implementation of domain.PaymentMethodRepository.
// SetDefault only flags the target, like an API that does not reset the
// previous default in the same response.
type MockPaymentMethodRepository struct {
	Methods []*domain.PaymentMethod
	NextID  int
}

// NewMockPaymentMethodRepository creates a new MockPaymentMethodRepository
func NewMockPaymentMethodRepository() *MockPaymentMethodRepository {
	return &MockPaymentMethodRepository{NextID: 1}
}

// List returns all payment methods
func (m *MockPaymentMethodRepository) List(ctx context.Context, token string) ([]*domain.PaymentMethod, error) {
	result := make([]*domain.PaymentMethod, len(m.Methods))
	copy(result, m.Methods)
	return result, nil
}

// Create creates a new payment method
func (m *MockPaymentMethodRepository) Create(ctx context.Context, token string, input domain.PaymentMethodInput) (*domain.PaymentMethod, error) {
	pm := &domain.PaymentMethod{
		ID:         domain.ID(fmt.Sprint(m.NextID)),
		Name:       input.Name,
		Type:       input.Type,
		LastDigits: input.LastDigits,
		IsDefault:  input.IsDefault,
		Limit:      input.Limit,
		UsedLimit:  input.UsedLimit,
	}
	m.NextID++
	m.Methods = append(m.Methods, pm)
	return pm, nil
}

// Update updates an existing payment method
func (m *MockPaymentMethodRepository) Update(ctx context.Context, token string, id domain.ID, input domain.PaymentMethodInput) (*domain.PaymentMethod, error) {
	for _, pm := range m.Methods {
		if pm.ID == id {
			pm.Name = input.Name
			pm.Type = input.Type
			pm.LastDigits = input.LastDigits
			pm.Limit = input.Limit
			pm.UsedLimit = input.UsedLimit
			return pm, nil
		}
	}
	return nil, domain.ErrNotFound
}

// SetDefault flags a payment method as default
func (m *MockPaymentMethodRepository) SetDefault(ctx context.Context, token string, id domain.ID) (*domain.PaymentMethod, error) {
	for _, pm := range m.Methods {
		if pm.ID == id {
			pm.IsDefault = true
			return pm, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes a payment method
func (m *MockPaymentMethodRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	for i, pm := range m.Methods {
		if pm.ID == id {
			m.Methods = append(m.Methods[:i], m.Methods[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// MockInvestmentRepository is a mock implementation of domain.InvestmentRepository
type MockInvestmentRepository struct {
	Investments []*domain.Investment
	NextID      int
}

// NewMockInvestmentRepository creates a new MockInvestmentRepository
func NewMockInvestmentRepository() *MockInvestmentRepository {
	return &MockInvestmentRepository{NextID: 1}
}

// List returns all investments
func (m *MockInvestmentRepository) List(ctx context.Context, token string) ([]*domain.Investment, error) {
	result := make([]*domain.Investment, len(m.Investments))
	copy(result, m.Investments)
	return result, nil
}

// Create creates a new investment
func (m *MockInvestmentRepository) Create(ctx context.Context, token string, input domain.InvestmentInput) (*domain.Investment, error) {
	inv := &domain.Investment{
		ID:           domain.ID(fmt.Sprint(m.NextID)),
		Name:         input.Name,
		Type:         input.Type,
		Value:        input.Value,
		CurrentValue: input.CurrentValue,
		PurchaseDate: input.PurchaseDate,
		Quantity:     input.Quantity,
		Ticker:       input.Ticker,
	}
	m.NextID++
	m.Investments = append(m.Investments, inv)
	return inv, nil
}

// Update updates an existing investment
func (m *MockInvestmentRepository) Update(ctx context.Context, token string, id domain.ID, input domain.InvestmentInput) (*domain.Investment, error) {
	for _, inv := range m.Investments {
		if inv.ID == id {
			inv.Name = input.Name
			inv.Type = input.Type
			inv.Value = input.Value
			inv.CurrentValue = input.CurrentValue
			inv.PurchaseDate = input.PurchaseDate
			inv.Quantity = input.Quantity
			inv.Ticker = input.Ticker
			return inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes an investment
func (m *MockInvestmentRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	for i, inv := range m.Investments {
		if inv.ID == id {
			m.Investments = append(m.Investments[:i], m.Investments[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// MockDashboardRepository is a mock implementation of domain.DashboardRepository
type MockDashboardRepository struct {
	Data   *domain.DashboardData
	Err    error
	Months []string
}

// Get returns the canned dashboard data
func (m *MockDashboardRepository) Get(ctx context.Context, token string, month string) (*domain.DashboardData, error) {
	m.Months = append(m.Months, month)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Data == nil {
		return &domain.DashboardData{}, nil
	}
	cp := *m.Data
	return &cp, nil
}

// MockAuthRepository is a mock implementation of domain.AuthRepository
type MockAuthRepository struct {
	Users      map[string]*domain.User // token -> user
	Passwords  map[string]string       // email -> password
	TokenFor   map[string]string       // email -> token
	LoggedOut  []string
	LogoutErr  error
	LoginCalls int
	MeErr      error
}

// NewMockAuthRepository creates a new MockAuthRepository
func NewMockAuthRepository() *MockAuthRepository {
	return &MockAuthRepository{
		Users:     make(map[string]*domain.User),
		Passwords: make(map[string]string),
		TokenFor:  make(map[string]string),
	}
}

// AddUser registers an account that can log in
func (m *MockAuthRepository) AddUser(user *domain.User, password, token string) {
	m.Users[token] = user
	m.Passwords[user.Email] = password
	m.TokenFor[user.Email] = token
}

// Login checks the credentials against registered accounts
func (m *MockAuthRepository) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	m.LoginCalls++
	if pw, ok := m.Passwords[creds.Email]; !ok || pw != creds.Password {
		return "", nil, domain.ErrUnauthorized
	}
	token := m.TokenFor[creds.Email]
	return token, m.Users[token], nil
}

// Logout records the token
func (m *MockAuthRepository) Logout(ctx context.Context, token string) error {
	m.LoggedOut = append(m.LoggedOut, token)
	return m.LogoutErr
}

// Me returns the user behind token
func (m *MockAuthRepository) Me(ctx context.Context, token string) (*domain.User, error) {
	if m.MeErr != nil {
		return nil, m.MeErr
	}
	if u, ok := m.Users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUnauthorized
}

// MockEventPublisher captures published events
type MockEventPublisher struct {
	Events []websocket.Event
	Tokens []string
	mu     sync.Mutex
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(token string, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	m.Tokens = append(m.Tokens, token)
}

// Types returns the type of every recorded event, in order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Type
	}
	return types
}
