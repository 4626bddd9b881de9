package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos de repositorio, compartidos por los tests del
// paquete. Replican la semántica relevante de la implementación Postgres:
// nil/nil cuando no hay fila, ErrDuplicate ante claves repetidas.
// ──────────────────────────────────────────────────────────────────────────────

// ── Company ───────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) ListActive() ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		if !c.IsDeleted() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCompanyRepo) ListWithCounts() ([]*repository.CompanyWithCounts, error) {
	list, _ := r.ListActive()
	out := make([]*repository.CompanyWithCounts, 0, len(list))
	for _, c := range list {
		out = append(out, &repository.CompanyWithCounts{Company: *c})
	}
	return out, nil
}

func (r *fakeCompanyRepo) SetActive(id string, active bool) error {
	if c, ok := r.companies[id]; ok {
		c.IsActive = active
	}
	return nil
}

func (r *fakeCompanyRepo) SoftDelete(id string, when time.Time) error {
	if c, ok := r.companies[id]; ok {
		c.DeletedAt = &when
		c.IsActive = false
	}
	return nil
}

func (r *fakeCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

// ── User ──────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users        map[string]*entity.User
	companyNames map[string]string
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, companyNames: map[string]string{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(id string, when time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastLogin = &when
	}
	return nil
}

func (r *fakeUserRepo) SetActiveByCompany(companyID string, active bool) error {
	for _, u := range r.users {
		if u.CompanyID == companyID {
			u.IsActive = active
		}
	}
	return nil
}

func (r *fakeUserRepo) ListAllWithCompany() ([]*repository.UserWithCompany, error) {
	var out []*repository.UserWithCompany
	for _, u := range r.users {
		out = append(out, &repository.UserWithCompany{
			User:        *u,
			CompanyName: r.companyNames[u.CompanyID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeUserRepo) DeleteByCompany(companyID string) error {
	for id, u := range r.users {
		if u.CompanyID == companyID {
			delete(r.users, id)
		}
	}
	return nil
}

// ── Session (curriculum) ──────────────────────────────────────────────────────

type fakeSessionRepo struct {
	sessions     []*entity.Session
	companyNames map[string]string
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{companyNames: map[string]string{}}
}

func (r *fakeSessionRepo) CreateBatch(sessions []*entity.Session) error {
	r.sessions = append(r.sessions, sessions...)
	return nil
}

func (r *fakeSessionRepo) ListByCompany(companyID string) ([]*entity.Session, error) {
	var out []*entity.Session
	for _, s := range r.sessions {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SessionNumber < out[j].SessionNumber })
	return out, nil
}

func (r *fakeSessionRepo) GetByNumber(companyID string, sessionNumber int) (*entity.Session, error) {
	for _, s := range r.sessions {
		if s.CompanyID == companyID && s.SessionNumber == sessionNumber {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Update(session *entity.Session) error {
	for i, s := range r.sessions {
		if s.ID == session.ID {
			r.sessions[i] = session
		}
	}
	return nil
}

func (r *fakeSessionRepo) Stats(companyID string) (int, int, error) {
	total, completed := 0, 0
	for _, s := range r.sessions {
		if s.CompanyID != companyID {
			continue
		}
		total++
		if s.Status == entity.SessionCompleted {
			completed++
		}
	}
	return total, completed, nil
}

func (r *fakeSessionRepo) NextScheduled(companyID string, after time.Time) (*entity.Session, error) {
	var next *entity.Session
	for _, s := range r.sessions {
		if s.CompanyID != companyID || s.Status != entity.SessionScheduled || s.ScheduledDate == nil {
			continue
		}
		if s.ScheduledDate.Before(after) {
			continue
		}
		if next == nil || s.ScheduledDate.Before(*next.ScheduledDate) {
			next = s
		}
	}
	return next, nil
}

func (r *fakeSessionRepo) ListAllWithCompany() ([]*repository.SessionWithCompany, error) {
	out := make([]*repository.SessionWithCompany, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, &repository.SessionWithCompany{
			Session:     *s,
			CompanyName: r.companyNames[s.CompanyID],
		})
	}
	return out, nil
}

func (r *fakeSessionRepo) DeleteByCompany(companyID string) error {
	var kept []*entity.Session
	for _, s := range r.sessions {
		if s.CompanyID != companyID {
			kept = append(kept, s)
		}
	}
	r.sessions = kept
	return nil
}

// ── System ────────────────────────────────────────────────────────────────────

type fakeSystemRepo struct {
	systems      map[string]*entity.System
	companyNames map[string]string
	// dupNext fuerza las próximas n inserciones a colisionar, para simular
	// la carrera de numeración.
	dupNext int
}

var _ repository.SystemRepository = (*fakeSystemRepo)(nil)

func newFakeSystemRepo() *fakeSystemRepo {
	return &fakeSystemRepo{systems: map[string]*entity.System{}, companyNames: map[string]string{}}
}

func (r *fakeSystemRepo) Create(system *entity.System) error {
	if r.dupNext > 0 {
		r.dupNext--
		return domain.ErrDuplicate
	}
	for _, s := range r.systems {
		if s.CompanyID == system.CompanyID && s.SystemNumber == system.SystemNumber {
			return domain.ErrDuplicate
		}
	}
	r.systems[system.ID] = system
	return nil
}

func (r *fakeSystemRepo) GetByNumber(companyID string, systemNumber int) (*entity.System, error) {
	for _, s := range r.systems {
		if s.CompanyID == companyID && s.SystemNumber == systemNumber {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSystemRepo) ListByCompany(companyID string) ([]*entity.System, error) {
	var out []*entity.System
	for _, s := range r.systems {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SystemNumber < out[j].SystemNumber })
	return out, nil
}

func (r *fakeSystemRepo) MaxNumber(companyID string) (int, error) {
	max := 0
	for _, s := range r.systems {
		if s.CompanyID == companyID && s.SystemNumber > max {
			max = s.SystemNumber
		}
	}
	return max, nil
}

func (r *fakeSystemRepo) Update(system *entity.System) error {
	r.systems[system.ID] = system
	return nil
}

func (r *fakeSystemRepo) Delete(id string) error {
	delete(r.systems, id)
	return nil
}

func (r *fakeSystemRepo) TotalEffect(companyID string) (decimal.Decimal, decimal.Decimal, error) {
	timeRed, costRed := decimal.Zero, decimal.Zero
	for _, s := range r.systems {
		if s.CompanyID != companyID {
			continue
		}
		if s.ActualTimeReduction != nil {
			timeRed = timeRed.Add(*s.ActualTimeReduction)
		}
		if s.ActualCostReduction != nil {
			costRed = costRed.Add(*s.ActualCostReduction)
		}
	}
	return timeRed, costRed, nil
}

func (r *fakeSystemRepo) ListAllWithCompany() ([]*repository.SystemWithCompany, error) {
	var out []*repository.SystemWithCompany
	for _, s := range r.systems {
		out = append(out, &repository.SystemWithCompany{
			System:      *s,
			CompanyName: r.companyNames[s.CompanyID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SystemNumber < out[j].SystemNumber })
	return out, nil
}

func (r *fakeSystemRepo) DeleteByCompany(companyID string) error {
	for id, s := range r.systems {
		if s.CompanyID == companyID {
			delete(r.systems, id)
		}
	}
	return nil
}

// ── Measurement ───────────────────────────────────────────────────────────────

type fakeMeasurementRepo struct {
	measurements []*entity.Measurement
}

var _ repository.MeasurementRepository = (*fakeMeasurementRepo)(nil)

func newFakeMeasurementRepo() *fakeMeasurementRepo {
	return &fakeMeasurementRepo{}
}

func (r *fakeMeasurementRepo) Create(m *entity.Measurement) error {
	r.measurements = append(r.measurements, m)
	return nil
}

func (r *fakeMeasurementRepo) ListBySystem(systemID string) ([]*entity.Measurement, error) {
	var out []*entity.Measurement
	for _, m := range r.measurements {
		if m.SystemID == systemID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MeasurementDate.After(out[j].MeasurementDate) })
	return out, nil
}

func (r *fakeMeasurementRepo) MonthlyTotals(companyID string) ([]repository.MonthlyEffect, error) {
	byMonth := map[string]*repository.MonthlyEffect{}
	for _, m := range r.measurements {
		if m.CompanyID != companyID {
			continue
		}
		month := m.MeasurementDate.Format("2006-01")
		agg, ok := byMonth[month]
		if !ok {
			agg = &repository.MonthlyEffect{Month: month}
			byMonth[month] = agg
		}
		agg.Time = agg.Time.Add(m.TimeReduction)
		agg.Cost = agg.Cost.Add(m.CostReduction)
	}
	var out []repository.MonthlyEffect
	for _, agg := range byMonth {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r *fakeMeasurementRepo) DeleteByCompany(companyID string) error {
	var kept []*entity.Measurement
	for _, m := range r.measurements {
		if m.CompanyID != companyID {
			kept = append(kept, m)
		}
	}
	r.measurements = kept
	return nil
}

// ── DeletedSystem ─────────────────────────────────────────────────────────────

type fakeDeletedSystemRepo struct {
	snapshots map[string]*entity.DeletedSystem
}

var _ repository.DeletedSystemRepository = (*fakeDeletedSystemRepo)(nil)

func newFakeDeletedSystemRepo() *fakeDeletedSystemRepo {
	return &fakeDeletedSystemRepo{snapshots: map[string]*entity.DeletedSystem{}}
}

func (r *fakeDeletedSystemRepo) Create(snapshot *entity.DeletedSystem) error {
	r.snapshots[snapshot.ID] = snapshot
	return nil
}

func (r *fakeDeletedSystemRepo) GetByID(id string) (*entity.DeletedSystem, error) {
	return r.snapshots[id], nil
}

func (r *fakeDeletedSystemRepo) List(_ context.Context, companyID string, limit int) ([]*entity.DeletedSystem, error) {
	var out []*entity.DeletedSystem
	for _, d := range r.snapshots {
		if companyID == "" || d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeletedAt.After(out[j].DeletedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDeletedSystemRepo) Delete(id string) error {
	delete(r.snapshots, id)
	return nil
}

// ── UserSession ───────────────────────────────────────────────────────────────

type fakeUserSessionRepo struct {
	sessions map[string]*entity.UserSession
}

var _ repository.UserSessionRepository = (*fakeUserSessionRepo)(nil)

func newFakeUserSessionRepo() *fakeUserSessionRepo {
	return &fakeUserSessionRepo{sessions: map[string]*entity.UserSession{}}
}

func (r *fakeUserSessionRepo) Create(session *entity.UserSession) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeUserSessionRepo) GetByID(token string) (*entity.UserSession, error) {
	return r.sessions[token], nil
}

func (r *fakeUserSessionRepo) Delete(token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *fakeUserSessionRepo) DeleteByUser(userID string) error {
	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeUserSessionRepo) DeleteByCompany(companyID string) error {
	for id, s := range r.sessions {
		if s.CompanyID == companyID {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeUserSessionRepo) DeleteExpired(now time.Time) error {
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeUserSessionRepo) ListActive(now time.Time) ([]*repository.ActiveSession, error) {
	var out []*repository.ActiveSession
	for _, s := range r.sessions {
		if !s.Expired(now) {
			out = append(out, &repository.ActiveSession{UserSession: *s})
		}
	}
	return out, nil
}

// ── Notification ──────────────────────────────────────────────────────────────

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

var _ repository.NotificationRepository = (*fakeNotificationRepo)(nil)

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) ListVisible(userID, companyID string, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		visible := (n.UserID != nil && *n.UserID == userID) ||
			(n.UserID == nil && n.CompanyID != nil && *n.CompanyID == companyID) ||
			(n.UserID == nil && n.CompanyID == nil)
		if visible {
			out = append(out, n)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(id, userID string) error {
	for _, n := range r.notifications {
		if n.ID == id && (n.UserID == nil || *n.UserID == userID) {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(userID string) error {
	for _, n := range r.notifications {
		if n.UserID != nil && *n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) DeleteByCompany(companyID string) error {
	var kept []*entity.Notification
	for _, n := range r.notifications {
		if n.CompanyID == nil || *n.CompanyID != companyID {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn directamente sobre los mismos fakes (sin transacción
// real); sirve para verificar qué escrituras dispara cada caso de uso.
type fakeTxRunner struct {
	tx repository.Tx
}

var _ repository.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(tx repository.Tx) error) error {
	return fn(r.tx)
}
