package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/google/uuid"
)

// snapshotter — in-memory хранилище, которое умеет откатываться вместе с fakeTx.
type snapshotter interface {
	snapshot() func()
}

// fakeTx повторяет семантику транзакции: при ошибке fn все участники откатываются.
type fakeTx struct {
	participants []snapshotter
	calls        int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	restores := make([]func(), 0, len(f.participants))
	for _, p := range f.participants {
		restores = append(restores, p.snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, r := range restores {
			r()
		}
		return err
	}
	return nil
}

type memOrderRepo struct {
	mu              sync.Mutex
	orders          map[uuid.UUID]domain.Order
	createErr       error
	createItemsErr  error
	listErr         error
	lastFilter      OrderFilter
	createCalls     int
	createItemCalls int
	clock           time.Time
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{
		orders: make(map[uuid.UUID]domain.Order),
		clock:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (m *memOrderRepo) snapshot() func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := make(map[uuid.UUID]domain.Order, len(m.orders))
	for k, v := range m.orders {
		saved[k] = v
	}
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.orders = saved
	}
}

func (m *memOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return nil, e.Persistence("memOrderRepo.Create", m.createErr)
	}
	m.clock = m.clock.Add(time.Minute)
	header := *order
	header.Items = nil
	header.CreatedAt = m.clock
	m.orders[order.ID] = header
	return &header, nil
}

func (m *memOrderRepo) CreateItems(_ context.Context, orderID uuid.UUID, items []domain.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createItemCalls++
	if m.createItemsErr != nil {
		return e.Persistence("memOrderRepo.CreateItems", m.createItemsErr)
	}
	o, ok := m.orders[orderID]
	if !ok {
		return e.Persistence("memOrderRepo.CreateItems", errors.New("foreign key violation"))
	}
	o.Items = append([]domain.OrderItem(nil), items...)
	m.orders[orderID] = o
	return nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, e.NewNotFoundError("order", id.String())
	}
	return &o, nil
}

func (m *memOrderRepo) List(_ context.Context, filter OrderFilter) ([]domain.Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter
	if m.listErr != nil {
		return nil, 0, m.listErr
	}

	all := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if filter.Offset >= len(all) {
		return []domain.Order{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[filter.Offset:end], total, nil
}

func (m *memOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return e.NewNotFoundError("order", id.String())
	}
	o.Status = status
	m.orders[id] = o
	return nil
}

func (m *memOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type memProductRepo struct {
	mu         sync.Mutex
	products   map[uuid.UUID]domain.Product
	getByIDErr error
	getCalls   int
	// beforeGetByIDs вызывается без блокировки, пока заказ ещё оформляется.
	beforeGetByIDs func()
}

func newMemProductRepo(products ...*domain.Product) *memProductRepo {
	m := &memProductRepo{products: make(map[uuid.UUID]domain.Product)}
	for _, p := range products {
		m.products[p.ID] = *p
	}
	return m
}

func (m *memProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *p
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	m.products[created.ID] = created
	return &created, nil
}

func (m *memProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[p.ID]; !ok {
		return nil, e.NewNotFoundError("product", p.ID.String())
	}
	m.products[p.ID] = *p
	updated := *p
	return &updated, nil
}

func (m *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return e.NewNotFoundError("product", id.String())
	}
	delete(m.products, id)
	return nil
}

func (m *memProductRepo) DeleteAll(_ context.Context) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(m.products))
	for id := range m.products {
		ids = append(ids, id)
	}
	m.products = make(map[uuid.UUID]domain.Product)
	return ids, nil
}

func (m *memProductRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	p, ok := m.products[id]
	if !ok {
		return nil, e.NewNotFoundError("product", id.String())
	}
	return &p, nil
}

func (m *memProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if hook := m.beforeGetByIDs; hook != nil {
		m.beforeGetByIDs = nil
		hook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProductRepo) List(_ context.Context, filter ProductFilter) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if filter.FeaturedOnly && !p.IsFeatured {
			continue
		}
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memCategoryRepo struct {
	categories map[uuid.UUID]domain.Category
}

func newMemCategoryRepo(categories ...*domain.Category) *memCategoryRepo {
	m := &memCategoryRepo{categories: make(map[uuid.UUID]domain.Category)}
	for _, c := range categories {
		m.categories[c.ID] = *c
	}
	return m
}

func (m *memCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	created := *c
	created.ID = uuid.New()
	m.categories[created.ID] = created
	return &created, nil
}

func (m *memCategoryRepo) Update(_ context.Context, c *domain.Category) (*domain.Category, error) {
	if _, ok := m.categories[c.ID]; !ok {
		return nil, e.NewNotFoundError("category", c.ID.String())
	}
	m.categories[c.ID] = *c
	return c, nil
}

func (m *memCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.categories[id]; !ok {
		return e.NewNotFoundError("category", id.String())
	}
	delete(m.categories, id)
	return nil
}

func (m *memCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, e.NewNotFoundError("category", id.String())
	}
	return &c, nil
}

func (m *memCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

type memCache struct {
	mu       sync.Mutex
	products map[uuid.UUID]domain.Product
	getErr   error
	deleted  []uuid.UUID
	set      chan struct{}
}

func newMemCache() *memCache {
	return &memCache{products: make(map[uuid.UUID]domain.Product), set: make(chan struct{}, 16)}
}

func (m *memCache) GetProducts(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := make(map[uuid.UUID]domain.Product)
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *memCache) SetProducts(_ context.Context, products []domain.Product) error {
	m.mu.Lock()
	for _, p := range products {
		m.products[p.ID] = p
	}
	m.mu.Unlock()
	m.set <- struct{}{}
	return nil
}

func (m *memCache) DeleteProducts(_ context.Context, ids []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.products, id)
	}
	m.deleted = append(m.deleted, ids...)
	return nil
}

type memCartRepo struct {
	carts   map[uuid.UUID][]domain.CartLine
	saveErr error
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[uuid.UUID][]domain.CartLine)}
}

func (m *memCartRepo) Get(_ context.Context, sessionID uuid.UUID) (*domain.Cart, error) {
	return domain.NewCart(m.carts[sessionID]...), nil
}

func (m *memCartRepo) Save(_ context.Context, sessionID uuid.UUID, cart *domain.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.carts[sessionID] = cart.Lines()
	return nil
}

func (m *memCartRepo) Delete(_ context.Context, sessionID uuid.UUID) error {
	delete(m.carts, sessionID)
	return nil
}

// memIdempotency повторяет семантику SET NX: uuid.Nil в keys означает незавершённую заявку.
type memIdempotency struct {
	mu       sync.Mutex
	keys     map[string]uuid.UUID
	claimErr error
	released int
}

func newMemIdempotency() *memIdempotency {
	return &memIdempotency{keys: make(map[string]uuid.UUID)}
}

func (m *memIdempotency) Claim(_ context.Context, key string) (bool, uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.claimErr != nil {
		return false, uuid.Nil, m.claimErr
	}
	if id, ok := m.keys[key]; ok {
		return false, id, nil
	}
	m.keys[key] = uuid.Nil
	return true, uuid.Nil, nil
}

func (m *memIdempotency) Complete(_ context.Context, key string, orderID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = orderID
	return nil
}

func (m *memIdempotency) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	m.released++
	return nil
}

func (m *memIdempotency) lookup(key string) (uuid.UUID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.keys[key]
	return id, ok
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
	err    error
}

func (r *recordingPublisher) PublishOrderEvent(_ context.Context, event *domain.OrderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *event)
	return nil
}

type memWhatsAppRepo struct {
	configs  []domain.WhatsAppConfig
	failNext bool
}

func (m *memWhatsAppRepo) snapshot() func() {
	saved := append([]domain.WhatsAppConfig(nil), m.configs...)
	return func() { m.configs = saved }
}

func (m *memWhatsAppRepo) GetActive(_ context.Context) (*domain.WhatsAppConfig, error) {
	for i := len(m.configs) - 1; i >= 0; i-- {
		if m.configs[i].IsActive {
			c := m.configs[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memWhatsAppRepo) DeactivateAll(_ context.Context) error {
	for i := range m.configs {
		m.configs[i].IsActive = false
	}
	return nil
}

func (m *memWhatsAppRepo) Create(_ context.Context, c *domain.WhatsAppConfig) (*domain.WhatsAppConfig, error) {
	if m.failNext {
		return nil, e.Persistence("memWhatsAppRepo.Create", errors.New("insert failed"))
	}
	m.configs = append(m.configs, *c)
	return c, nil
}

type memHeroVideoRepo struct {
	video *domain.HeroVideo
}

func (m *memHeroVideoRepo) Get(_ context.Context) (*domain.HeroVideo, error) {
	return m.video, nil
}

func (m *memHeroVideoRepo) Upsert(_ context.Context, videoURL string) (*domain.HeroVideo, error) {
	if m.video == nil {
		m.video = &domain.HeroVideo{ID: uuid.New()}
	}
	m.video.VideoURL = videoURL
	m.video.UpdatedAt = time.Now()
	return m.video, nil
}

func (m *memHeroVideoRepo) Delete(_ context.Context) error {
	m.video = nil
	return nil
}

type memVisitorRepo struct {
	visits map[string]domain.Visit
}

func (m *memVisitorRepo) Track(_ context.Context, v *domain.Visit) error {
	if m.visits == nil {
		m.visits = make(map[string]domain.Visit)
	}
	key := v.IPAddress + "|" + v.VisitDate.Format(time.DateOnly)
	if _, ok := m.visits[key]; !ok {
		m.visits[key] = *v
	}
	return nil
}

func (m *memVisitorRepo) Stats(_ context.Context, now time.Time) (*domain.VisitorStats, error) {
	today := now.Truncate(24 * time.Hour)
	weekAgo := today.AddDate(0, 0, -7)
	stats := &domain.VisitorStats{}
	for _, v := range m.visits {
		stats.Total++
		if !v.VisitDate.Before(today) {
			stats.Today++
		}
		if !v.VisitDate.Before(weekAgo) {
			stats.Week++
		}
	}
	return stats, nil
}

type fakeMediaInfra struct {
	req *UploadMediaReq
	err error
}

func (f *fakeMediaInfra) UploadMedia(_ context.Context, req *UploadMediaReq) (*UploadMediaRes, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	keys := make([]string, 0, len(req.Files))
	for _, file := range req.Files {
		keys = append(keys, req.Prefix+"/"+file.Name)
	}
	return NewUploadMediaRes(keys), nil
}

func (f *fakeMediaInfra) CleanupMedia([]string) {}

type fakeConversions struct {
	events []ConversionEvent
	err    error
}

func (f *fakeConversions) SendEvent(_ context.Context, event *ConversionEvent) error {
	f.events = append(f.events, *event)
	return f.err
}
