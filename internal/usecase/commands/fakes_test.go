//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/infra/wallet"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"
)

// fakeStore is an in-memory stand-in for the database. fakeUoW snapshots it
// before each Within call and restores the snapshot when the callback
// errors, matching transactional rollback.
type fakeStore struct {
	prizes   map[int64]*shared.PrizeSnapshot
	pool     map[int64]*shared.PoolEntrySnapshot
	credHash string
	nextID   int64

	// denyDecrements makes the first n DecrementQuantity calls report a
	// lost race regardless of stock.
	denyDecrements      int
	decrementCalls      int
	failAssignRandom    bool
	failMarkTransferred bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		prizes: map[int64]*shared.PrizeSnapshot{},
		pool:   map[int64]*shared.PoolEntrySnapshot{},
		nextID: 1,
	}
}

func (s *fakeStore) addPrize(snap shared.PrizeSnapshot) *shared.PrizeSnapshot {
	if snap.ID == 0 {
		snap.ID = s.nextID
		s.nextID++
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		snap.UpdatedAt = snap.CreatedAt
	}
	copied := snap
	s.prizes[snap.ID] = &copied
	return &copied
}

func (s *fakeStore) addPoolEntry(id, amountKoinu int64, quantity int32) {
	s.pool[id] = &shared.PoolEntrySnapshot{
		ID:          id,
		AmountKoinu: amountKoinu,
		Quantity:    quantity,
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.nextID = s.nextID
	c.credHash = s.credHash
	c.denyDecrements = s.denyDecrements
	c.decrementCalls = s.decrementCalls
	c.failAssignRandom = s.failAssignRandom
	c.failMarkTransferred = s.failMarkTransferred
	for id, p := range s.prizes {
		copied := *p
		c.prizes[id] = &copied
	}
	for id, e := range s.pool {
		copied := *e
		c.pool[id] = &copied
	}
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.prizes = from.prizes
	s.pool = from.pool
	s.credHash = from.credHash
	s.nextID = from.nextID
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	backup := u.store.clone()
	err := fn(ctx, &fakeTx{store: u.store})
	if err != nil {
		u.store.restore(backup)
		return err
	}
	return nil
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Prizes() shared.PrizeRepository          { return &fakePrizeRepo{store: t.store} }
func (t *fakeTx) Pool() shared.PoolRepository             { return &fakePoolRepo{store: t.store} }
func (t *fakeTx) Credentials() shared.CredentialRepository { return &fakeCredRepo{store: t.store} }

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

func conflictErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows affected"), infra.KindConflict)
}

type fakePrizeRepo struct {
	store *fakeStore
}

func (r *fakePrizeRepo) FindByCodeForUpdate(_ context.Context, code string) (*shared.PrizeSnapshot, error) {
	for _, p := range r.store.prizes {
		if p.RedemptionCode == code {
			copied := *p
			return &copied, nil
		}
	}
	return nil, notFoundErr("prize not found")
}

func (r *fakePrizeRepo) FindByID(_ context.Context, id int64) (*shared.PrizeSnapshot, error) {
	p, ok := r.store.prizes[id]
	if !ok {
		return nil, notFoundErr("prize not found")
	}
	copied := *p
	return &copied, nil
}

func (r *fakePrizeRepo) Create(_ context.Context, code, typ string, amountKoinu int64) (*shared.PrizeSnapshot, error) {
	for _, p := range r.store.prizes {
		if p.RedemptionCode == code {
			return nil, infra.WrapRepoErr("duplicate code", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	snap := r.store.addPrize(shared.PrizeSnapshot{
		RedemptionCode: code,
		Type:           typ,
		AmountKoinu:    amountKoinu,
		Status:         "Available",
	})
	copied := *snap
	return &copied, nil
}

func (r *fakePrizeRepo) CreateBatch(ctx context.Context, prizes []shared.PrizeSnapshot) (int64, error) {
	for _, p := range prizes {
		if _, err := r.Create(ctx, p.RedemptionCode, p.Type, p.AmountKoinu); err != nil {
			return 0, err
		}
	}
	return int64(len(prizes)), nil
}

func (r *fakePrizeRepo) FindExistingCodes(_ context.Context, codes []string) ([]string, error) {
	var existing []string
	for _, code := range codes {
		for _, p := range r.store.prizes {
			if p.RedemptionCode == code {
				existing = append(existing, code)
			}
		}
	}
	return existing, nil
}

func (r *fakePrizeRepo) MarkRedeemed(_ context.Context, id int64) error {
	p, ok := r.store.prizes[id]
	if !ok {
		return notFoundErr("prize not found")
	}
	if p.Status != "Available" {
		return conflictErr("prize is not available")
	}
	p.Status = "Redeemed"
	return nil
}

func (r *fakePrizeRepo) AssignRandom(_ context.Context, id, amountKoinu int64) error {
	if r.store.failAssignRandom {
		return infra.WrapRepoErr("connection lost", errors.New("broken pipe"))
	}
	p, ok := r.store.prizes[id]
	if !ok {
		return notFoundErr("prize not found")
	}
	if p.Status != "Available" {
		return conflictErr("prize is not available")
	}
	p.Type = "Assigned"
	p.AmountKoinu = amountKoinu
	p.Status = "Redeemed"
	return nil
}

func (r *fakePrizeRepo) MarkTransferred(_ context.Context, id int64) error {
	if r.store.failMarkTransferred {
		return infra.WrapRepoErr("connection lost", errors.New("broken pipe"))
	}
	p, ok := r.store.prizes[id]
	if !ok {
		return notFoundErr("prize not found")
	}
	if p.Status != "Redeemed" {
		return conflictErr("prize is not redeemed")
	}
	p.Status = "Transferred"
	return nil
}

func (r *fakePrizeRepo) Update(_ context.Context, id int64, code, typ string, amountKoinu int64, status string) (*shared.PrizeSnapshot, error) {
	p, ok := r.store.prizes[id]
	if !ok {
		return nil, notFoundErr("prize not found")
	}
	for otherID, other := range r.store.prizes {
		if otherID != id && other.RedemptionCode == code {
			return nil, infra.WrapRepoErr("duplicate code", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	p.RedemptionCode = code
	p.Type = typ
	p.AmountKoinu = amountKoinu
	p.Status = status
	copied := *p
	return &copied, nil
}

func (r *fakePrizeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.prizes[id]; !ok {
		return notFoundErr("prize not found")
	}
	delete(r.store.prizes, id)
	return nil
}

type fakePoolRepo struct {
	store *fakeStore
}

func (r *fakePoolRepo) AvailableEntries(_ context.Context) ([]shared.PoolEntrySnapshot, error) {
	var entries []shared.PoolEntrySnapshot
	for _, e := range r.store.pool {
		if e.Quantity > 0 {
			entries = append(entries, *e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].AmountKoinu < entries[j].AmountKoinu })
	return entries, nil
}

func (r *fakePoolRepo) DecrementQuantity(_ context.Context, id int64) (bool, error) {
	r.store.decrementCalls++
	if r.store.denyDecrements > 0 {
		r.store.denyDecrements--
		return false, nil
	}
	e, ok := r.store.pool[id]
	if !ok || e.Quantity <= 0 {
		return false, nil
	}
	e.Quantity--
	return true, nil
}

func (r *fakePoolRepo) UpsertByAmount(_ context.Context, amountKoinu int64, quantity int32) (*shared.PoolEntrySnapshot, error) {
	for _, e := range r.store.pool {
		if e.AmountKoinu == amountKoinu {
			e.Quantity += quantity
			copied := *e
			return &copied, nil
		}
	}
	id := r.store.nextID
	r.store.nextID++
	r.store.addPoolEntry(id, amountKoinu, quantity)
	copied := *r.store.pool[id]
	return &copied, nil
}

func (r *fakePoolRepo) Update(_ context.Context, id, amountKoinu int64, quantity int32) (*shared.PoolEntrySnapshot, error) {
	e, ok := r.store.pool[id]
	if !ok {
		return nil, notFoundErr("pool entry not found")
	}
	e.AmountKoinu = amountKoinu
	e.Quantity = quantity
	copied := *e
	return &copied, nil
}

func (r *fakePoolRepo) FindByID(_ context.Context, id int64) (*shared.PoolEntrySnapshot, error) {
	e, ok := r.store.pool[id]
	if !ok {
		return nil, notFoundErr("pool entry not found")
	}
	copied := *e
	return &copied, nil
}

func (r *fakePoolRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.pool[id]; !ok {
		return notFoundErr("pool entry not found")
	}
	delete(r.store.pool, id)
	return nil
}

type fakeCredRepo struct {
	store *fakeStore
}

func (r *fakeCredRepo) PasswordHash(_ context.Context) (string, error) {
	if r.store.credHash == "" {
		return "", notFoundErr("password not set")
	}
	return r.store.credHash, nil
}

func (r *fakeCredRepo) SetPasswordHash(_ context.Context, hash string) error {
	r.store.credHash = hash
	return nil
}

type recordedAppend struct {
	Action     audit.Action
	EntityType audit.EntityType
	EntityID   int64
	Details    string
}

type fakeAuditSink struct {
	appends []recordedAppend
}

func (s *fakeAuditSink) Append(_ context.Context, action audit.Action, entityType audit.EntityType, entityID int64, details string) {
	s.appends = append(s.appends, recordedAppend{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
}

type fakeWalletSender struct {
	sends []struct {
		Address string
		Amount  float64
	}
	txID string
	err  error
}

func (w *fakeWalletSender) Send(_ context.Context, address string, amountDoge float64) (*wallet.TransactionResult, error) {
	w.sends = append(w.sends, struct {
		Address string
		Amount  float64
	}{Address: address, Amount: amountDoge})
	if w.err != nil {
		return nil, w.err
	}
	return &wallet.TransactionResult{TxID: w.txID}, nil
}
