package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainpass/internal/delivery/http/middleware"
	"chainpass/internal/domain"
	"chainpass/internal/ledger"
)

// The controllers are exercised against the real ledger core with stubbed
// externals: a fixed clock, a controllable transfer, and an in-memory journal.

type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type stubTransfer struct {
	err error
}

func (s *stubTransfer) Transfer(ctx context.Context, to string, amount int64) error {
	return s.err
}

type stubJournal struct {
	mu      sync.Mutex
	err     error
	listErr error
	records []*domain.Record
}

func (j *stubJournal) Append(ctx context.Context, rec *domain.Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.records = append(j.records, rec)
	return nil
}

func (j *stubJournal) ListByEventID(ctx context.Context, eventID uint64) ([]*domain.Record, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.listErr != nil {
		return nil, j.listErr
	}
	var out []*domain.Record
	for _, r := range j.records {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

type testEnv struct {
	ledger   *ledger.Ledger
	clock    *stubClock
	transfer *stubTransfer
	journal  *stubJournal
	events   *EventController
	regs     *RegistrationController
	escrow   *EscrowController
	tickets  *TicketController
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	transfer := &stubTransfer{}
	journal := &stubJournal{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	core := ledger.New("owner-1", "https://tickets.example/meta/", clock, transfer, journal, logger)
	return &testEnv{
		ledger:   core,
		clock:    clock,
		transfer: transfer,
		journal:  journal,
		events:   NewEventController(logger, core, journal),
		regs:     NewRegistrationController(logger, core, core, core, nil),
		escrow:   NewEscrowController(logger, core),
		tickets:  NewTicketController(logger, core, core),
	}
}

// doJSON invokes a handler with an authenticated caller, optional JSON body,
// and path values.
func doJSON(t *testing.T, handler http.HandlerFunc, method, caller string, body any, pathValues map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, "/", reader)
	if caller != "" {
		req = req.WithContext(middleware.SetCallerID(req.Context(), caller))
	}
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (json.RawMessage, *struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}) {
	t.Helper()
	var env struct {
		Data  json.RawMessage `json:"data"`
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Data, env.Error
}

func (e *testEnv) createEvent(t *testing.T, caller string, fee int64, max int) uint64 {
	t.Helper()
	rec := doJSON(t, e.events.CreateEvent, http.MethodPost, caller, CreateEventRequest{
		Name:            "Conf",
		Fee:             fee,
		MaxParticipants: max,
		Deadline:        e.clock.Now().Add(24 * time.Hour),
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var resp CreateEventResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp.EventID
}

func (e *testEnv) openRegistration(t *testing.T, caller string, id uint64) {
	t.Helper()
	rec := doJSON(t, e.events.OpenRegistration, http.MethodPost, caller, nil, map[string]string{"eventID": fmt.Sprint(id)})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			caller:     "org-1",
			body:       CreateEventRequest{Name: "Conf", Fee: 100, MaxParticipants: 10, Deadline: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unauthenticated",
			body:       CreateEventRequest{Name: "Conf", Fee: 100, MaxParticipants: 10, Deadline: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:       "missing name",
			caller:     "org-1",
			body:       CreateEventRequest{Fee: 100, MaxParticipants: 10, Deadline: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "unknown field",
			caller:     "org-1",
			body:       map[string]any{"name": "Conf", "fee": 1, "max_participants": 1, "deadline": "2025-07-01T00:00:00Z", "surprise": true},
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "zero max participants",
			caller:     "org-1",
			body:       CreateEventRequest{Name: "Conf", Fee: 100, MaxParticipants: 0, Deadline: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_max_participants",
		},
		{
			name:       "past deadline",
			caller:     "org-1",
			body:       CreateEventRequest{Name: "Conf", Fee: 100, MaxParticipants: 10, Deadline: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			wantStatus: http.StatusBadRequest,
			wantCode:   "deadline_must_be_future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := doJSON(t, env.events.CreateEvent, http.MethodPost, tt.caller, tt.body, nil)
			require.Equal(t, tt.wantStatus, rec.Code)
			data, apiErr := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			var resp CreateEventResponse
			require.NoError(t, json.Unmarshal(data, &resp))
			assert.Equal(t, uint64(1), resp.EventID)
		})
	}
}

func TestEventController_GetEvent(t *testing.T) {
	env := newTestEnv(t)
	id := env.createEvent(t, "org-1", 100, 10)

	rec := doJSON(t, env.events.GetEvent, http.MethodGet, "", nil, map[string]string{"eventID": fmt.Sprint(id)})
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var ev domain.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, "org-1", ev.Organizer)
	assert.False(t, ev.IsOpen)

	rec = doJSON(t, env.events.GetEvent, http.MethodGet, "", nil, map[string]string{"eventID": "99"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	_, apiErr := decodeEnvelope(t, rec)
	require.NotNil(t, apiErr)
	assert.Equal(t, "event_does_not_exist", apiErr.Code)

	rec = doJSON(t, env.events.GetEvent, http.MethodGet, "", nil, map[string]string{"eventID": "abc"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, env.events.GetEvent, http.MethodGet, "", nil, map[string]string{"eventID": "0"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventController_Toggles(t *testing.T) {
	env := newTestEnv(t)
	id := env.createEvent(t, "org-1", 100, 10)
	path := map[string]string{"eventID": fmt.Sprint(id)}

	rec := doJSON(t, env.events.OpenRegistration, http.MethodPost, "someone-else", nil, path)
	require.Equal(t, http.StatusForbidden, rec.Code)
	_, apiErr := decodeEnvelope(t, rec)
	assert.Equal(t, "only_organizer", apiErr.Code)

	rec = doJSON(t, env.events.OpenRegistration, http.MethodPost, "org-1", nil, path)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var ev domain.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.True(t, ev.IsOpen)

	rec = doJSON(t, env.events.OpenRegistration, http.MethodPost, "org-1", nil, path)
	require.Equal(t, http.StatusConflict, rec.Code)
	_, apiErr = decodeEnvelope(t, rec)
	assert.Equal(t, "registration_already_open", apiErr.Code)

	// pause is an alias of close
	rec = doJSON(t, env.events.PauseRegistration, http.MethodPost, "org-1", nil, path)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, env.events.CloseRegistration, http.MethodPost, "org-1", nil, path)
	require.Equal(t, http.StatusConflict, rec.Code)
	_, apiErr = decodeEnvelope(t, rec)
	assert.Equal(t, "registration_already_closed", apiErr.Code)

	rec = doJSON(t, env.events.ReopenRegistration, http.MethodPost, "org-1", nil, path)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEventController_EventCounter(t *testing.T) {
	env := newTestEnv(t)
	rec := doJSON(t, env.events.EventCounter, http.MethodGet, "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var resp EventCounterResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, uint64(0), resp.EventCounter)

	env.createEvent(t, "org-1", 100, 10)
	env.createEvent(t, "org-1", 100, 10)

	rec = doJSON(t, env.events.EventCounter, http.MethodGet, "", nil, nil)
	data, _ = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, uint64(2), resp.EventCounter)
}

func TestEventController_ListRecords(t *testing.T) {
	env := newTestEnv(t)
	id := env.createEvent(t, "org-1", 100, 10)
	env.openRegistration(t, "org-1", id)
	path := map[string]string{"eventID": fmt.Sprint(id)}

	rec := doJSON(t, env.events.ListRecords, http.MethodGet, "", nil, path)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var records []*domain.Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, domain.RecordEventCreated, records[0].Type)
	assert.Equal(t, domain.RecordRegistrationToggled, records[1].Type)

	rec = doJSON(t, env.events.ListRecords, http.MethodGet, "", nil, map[string]string{"eventID": "42"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	env.journal.listErr = errors.New("db down")
	rec = doJSON(t, env.events.ListRecords, http.MethodGet, "", nil, path)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRegistrationController_Register(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, env *testEnv, id uint64)
		caller     string
		body       RegisterRequest
		wantStatus int
		wantCode   string
	}{
		{name: "success", caller: "user-a", body: RegisterRequest{PaidAmount: 100}, wantStatus: http.StatusCreated},
		{name: "unauthenticated", body: RegisterRequest{PaidAmount: 100}, wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "wrong fee", caller: "user-a", body: RegisterRequest{PaidAmount: 42}, wantStatus: http.StatusBadRequest, wantCode: "incorrect_fee"},
		{
			name: "closed",
			setup: func(t *testing.T, env *testEnv, id uint64) {
				rec := doJSON(t, env.events.CloseRegistration, http.MethodPost, "org-1", nil, map[string]string{"eventID": fmt.Sprint(id)})
				require.Equal(t, http.StatusOK, rec.Code)
			},
			caller:     "user-a",
			body:       RegisterRequest{PaidAmount: 100},
			wantStatus: http.StatusConflict,
			wantCode:   "registration_closed",
		},
		{
			name: "deadline passed",
			setup: func(t *testing.T, env *testEnv, id uint64) {
				env.clock.Advance(48 * time.Hour)
			},
			caller:     "user-a",
			body:       RegisterRequest{PaidAmount: 100},
			wantStatus: http.StatusConflict,
			wantCode:   "registration_ended",
		},
		{
			name: "duplicate",
			setup: func(t *testing.T, env *testEnv, id uint64) {
				rec := doJSON(t, env.regs.Register, http.MethodPost, "user-a", RegisterRequest{PaidAmount: 100}, map[string]string{"eventID": fmt.Sprint(id)})
				require.Equal(t, http.StatusCreated, rec.Code)
			},
			caller:     "user-a",
			body:       RegisterRequest{PaidAmount: 100},
			wantStatus: http.StatusConflict,
			wantCode:   "already_registered",
		},
		{
			name: "full",
			setup: func(t *testing.T, env *testEnv, id uint64) {
				for _, u := range []string{"user-b", "user-c"} {
					rec := doJSON(t, env.regs.Register, http.MethodPost, u, RegisterRequest{PaidAmount: 100}, map[string]string{"eventID": fmt.Sprint(id)})
					require.Equal(t, http.StatusCreated, rec.Code)
				}
			},
			caller:     "user-a",
			body:       RegisterRequest{PaidAmount: 100},
			wantStatus: http.StatusConflict,
			wantCode:   "event_full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			id := env.createEvent(t, "org-1", 100, 2)
			env.openRegistration(t, "org-1", id)
			if tt.setup != nil {
				tt.setup(t, env, id)
			}

			rec := doJSON(t, env.regs.Register, http.MethodPost, tt.caller, tt.body, map[string]string{"eventID": fmt.Sprint(id)})
			require.Equal(t, tt.wantStatus, rec.Code)
			data, apiErr := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			var resp RegisterResponse
			require.NoError(t, json.Unmarshal(data, &resp))
			assert.Equal(t, id, resp.TicketID)
			assert.Equal(t, fmt.Sprintf("https://tickets.example/meta/%d.json", id), resp.TicketURI)
		})
	}
}

func TestRegistrationController_Cancel(t *testing.T) {
	env := newTestEnv(t)
	id := env.createEvent(t, "org-1", 100, 2)
	env.openRegistration(t, "org-1", id)
	path := map[string]string{"eventID": fmt.Sprint(id)}

	rec := doJSON(t, env.regs.Register, http.MethodPost, "user-a", RegisterRequest{PaidAmount: 100}, path)
	require.Equal(t, http.StatusCreated, rec.Code)

	// refund transfer fails: 502, registration intact
	env.transfer.err = errors.New("gateway down")
	rec = doJSON(t, env.regs.Cancel, http.MethodDelete, "user-a", nil, path)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	_, apiErr := decodeEnvelope(t, rec)
	assert.Equal(t, "refund_failed", apiErr.Code)

	env.transfer.err = nil
	rec = doJSON(t, env.regs.Cancel, http.MethodDelete, "user-a", nil, path)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var resp CancelResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, int64(100), resp.RefundAmount)

	rec = doJSON(t, env.regs.Cancel, http.MethodDelete, "user-a", nil, path)
	require.Equal(t, http.StatusConflict, rec.Code)
	_, apiErr = decodeEnvelope(t, rec)
	assert.Equal(t, "not_registered", apiErr.Code)
}

func TestRegistrationController_ParticipantReads(t *testing.T) {
	env := newTestEnv(t)
	id := env.createEvent(t, "org-1", 100, 5)
	env.openRegistration(t, "org-1", id)
	path := map[string]string{"eventID": fmt.Sprint(id)}

	for _, u := range []string{"user-a", "user-b"} {
		rec := doJSON(t, env.regs.Register, http.MethodPost, u, RegisterRequest{PaidAmount: 100}, path)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, env.regs.ListParticipants, http.MethodGet, "", nil, path)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var participants []string
	require.NoError(t, json.Unmarshal(data, &participants))
	assert.Equal(t, []string{"user-a", "user-b"}, participants)

	rec = doJSON(t, env.regs.IsRegistered, http.MethodGet, "", nil, map[string]string{"eventID": fmt.Sprint(id), "identity": "user-a"})
	data, _ = decodeEnvelope(t, rec)
	var reg IsRegisteredResponse
	require.NoError(t, json.Unmarshal(data, &reg))
	assert.True(t, reg.Registered)

	rec = doJSON(t, env.regs.IsRegistered, http.MethodGet, "", nil, map[string]string{"eventID": fmt.Sprint(id), "identity": "stranger"})
	data, _ = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(data, &reg))
	assert.False(t, reg.Registered)

	// unknown event reads as empty, not an error
	rec = doJSON(t, env.regs.ListParticipants, http.MethodGet, "", nil, map[string]string{"eventID": "42"})
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(data, &participants))
	assert.Empty(t, participants)
}

func TestEscrowController_Withdraw(t *testing.T) {
	env := newTestEnv(t)
	id := env.createEvent(t, "org-1", 100, 2)
	env.openRegistration(t, "org-1", id)
	path := map[string]string{"eventID": fmt.Sprint(id)}

	for _, u := range []string{"user-a", "user-b"} {
		rec := doJSON(t, env.regs.Register, http.MethodPost, u, RegisterRequest{PaidAmount: 100}, path)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, env.escrow.Withdraw, http.MethodPost, "org-1", nil, path)
	require.Equal(t, http.StatusConflict, rec.Code)
	_, apiErr := decodeEnvelope(t, rec)
	assert.Equal(t, "event_not_ended", apiErr.Code)

	env.clock.Advance(48 * time.Hour)

	rec = doJSON(t, env.escrow.Withdraw, http.MethodPost, "user-a", nil, path)
	require.Equal(t, http.StatusForbidden, rec.Code)
	_, apiErr = decodeEnvelope(t, rec)
	assert.Equal(t, "only_organizer", apiErr.Code)

	rec = doJSON(t, env.escrow.Withdraw, http.MethodPost, "org-1", nil, path)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var resp WithdrawResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, int64(200), resp.Amount)

	rec = doJSON(t, env.escrow.Withdraw, http.MethodPost, "org-1", nil, path)
	require.Equal(t, http.StatusConflict, rec.Code)
	_, apiErr = decodeEnvelope(t, rec)
	assert.Equal(t, "funds_already_withdrawn", apiErr.Code)
}

func TestTicketController(t *testing.T) {
	env := newTestEnv(t)
	id := env.createEvent(t, "org-1", 100, 2)
	env.openRegistration(t, "org-1", id)

	rec := doJSON(t, env.regs.Register, http.MethodPost, "user-a", RegisterRequest{PaidAmount: 100}, map[string]string{"eventID": fmt.Sprint(id)})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, env.tickets.URI, http.MethodGet, "", nil, map[string]string{"ticketID": fmt.Sprint(id)})
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var uriResp URIResponse
	require.NoError(t, json.Unmarshal(data, &uriResp))
	assert.Equal(t, fmt.Sprintf("https://tickets.example/meta/%d.json", id), uriResp.URI)

	rec = doJSON(t, env.tickets.Balance, http.MethodGet, "", nil, map[string]string{"ticketID": fmt.Sprint(id), "identity": "user-a"})
	data, _ = decodeEnvelope(t, rec)
	var balResp BalanceResponse
	require.NoError(t, json.Unmarshal(data, &balResp))
	assert.Equal(t, 1, balResp.Balance)

	rec = doJSON(t, env.tickets.Balance, http.MethodGet, "", nil, map[string]string{"ticketID": fmt.Sprint(id), "identity": "user-b"})
	data, _ = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(data, &balResp))
	assert.Equal(t, 0, balResp.Balance)

	rec = doJSON(t, env.tickets.Owner, http.MethodGet, "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ = decodeEnvelope(t, rec)
	var ownerResp OwnerResponse
	require.NoError(t, json.Unmarshal(data, &ownerResp))
	assert.Equal(t, "owner-1", ownerResp.Owner)

	// setURI is owner-only
	rec = doJSON(t, env.tickets.SetURI, http.MethodPut, "org-1", SetURIRequest{BaseURI: "ipfs://bafy/"}, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	_, apiErr := decodeEnvelope(t, rec)
	assert.Equal(t, "only_owner", apiErr.Code)

	rec = doJSON(t, env.tickets.SetURI, http.MethodPut, "owner-1", SetURIRequest{BaseURI: "ipfs://bafy/"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, env.tickets.URI, http.MethodGet, "", nil, map[string]string{"ticketID": fmt.Sprint(id)})
	data, _ = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(data, &uriResp))
	assert.Equal(t, fmt.Sprintf("ipfs://bafy/%d.json", id), uriResp.URI)
}

type fakeIssuer struct {
	err error
}

func (f *fakeIssuer) Issue(subject string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + subject, nil
}

func TestAuthController_Token(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		issuer     *fakeIssuer
		body       any
		wantStatus int
	}{
		{name: "success", issuer: &fakeIssuer{}, body: TokenRequest{Subject: "user-a"}, wantStatus: http.StatusCreated},
		{name: "missing subject", issuer: &fakeIssuer{}, body: TokenRequest{}, wantStatus: http.StatusBadRequest},
		{name: "issuer error", issuer: &fakeIssuer{err: errors.New("boom")}, body: TokenRequest{Subject: "user-a"}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(logger, tt.issuer)
			rec := doJSON(t, ctrl.Token, http.MethodPost, "", tt.body, nil)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				data, _ := decodeEnvelope(t, rec)
				var resp TokenResponse
				require.NoError(t, json.Unmarshal(data, &resp))
				assert.Equal(t, "token-for-user-a", resp.Token)
			}
		})
	}
}
