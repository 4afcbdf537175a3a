package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"nexpo/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeExpoRepo struct {
	expos  map[string]*domain.Expo
	nextID int
}

func newFakeExpoRepo(expos ...*domain.Expo) *fakeExpoRepo {
	m := make(map[string]*domain.Expo)
	for _, e := range expos {
		m[e.ID] = e
	}
	return &fakeExpoRepo{expos: m}
}

func (f *fakeExpoRepo) Create(ctx context.Context, expo *domain.Expo) error {
	if expo.ID == "" {
		f.nextID++
		expo.ID = fmt.Sprintf("expo-%d", f.nextID)
	}
	f.expos[expo.ID] = expo
	return nil
}

func (f *fakeExpoRepo) GetByID(ctx context.Context, id string) (*domain.Expo, error) {
	if e, ok := f.expos[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeExpoRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Expo, error) {
	var out []*domain.Expo
	for _, e := range f.expos {
		if includeInactive || e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpoRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Expo, error) {
	var out []*domain.Expo
	for _, e := range f.expos {
		if !e.StartDate.Before(from) && !e.StartDate.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpoRepo) Update(ctx context.Context, expo *domain.Expo) error {
	if _, ok := f.expos[expo.ID]; !ok {
		return domain.ErrNotFound
	}
	f.expos[expo.ID] = expo
	return nil
}

func (f *fakeExpoRepo) Delete(ctx context.Context, id string) error {
	delete(f.expos, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
	nextID   int
}

func newFakeSessionRepo(sessions ...*domain.Session) *fakeSessionRepo {
	m := make(map[string]*domain.Session)
	for _, s := range sessions {
		m[s.ID] = s
	}
	return &fakeSessionRepo{sessions: m}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	if session.ID == "" {
		f.nextID++
		session.ID = fmt.Sprintf("sess-%d", f.nextID)
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.sessions {
		if includeInactive || s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByExpoID(ctx context.Context, expoID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.sessions {
		if s.ExpoID == expoID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByDate(ctx context.Context, date string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.sessions {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, session *domain.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.sessions, id)
	return nil
}

type fakeExpoRegRepo struct {
	mu     sync.Mutex
	regs   map[string]*domain.ExpoRegistration
	nextID int
}

func newFakeExpoRegRepo() *fakeExpoRegRepo {
	return &fakeExpoRegRepo{regs: make(map[string]*domain.ExpoRegistration)}
}

func (f *fakeExpoRegRepo) Create(ctx context.Context, reg *domain.ExpoRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	reg.ID = fmt.Sprintf("ereg-%d", f.nextID)
	f.regs[reg.ID] = reg
	return nil
}

func (f *fakeExpoRegRepo) GetByID(ctx context.Context, id string) (*domain.ExpoRegistration, error) {
	if r, ok := f.regs[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeExpoRegRepo) GetByExpoAndAttendee(ctx context.Context, expoID, attendeeID string) (*domain.ExpoRegistration, error) {
	for _, r := range f.regs {
		if r.ExpoID == expoID && r.AttendeeID == attendeeID {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeExpoRegRepo) ListByExpo(ctx context.Context, expoID string) ([]*domain.ExpoRegistration, error) {
	var out []*domain.ExpoRegistration
	for _, r := range f.regs {
		if r.ExpoID == expoID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeExpoRegRepo) ListByExpoAndStatus(ctx context.Context, expoID, status string) ([]*domain.ExpoRegistration, error) {
	var out []*domain.ExpoRegistration
	for _, r := range f.regs {
		if r.ExpoID == expoID && r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeExpoRegRepo) ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.ExpoRegistration, error) {
	var out []*domain.ExpoRegistration
	for _, r := range f.regs {
		if r.AttendeeID == attendeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeExpoRegRepo) Update(ctx context.Context, reg *domain.ExpoRegistration) error {
	if _, ok := f.regs[reg.ID]; !ok {
		return domain.ErrNotFound
	}
	f.regs[reg.ID] = reg
	return nil
}

type fakeSessionRegRepo struct {
	mu     sync.Mutex
	regs   map[string]*domain.SessionRegistration
	nextID int
}

func newFakeSessionRegRepo() *fakeSessionRegRepo {
	return &fakeSessionRegRepo{regs: make(map[string]*domain.SessionRegistration)}
}

func (f *fakeSessionRegRepo) Create(ctx context.Context, reg *domain.SessionRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	reg.ID = fmt.Sprintf("sreg-%d", f.nextID)
	f.regs[reg.ID] = reg
	return nil
}

func (f *fakeSessionRegRepo) GetByID(ctx context.Context, id string) (*domain.SessionRegistration, error) {
	if r, ok := f.regs[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRegRepo) GetBySessionAndAttendee(ctx context.Context, sessionID, attendeeID string) (*domain.SessionRegistration, error) {
	for _, r := range f.regs {
		if r.SessionID == sessionID && r.AttendeeID == attendeeID {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRegRepo) CountBySessionAndStatus(ctx context.Context, sessionID, status string) (int, error) {
	count := 0
	for _, r := range f.regs {
		if r.SessionID == sessionID && r.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeSessionRegRepo) ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.SessionRegistration, error) {
	var out []*domain.SessionRegistration
	for _, r := range f.regs {
		if r.AttendeeID == attendeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSessionRegRepo) Update(ctx context.Context, reg *domain.SessionRegistration) error {
	if _, ok := f.regs[reg.ID]; !ok {
		return domain.ErrNotFound
	}
	f.regs[reg.ID] = reg
	return nil
}

func (f *fakeSessionRegRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.regs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.regs, id)
	return nil
}

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	m := make(map[string]*domain.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	f.nextID++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.users {
		if u.Role == role && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

// fakePassGenerator renders stub passes with the real file naming scheme.
type fakePassGenerator struct {
	failExpo    bool
	failSession bool
}

func (f *fakePassGenerator) ExpoPass(ctx context.Context, expo *domain.Expo, attendeeName, attendeeEmail, serial string) (*domain.Pass, error) {
	if f.failExpo {
		return nil, fmt.Errorf("render failed")
	}
	return &domain.Pass{
		Content:  []byte("pdf"),
		FileName: "TICKET-" + serial + ".pdf",
		MIMEType: "application/pdf",
	}, nil
}

func (f *fakePassGenerator) SessionPass(ctx context.Context, session *domain.Session, attendeeName, attendeeEmail, serial string) (*domain.Pass, error) {
	if f.failSession {
		return nil, fmt.Errorf("render failed")
	}
	return &domain.Pass{
		Content:  []byte("pdf"),
		FileName: "SESSION-TICKET-" + serial + ".pdf",
		MIMEType: "application/pdf",
	}, nil
}

func (f *fakePassGenerator) BoothPass(ctx context.Context, booth *domain.Booth, exhibitor *domain.User, expo *domain.Expo) (*domain.Pass, error) {
	return &domain.Pass{
		Content:  []byte("pdf"),
		FileName: "EXHIBITOR-PASS-" + booth.Name + ".pdf",
		MIMEType: "application/pdf",
	}, nil
}

type sentEmail struct {
	kind string
	to   string
	pass *domain.Pass
}

// fakeEmailService records every dispatch. failFor rejects sends to one
// address so per-recipient isolation can be exercised.
type fakeEmailService struct {
	mu      sync.Mutex
	sent    []sentEmail
	failFor string
}

func (f *fakeEmailService) record(kind, to string, pass *domain.Pass) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor != "" && to == f.failFor {
		return fmt.Errorf("send rejected for %s", to)
	}
	f.sent = append(f.sent, sentEmail{kind: kind, to: to, pass: pass})
	return nil
}

func (f *fakeEmailService) byKind(kind string) []sentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sentEmail
	for _, e := range f.sent {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeEmailService) SendExpoPass(ctx context.Context, data *domain.PassEmailData, pass *domain.Pass) error {
	return f.record("expo_pass", data.Email, pass)
}

func (f *fakeEmailService) SendSessionPass(ctx context.Context, data *domain.PassEmailData, pass *domain.Pass) error {
	return f.record("session_pass", data.Email, pass)
}

func (f *fakeEmailService) SendBoothConfirmation(ctx context.Context, data *domain.BoothConfirmationEmailData, pass *domain.Pass) error {
	return f.record("booth_confirmation", data.Email, pass)
}

func (f *fakeEmailService) SendRegistrationCancelled(ctx context.Context, data *domain.CancellationEmailData) error {
	return f.record("registration_cancelled", data.Email, nil)
}

func (f *fakeEmailService) SendExhibitorReminder(ctx context.Context, data *domain.ReminderEmailData) error {
	return f.record("exhibitor_reminder", data.Email, nil)
}

func (f *fakeEmailService) SendAttendeeReminder(ctx context.Context, data *domain.ReminderEmailData) error {
	return f.record("attendee_reminder", data.Email, nil)
}

func (f *fakeEmailService) SendBookmarkReminder(ctx context.Context, data *domain.ReminderEmailData) error {
	return f.record("bookmark_reminder", data.Email, nil)
}

func (f *fakeEmailService) SendMessageNotification(ctx context.Context, data *domain.MessageEmailData) error {
	return f.record("message_notification", data.Email, nil)
}

type fakeBoothRepo struct {
	booths map[string]*domain.Booth
	nextID int
}

func newFakeBoothRepo(booths ...*domain.Booth) *fakeBoothRepo {
	m := make(map[string]*domain.Booth)
	for _, b := range booths {
		m[b.ID] = b
	}
	return &fakeBoothRepo{booths: m}
}

func (f *fakeBoothRepo) Create(ctx context.Context, booth *domain.Booth) error {
	if booth.ID == "" {
		f.nextID++
		booth.ID = fmt.Sprintf("booth-%d", f.nextID)
	}
	f.booths[booth.ID] = booth
	return nil
}

func (f *fakeBoothRepo) GetByID(ctx context.Context, id string) (*domain.Booth, error) {
	if b, ok := f.booths[id]; ok {
		return b, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBoothRepo) ListByExpo(ctx context.Context, expoID string) ([]*domain.Booth, error) {
	var out []*domain.Booth
	for _, b := range f.booths {
		if b.ExpoID == expoID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBoothRepo) ListBookedByExpo(ctx context.Context, expoID string) ([]*domain.Booth, error) {
	var out []*domain.Booth
	for _, b := range f.booths {
		if b.ExpoID == expoID && b.IsBooked {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBoothRepo) Update(ctx context.Context, booth *domain.Booth) error {
	if _, ok := f.booths[booth.ID]; !ok {
		return domain.ErrNotFound
	}
	f.booths[booth.ID] = booth
	return nil
}

func (f *fakeBoothRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.booths[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.booths, id)
	return nil
}

type fakeExpoBookmarkRepo struct {
	bookmarks map[string]*domain.ExpoBookmark
	nextID    int
}

func newFakeExpoBookmarkRepo() *fakeExpoBookmarkRepo {
	return &fakeExpoBookmarkRepo{bookmarks: make(map[string]*domain.ExpoBookmark)}
}

func (f *fakeExpoBookmarkRepo) Create(ctx context.Context, bm *domain.ExpoBookmark) error {
	for _, b := range f.bookmarks {
		if b.ExpoID == bm.ExpoID && b.AttendeeID == bm.AttendeeID {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	bm.ID = fmt.Sprintf("ebm-%d", f.nextID)
	f.bookmarks[bm.ID] = bm
	return nil
}

func (f *fakeExpoBookmarkRepo) GetByExpoAndAttendee(ctx context.Context, expoID, attendeeID string) (*domain.ExpoBookmark, error) {
	for _, b := range f.bookmarks {
		if b.ExpoID == expoID && b.AttendeeID == attendeeID {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeExpoBookmarkRepo) ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.ExpoBookmark, error) {
	var out []*domain.ExpoBookmark
	for _, b := range f.bookmarks {
		if b.AttendeeID == attendeeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeExpoBookmarkRepo) ListByExpo(ctx context.Context, expoID string) ([]*domain.ExpoBookmark, error) {
	var out []*domain.ExpoBookmark
	for _, b := range f.bookmarks {
		if b.ExpoID == expoID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeExpoBookmarkRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.bookmarks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.bookmarks, id)
	return nil
}

type fakeSessionBookmarkRepo struct {
	bookmarks map[string]*domain.SessionBookmark
	nextID    int
}

func newFakeSessionBookmarkRepo() *fakeSessionBookmarkRepo {
	return &fakeSessionBookmarkRepo{bookmarks: make(map[string]*domain.SessionBookmark)}
}

func (f *fakeSessionBookmarkRepo) Create(ctx context.Context, bm *domain.SessionBookmark) error {
	f.nextID++
	bm.ID = fmt.Sprintf("sbm-%d", f.nextID)
	f.bookmarks[bm.ID] = bm
	return nil
}

func (f *fakeSessionBookmarkRepo) GetBySessionAndAttendee(ctx context.Context, sessionID, attendeeID string) (*domain.SessionBookmark, error) {
	for _, b := range f.bookmarks {
		if b.SessionID == sessionID && b.AttendeeID == attendeeID {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionBookmarkRepo) ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.SessionBookmark, error) {
	var out []*domain.SessionBookmark
	for _, b := range f.bookmarks {
		if b.AttendeeID == attendeeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeSessionBookmarkRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.SessionBookmark, error) {
	var out []*domain.SessionBookmark
	for _, b := range f.bookmarks {
		if b.SessionID == sessionID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeSessionBookmarkRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.bookmarks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.bookmarks, id)
	return nil
}

type fakeBoothVisitRepo struct {
	visits []*domain.BoothVisit
}

func (f *fakeBoothVisitRepo) Create(ctx context.Context, visit *domain.BoothVisit) error {
	f.visits = append(f.visits, visit)
	return nil
}

func (f *fakeBoothVisitRepo) GetByBoothAndAttendee(ctx context.Context, boothID, attendeeID string) (*domain.BoothVisit, error) {
	for _, v := range f.visits {
		if v.BoothID == boothID && v.AttendeeID == attendeeID {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBoothVisitRepo) ListByBooth(ctx context.Context, boothID string) ([]*domain.BoothVisit, error) {
	var out []*domain.BoothVisit
	for _, v := range f.visits {
		if v.BoothID == boothID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*domain.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range f.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int, error) {
	count := 0
	for _, n := range f.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	for _, n := range f.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}

type fakeScheduleRepo struct {
	schedules map[string]*domain.Schedule
	nextID    int
}

func newFakeScheduleRepo(schedules ...*domain.Schedule) *fakeScheduleRepo {
	m := make(map[string]*domain.Schedule)
	for _, s := range schedules {
		m[s.ID] = s
	}
	return &fakeScheduleRepo{schedules: m}
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *domain.Schedule) error {
	f.nextID++
	schedule.ID = fmt.Sprintf("sched-%d", f.nextID)
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	if s, ok := f.schedules[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeScheduleRepo) ListByExpo(ctx context.Context, expoID string, includeInactive bool) ([]*domain.Schedule, error) {
	var out []*domain.Schedule
	for _, s := range f.schedules {
		if s.ExpoID == expoID && (includeInactive || s.IsActive) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Schedule, error) {
	var out []*domain.Schedule
	for _, s := range f.schedules {
		if includeInactive || s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, schedule *domain.Schedule) error {
	if _, ok := f.schedules[schedule.ID]; !ok {
		return domain.ErrNotFound
	}
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.schedules[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.schedules, id)
	return nil
}

type fakeMessageRepo struct {
	messages []*domain.Message
	users    *fakeUserRepo
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeMessageRepo) ListByParticipant(ctx context.Context, userID string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range f.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) ListByParticipantRole(ctx context.Context, role string) ([]*domain.Message, error) {
	hasRole := func(id string) bool {
		u, ok := f.users.users[id]
		return ok && u.Role == role
	}
	var out []*domain.Message
	for _, m := range f.messages {
		if hasRole(m.SenderID) || hasRole(m.ReceiverID) {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeCompleter scripts provider responses for the recommendation tests.
type fakeCompleter struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
