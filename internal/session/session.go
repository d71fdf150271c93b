package session

import (
	"strings"
	"sync"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/geo"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/e"
)

type State string

const (
	StateIdle            State = "idle"
	StateChoosingType    State = "choosing_type"
	StateSelection       State = "selection"
	StateDraftingNew     State = "drafting_new"
	StateEditingExisting State = "editing_existing"
)

// Session drives one user's report flow: long-press (or explicit create)
// through type selection and data capture to a committed PendingReport.
// At most one pending coordinate exists; starting a new flow clears the
// previous one. Not safe for concurrent use; the Manager serializes access.
type Session struct {
	state   State
	pending *domain.Coordinate
	ghost   *domain.Coordinate
	draft   domain.PendingReport
	editing string
}

// Commit is the confirmed outcome handed to the merge/sync pipeline.
type Commit struct {
	Report domain.PendingReport
	// EditingZoneID is set when the session edited an existing zone.
	EditingZoneID string
}

func New() *Session {
	return &Session{state: StateIdle}
}

func (s *Session) State() State { return s.state }

func (s *Session) PendingCoordinate() *domain.Coordinate {
	if s.pending == nil {
		return nil
	}
	c := *s.pending
	return &c
}

func (s *Session) GhostCoordinate() *domain.Coordinate {
	if s.ghost == nil {
		return nil
	}
	c := *s.ghost
	return &c
}

// LongPress starts a fresh flow at the touched coordinate. Any draft in
// progress is discarded first.
func (s *Session) LongPress(c domain.Coordinate) {
	s.reset()
	s.pending = &c
	s.state = StateChoosingType
}

// ChooseType picks SAFE or DANGER for the pending coordinate.
func (s *Session) ChooseType(t domain.ZoneType) error {
	if s.state != StateChoosingType {
		return e.Wrap("session.ChooseType", e.ErrInvalidTransition)
	}
	if t != domain.ZoneSafe && t != domain.ZoneDanger {
		return e.Wrap("session.ChooseType", e.ErrInvalidInput)
	}
	s.draft.Type = t
	s.state = StateDraftingNew
	return nil
}

// StartSelection enters ghost-marker mode: a candidate point floats at the
// camera center and the user pans the map to place it. The zone type is
// chosen up front by the button that opened the mode.
func (s *Session) StartSelection(t domain.ZoneType, camera domain.Coordinate) error {
	if t != domain.ZoneSafe && t != domain.ZoneDanger {
		return e.Wrap("session.StartSelection", e.ErrInvalidInput)
	}
	s.reset()
	s.draft.Type = t
	s.ghost = &camera
	s.state = StateSelection
	return nil
}

// MoveGhost follows the camera while selection mode is active.
func (s *Session) MoveGhost(c domain.Coordinate) error {
	if s.state != StateSelection {
		return e.Wrap("session.MoveGhost", e.ErrInvalidTransition)
	}
	s.ghost = &c
	return nil
}

// ConfirmGhost fixes the floating point and moves straight into drafting.
func (s *Session) ConfirmGhost() error {
	if s.state != StateSelection || s.ghost == nil {
		return e.Wrap("session.ConfirmGhost", e.ErrInvalidTransition)
	}
	c := *s.ghost
	s.pending = &c
	s.ghost = nil
	s.state = StateDraftingNew
	return nil
}

// EditExisting opens the flow for a zone the user already created. A zone
// owned by someone else is rejected before any state changes.
func (s *Session) EditExisting(z domain.Zone, userID string) error {
	if !z.CanMutate(userID) {
		return e.Wrap("session.EditExisting", e.ErrNotZoneOwner)
	}
	s.reset()
	c := z.Coordinate
	s.pending = &c
	s.editing = z.ID
	s.draft = domain.PendingReport{
		Coordinate:     z.Coordinate,
		Description:    z.Description,
		Type:           z.Type,
		Reports:        z.Reports,
		Date:           z.Date,
		Hour:           z.Hour,
		Slug:           z.Slug,
		FeatureDetails: z.FeatureDetails,
	}
	s.state = StateEditingExisting
	return nil
}

func (s *Session) drafting() bool {
	return s.state == StateDraftingNew || s.state == StateEditingExisting
}

func (s *Session) SetDescription(v string) error {
	if !s.drafting() {
		return e.Wrap("session.SetDescription", e.ErrInvalidTransition)
	}
	s.draft.Description = v
	return nil
}

// SetReports accepts the raw report-count field; non-numeric input degrades
// to zero rather than failing.
func (s *Session) SetReports(raw string) error {
	if !s.drafting() {
		return e.Wrap("session.SetReports", e.ErrInvalidTransition)
	}
	s.draft.Reports = geo.ParseReportCount(raw)
	return nil
}

func (s *Session) SetDateHour(date, hour string) error {
	if !s.drafting() {
		return e.Wrap("session.SetDateHour", e.ErrInvalidTransition)
	}
	s.draft.Date, s.draft.Hour = date, hour
	return nil
}

func (s *Session) SetCharacteristics(fd domain.FeatureDetails) error {
	if !s.drafting() {
		return e.Wrap("session.SetCharacteristics", e.ErrInvalidTransition)
	}
	s.draft.FeatureDetails = fd
	return nil
}

// Confirm validates the draft and hands it over. Fails without mutating
// state when there is no pending coordinate or the description is empty;
// succeeds by returning the commit and resetting to idle.
func (s *Session) Confirm() (Commit, error) {
	if !s.drafting() {
		return Commit{}, e.Wrap("session.Confirm", e.ErrInvalidTransition)
	}
	if s.pending == nil {
		return Commit{}, e.Wrap("session.Confirm", e.ErrNoPendingPoint)
	}
	if strings.TrimSpace(s.draft.Description) == "" {
		return Commit{}, e.Wrap("session.Confirm", e.ErrEmptyDescription)
	}

	report := s.draft
	report.Coordinate = *s.pending
	report.Description = strings.TrimSpace(report.Description)
	if report.Type == domain.ZoneDanger && report.FeatureDetails == (domain.FeatureDetails{}) {
		report.FeatureDetails = domain.FeatureDetails{
			InsufficientLighting: true,
			LackOfPolicing:       true,
		}
	}

	commit := Commit{Report: report, EditingZoneID: s.editing}
	s.reset()
	return commit, nil
}

// Cancel discards the draft from any point in the flow.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.state = StateIdle
	s.pending = nil
	s.ghost = nil
	s.draft = domain.PendingReport{}
	s.editing = ""
}

// Manager hands out one session per user for the HTTP layer.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// With runs fn against the user's session under the manager lock.
func (m *Manager) With(userID string, fn func(s *Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = New()
		m.sessions[userID] = s
	}
	return fn(s)
}
