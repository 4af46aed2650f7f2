package domain

// Mode is the kind of mutation session currently open.
type Mode string

const (
	ModeNone     Mode = "none"
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

// Session is the transient state of an open create or edit form. EditTargetID is set
// only while Mode is ModeEditing.
type Session struct {
	Mode         Mode
	EditTargetID string
	Draft        Draft
	Generation   uint64
	DraftLoading bool
	DraftFailed  bool
	Submitting   bool
}

// PendingDelete is a delete waiting on the operator's answer.
type PendingDelete struct {
	ID        string
	RequestID string
}

// State is the whole console state. It is only replaced through Reduce.
type State struct {
	Items         []Restaurant
	FilteredItems []Restaurant
	SearchTerm    string
	Pagination    Pagination
	PageSize      int
	Loading       bool
	Session       Session
	PendingDelete *PendingDelete

	listSeq    uint64
	editSeq    uint64
	sessionSeq uint64
}

// NewState returns the state before the first fetch.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		Pagination: InitialPagination(),
		PageSize:   pageSize,
		Session:    closedSession(),
	}
}

func closedSession() Session {
	return Session{Mode: ModeNone, Draft: BlankDraft()}
}

// View is the read model handed to the presentation layer.
type View struct {
	Items           []Restaurant `json:"items"`
	CurrentPage     int          `json:"currentPage"`
	TotalPages      int          `json:"totalPages"`
	SearchTerm      string       `json:"searchTerm"`
	Loading         bool         `json:"loading"`
	Mode            Mode         `json:"mode"`
	EditTargetID    string       `json:"editTargetId,omitempty"`
	Draft           Draft        `json:"draft"`
	DraftLoading    bool         `json:"draftLoading"`
	DraftFailed     bool         `json:"draftFailed"`
	Submitting      bool         `json:"submitting"`
	PendingDeleteID string       `json:"pendingDeleteId,omitempty"`
}

// View projects the state for rendering.
func (s State) View() View {
	view := View{
		Items:        cloneRestaurants(s.FilteredItems),
		CurrentPage:  s.Pagination.CurrentPage,
		TotalPages:   s.Pagination.TotalPages,
		SearchTerm:   s.SearchTerm,
		Loading:      s.Loading,
		Mode:         s.Session.Mode,
		EditTargetID: s.Session.EditTargetID,
		Draft:        s.Session.Draft,
		DraftLoading: s.Session.DraftLoading,
		DraftFailed:  s.Session.DraftFailed,
		Submitting:   s.Session.Submitting,
	}
	if view.Items == nil {
		view.Items = []Restaurant{}
	}
	if s.PendingDelete != nil {
		view.PendingDeleteID = s.PendingDelete.ID
	}
	return view
}
