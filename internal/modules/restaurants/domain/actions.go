package domain

// Action is one discrete event processed by Reduce.
type Action interface {
	ActionName() string
}

// Started asks for the initial page.
type Started struct{}

// PageRequested selects a page directly.
type PageRequested struct{ Page int }

// PageStepped moves relative to the current page (+1 next, -1 previous).
type PageStepped struct{ Delta int }

// Refreshed reloads the current page on operator request.
type Refreshed struct{}

// FetchSucceeded delivers a list response for the fetch numbered Seq.
type FetchSucceeded struct {
	Seq  uint64
	Page ListPage
}

// FetchFailed reports a list fetch failure for the fetch numbered Seq.
type FetchFailed struct {
	Seq uint64
	Err error
}

// SearchChanged replaces the search term.
type SearchChanged struct{ Term string }

// CreateOpened opens a blank create session.
type CreateOpened struct{}

// EditOpened opens an edit session for ID.
type EditOpened struct{ ID string }

// DraftLoaded delivers the record fetched for an edit session.
type DraftLoaded struct {
	ID         string
	Seq        uint64
	Restaurant Restaurant
}

// DraftLoadFailed reports a failed edit fetch.
type DraftLoadFailed struct {
	ID  string
	Seq uint64
	Err error
}

// FieldChanged assigns one draft field. File is set when the input carried a file.
type FieldChanged struct {
	Field string
	Value string
	File  *ImageFile
}

// SubmitRequested submits the open session.
type SubmitRequested struct{}

// SubmitSucceeded reports a completed create or update for session Generation.
type SubmitSucceeded struct {
	Generation uint64
	Mode       Mode
	ID         string
}

// SubmitFailed reports a failed create or update for session Generation.
type SubmitFailed struct {
	Generation uint64
	Mode       Mode
	Err        error
}

// Cancelled closes the open session without a remote call.
type Cancelled struct{}

// DeleteRequested starts a delete; RequestID correlates the confirmation answer.
type DeleteRequested struct {
	ID        string
	RequestID string
}

// ConfirmationAnswered carries the operator's answer to a delete confirmation.
type ConfirmationAnswered struct {
	RequestID string
	Approved  bool
}

// DeleteSucceeded reports a completed delete.
type DeleteSucceeded struct{ ID string }

// DeleteFailed reports a failed delete.
type DeleteFailed struct {
	ID  string
	Err error
}

func (Started) ActionName() string              { return "STARTED" }
func (PageRequested) ActionName() string        { return "PAGE_CHANGED" }
func (PageStepped) ActionName() string          { return "PAGE_STEPPED" }
func (Refreshed) ActionName() string            { return "REFRESHED" }
func (FetchSucceeded) ActionName() string       { return "FETCH_SUCCEEDED" }
func (FetchFailed) ActionName() string          { return "FETCH_FAILED" }
func (SearchChanged) ActionName() string        { return "SEARCH_CHANGED" }
func (CreateOpened) ActionName() string         { return "CREATE_OPENED" }
func (EditOpened) ActionName() string           { return "EDIT_OPENED" }
func (DraftLoaded) ActionName() string          { return "DRAFT_LOADED" }
func (DraftLoadFailed) ActionName() string      { return "DRAFT_LOAD_FAILED" }
func (FieldChanged) ActionName() string         { return "FIELD_CHANGED" }
func (SubmitRequested) ActionName() string      { return "SUBMIT_REQUESTED" }
func (SubmitSucceeded) ActionName() string      { return "SUBMIT_SUCCEEDED" }
func (SubmitFailed) ActionName() string         { return "SUBMIT_FAILED" }
func (Cancelled) ActionName() string            { return "CANCELLED" }
func (DeleteRequested) ActionName() string      { return "DELETE_REQUESTED" }
func (ConfirmationAnswered) ActionName() string { return "CONFIRMATION_ANSWERED" }
func (DeleteSucceeded) ActionName() string      { return "DELETE_SUCCEEDED" }
func (DeleteFailed) ActionName() string         { return "DELETE_FAILED" }
