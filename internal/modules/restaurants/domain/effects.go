package domain

// Effect is work Reduce asks the controller to perform outside the state transition.
type Effect interface {
	effect()
}

// FetchPage loads one page; the result is applied only if Seq is still the latest.
type FetchPage struct {
	Seq   uint64
	Query PagedQuery
}

// FetchDraft loads the record behind an edit session.
type FetchDraft struct {
	ID  string
	Seq uint64
}

// CreateRemote sends a create request built from Draft.
type CreateRemote struct {
	Generation uint64
	Draft      Draft
}

// UpdateRemote sends an update request for ID built from Draft.
type UpdateRemote struct {
	Generation uint64
	ID         string
	Draft      Draft
}

// AskConfirmation puts Prompt to the operator before deleting ResourceID.
type AskConfirmation struct {
	RequestID  string
	ResourceID string
	Prompt     string
}

// DeleteRemote sends a delete request for ID.
type DeleteRemote struct {
	ID string
}

// Notify hands a notification to the notification collaborator.
type Notify struct {
	Notification Notification
}

// AnnounceChange tells other consoles that a restaurant changed.
type AnnounceChange struct {
	Event ChangeEvent
}

func (FetchPage) effect()       {}
func (FetchDraft) effect()      {}
func (CreateRemote) effect()    {}
func (UpdateRemote) effect()    {}
func (AskConfirmation) effect() {}
func (DeleteRemote) effect()    {}
func (Notify) effect()          {}
func (AnnounceChange) effect()  {}
