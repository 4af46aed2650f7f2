package domain

import (
	"errors"
	"strings"
)

// Reduce applies one action to s and returns the next state plus the effects the
// controller must run. It never performs I/O.
//
// A reload that reports currentPage beyond totalPages (the last item on the last page was
// deleted) clamps the page to totalPages and schedules one follow-up fetch for it.
//
// Opening the edit target again is a no-op unless its last detail fetch failed, in which
// case the record is fetched again.
func Reduce(s State, action Action) (State, []Effect) {
	switch a := action.(type) {
	case Started:
		return s.scheduleFetch(s.Pagination.CurrentPage)

	case PageRequested:
		return s.goToPage(a.Page)

	case PageStepped:
		return s.goToPage(s.Pagination.CurrentPage + a.Delta)

	case Refreshed:
		return s.scheduleFetch(s.Pagination.CurrentPage)

	case FetchSucceeded:
		if a.Seq != s.listSeq {
			return s, nil
		}
		s.Loading = false
		s.Items = cloneRestaurants(a.Page.Items)
		s.FilteredItems = FilterByName(s.Items, s.SearchTerm)
		total := max(a.Page.TotalPages, 1)
		current := a.Page.CurrentPage
		if current < 1 {
			current = s.Pagination.CurrentPage
		}
		s.Pagination = Pagination{CurrentPage: current, TotalPages: total}
		if current > total {
			s.Pagination.CurrentPage = total
			return s.scheduleFetch(total)
		}
		return s, nil

	case FetchFailed:
		if a.Seq != s.listSeq {
			return s, nil
		}
		s.Loading = false
		return s, []Effect{failure(KindFetchFailed, msgFetchFailed)}

	case SearchChanged:
		s.SearchTerm = a.Term
		s.FilteredItems = FilterByName(s.Items, a.Term)
		return s, nil

	case CreateOpened:
		s.Session = s.openSession(ModeCreating, "")
		return s, nil

	case EditOpened:
		id := strings.TrimSpace(a.ID)
		if id == "" {
			return s, nil
		}
		sameTarget := s.Session.Mode == ModeEditing && s.Session.EditTargetID == id
		if sameTarget && !s.Session.DraftFailed {
			return s, nil
		}
		if !sameTarget {
			s.Session = s.openSession(ModeEditing, id)
		}
		s.Session.DraftLoading = true
		s.Session.DraftFailed = false
		s.editSeq++
		return s, []Effect{FetchDraft{ID: id, Seq: s.editSeq}}

	case DraftLoaded:
		if !s.awaitsDraft(a.ID, a.Seq) {
			return s, nil
		}
		s.Session.Draft = DraftFromRestaurant(a.Restaurant)
		s.Session.DraftLoading = false
		return s, nil

	case DraftLoadFailed:
		if !s.awaitsDraft(a.ID, a.Seq) {
			return s, nil
		}
		s.Session.DraftLoading = false
		s.Session.DraftFailed = true
		return s, []Effect{failure(KindDetailFailed, msgDetailFailed)}

	case FieldChanged:
		if s.Session.Mode == ModeNone {
			return s, nil
		}
		draft, ok := s.Session.Draft.WithField(a.Field, a.Value, a.File)
		if !ok {
			return s, nil
		}
		s.Session.Draft = draft
		return s, nil

	case SubmitRequested:
		return s.submit()

	case SubmitSucceeded:
		if s.Session.Generation == a.Generation && s.Session.Mode != ModeNone {
			s.Session = closedSession()
		}
		notify, action := success(KindCreated, msgCreated), ActionCreated
		if a.Mode == ModeEditing {
			notify, action = success(KindUpdated, msgUpdated), ActionUpdated
		}
		next, reload := s.scheduleFetch(s.Pagination.CurrentPage)
		return next, append([]Effect{notify, announce(action, a.ID)}, reload...)

	case SubmitFailed:
		if s.Session.Generation == a.Generation {
			s.Session.Submitting = false
		}
		if a.Mode == ModeEditing {
			return s, []Effect{failure(KindUpdateFailed, msgUpdateFailed)}
		}
		return s, []Effect{failure(KindCreateFailed, msgCreateFailed)}

	case Cancelled:
		if s.Session.Mode == ModeNone {
			return s, nil
		}
		s.Session = closedSession()
		return s, nil

	case DeleteRequested:
		id := strings.TrimSpace(a.ID)
		if id == "" || a.RequestID == "" {
			return s, nil
		}
		s.PendingDelete = &PendingDelete{ID: id, RequestID: a.RequestID}
		return s, []Effect{AskConfirmation{RequestID: a.RequestID, ResourceID: id, Prompt: DeletePrompt}}

	case ConfirmationAnswered:
		pending := s.PendingDelete
		if pending == nil || pending.RequestID != a.RequestID {
			return s, nil
		}
		s.PendingDelete = nil
		if !a.Approved {
			return s, nil
		}
		return s, []Effect{DeleteRemote{ID: pending.ID}}

	case DeleteSucceeded:
		next, reload := s.scheduleFetch(s.Pagination.CurrentPage)
		return next, append([]Effect{success(KindDeleted, msgDeleted), announce(ActionDeleted, a.ID)}, reload...)

	case DeleteFailed:
		return s, []Effect{failure(KindDeleteFailed, msgDeleteFailed)}
	}
	return s, nil
}

func (s State) goToPage(page int) (State, []Effect) {
	if !s.Pagination.Accepts(page) || page == s.Pagination.CurrentPage {
		return s, nil
	}
	s.Pagination.CurrentPage = page
	return s.scheduleFetch(page)
}

func (s State) scheduleFetch(page int) (State, []Effect) {
	s.listSeq++
	s.Loading = true
	query := PagedQuery{Page: page, Limit: s.PageSize}.Normalize()
	return s, []Effect{FetchPage{Seq: s.listSeq, Query: query}}
}

func (s *State) openSession(mode Mode, editTargetID string) Session {
	s.sessionSeq++
	return Session{
		Mode:         mode,
		EditTargetID: editTargetID,
		Draft:        BlankDraft(),
		Generation:   s.sessionSeq,
	}
}

func (s State) awaitsDraft(id string, seq uint64) bool {
	return s.Session.Mode == ModeEditing && s.Session.EditTargetID == id && s.editSeq == seq
}

func (s State) submit() (State, []Effect) {
	session := s.Session
	if session.Mode == ModeNone || session.Submitting {
		return s, nil
	}
	if err := ValidateDraft(session.Draft); err != nil {
		var invalid *DraftValidationError
		if errors.As(err, &invalid) {
			return s, []Effect{failure(KindDraftIncomplete, invalid.Error())}
		}
		return s, []Effect{failure(KindDraftIncomplete, err.Error())}
	}
	s.Session.Submitting = true
	if session.Mode == ModeEditing {
		return s, []Effect{UpdateRemote{Generation: session.Generation, ID: session.EditTargetID, Draft: session.Draft}}
	}
	return s, []Effect{CreateRemote{Generation: session.Generation, Draft: session.Draft}}
}

func announce(action, id string) AnnounceChange {
	return AnnounceChange{Event: ChangeEvent{
		Entity:     RestaurantEntity,
		Action:     action,
		ResourceID: id,
	}}
}
