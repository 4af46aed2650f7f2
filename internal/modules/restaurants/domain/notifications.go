package domain

// NotificationLevel separates success toasts from failure alerts.
type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelFailure NotificationLevel = "failure"
)

// NotificationKind is the semantic reason a notification fired.
type NotificationKind string

const (
	KindCreated         NotificationKind = "created"
	KindUpdated         NotificationKind = "updated"
	KindDeleted         NotificationKind = "deleted"
	KindFetchFailed     NotificationKind = "fetch-failed"
	KindDetailFailed    NotificationKind = "detail-failed"
	KindCreateFailed    NotificationKind = "create-failed"
	KindUpdateFailed    NotificationKind = "update-failed"
	KindDeleteFailed    NotificationKind = "delete-failed"
	KindDraftIncomplete NotificationKind = "draft-incomplete"
)

const (
	msgCreated      = "Restaurant Created Successfully!"
	msgUpdated      = "Restaurant Updated Successfully!"
	msgDeleted      = "Restaurant Deleted Successfully!"
	msgFetchFailed  = "Failed to fetch restaurants. Please try again."
	msgDetailFailed = "Failed to fetch restaurant details. Please try again."
	msgCreateFailed = "Failed to create restaurant. Please try again."
	msgUpdateFailed = "Failed to update restaurant. Please try again."
	msgDeleteFailed = "Failed to delete restaurant. Please try again."

	// DeletePrompt is the question put to the operator before a delete.
	DeletePrompt = "Are you sure want to delete Restaurant?"
)

// Notification is what the controller hands to the notification collaborator.
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Kind    NotificationKind  `json:"kind"`
	Message string            `json:"message"`
}

func success(kind NotificationKind, message string) Notify {
	return Notify{Notification: Notification{Level: LevelSuccess, Kind: kind, Message: message}}
}

func failure(kind NotificationKind, message string) Notify {
	return Notify{Notification: Notification{Level: LevelFailure, Kind: kind, Message: message}}
}
