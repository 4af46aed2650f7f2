package domain

// GoToPageCommand is the console payload selecting a page.
type GoToPageCommand struct {
	Page int `json:"page"`
}

// SearchCommand is the console payload carrying the search box contents.
type SearchCommand struct {
	Term string `json:"term"`
}

// EditCommand is the console payload of an edit click.
type EditCommand struct {
	ID string `json:"id"`
}

// FilePayload is an uploaded file as sent by the console, base64 encoded.
type FilePayload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// FieldCommand is the console payload of a form input change.
type FieldCommand struct {
	Name  string       `json:"name"`
	Value string       `json:"value"`
	File  *FilePayload `json:"file,omitempty"`
}

// DeleteCommand is the console payload of a delete click.
type DeleteCommand struct {
	ID string `json:"id"`
}

// ConfirmCommand answers a pending confirmation request.
type ConfirmCommand struct {
	RequestID string `json:"requestId"`
	Approved  bool   `json:"approved"`
}

// ImageFile converts the upload into a draft file handle.
func (p *FilePayload) ImageFile() *ImageFile {
	if p == nil {
		return nil
	}
	return &ImageFile{Filename: p.Filename, ContentType: p.ContentType, Content: p.Data}
}
