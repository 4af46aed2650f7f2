package domain

import "strings"

// Form field names as exchanged with the console and the restaurant service.
const (
	FieldName          = "name"
	FieldDescription   = "description"
	FieldLocation      = "location"
	FieldContactNumber = "contactNumber"
	FieldOpeningHours  = "openingHours"
	FieldImage         = "restaurantImageUrl"
)

// ImageFile is a file handle attached to the image field of a draft.
type ImageFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType,omitempty"`
	Content     []byte `json:"-"`
}

// Draft is the unsaved form buffer of a create or edit session. Every field is text,
// numeric looking ones included; the image is either a file handle or a plain reference.
type Draft struct {
	Name          string     `json:"name" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	Location      string     `json:"location" validate:"required"`
	ContactNumber string     `json:"contactNumber" validate:"required"`
	OpeningHours  string     `json:"openingHours" validate:"required"`
	ImageURL      string     `json:"restaurantImageUrl,omitempty"`
	Image         *ImageFile `json:"image,omitempty"`
}

// DraftField is one entry of the multipart payload built from a draft.
type DraftField struct {
	Name  string
	Value string
	File  *ImageFile
}

// BlankDraft returns the defaults used when a create session opens.
func BlankDraft() Draft {
	return Draft{}
}

// DraftFromRestaurant seeds an edit session with a fetched record.
func DraftFromRestaurant(r Restaurant) Draft {
	return Draft{
		Name:          r.Name,
		Description:   r.Description,
		Location:      r.Location,
		ContactNumber: r.ContactNumber,
		OpeningHours:  r.OpeningHours,
		ImageURL:      r.ImageURL,
	}
}

// WithField returns a copy of the draft with the named field assigned. A file payload
// replaces the text value for that field. Unknown field names are reported with false.
func (d Draft) WithField(name, value string, file *ImageFile) (Draft, bool) {
	switch strings.TrimSpace(name) {
	case FieldName:
		d.Name = value
	case FieldDescription:
		d.Description = value
	case FieldLocation:
		d.Location = value
	case FieldContactNumber:
		d.ContactNumber = value
	case FieldOpeningHours:
		d.OpeningHours = value
	case FieldImage, "image":
		if file != nil {
			f := *file
			d.Image = &f
			d.ImageURL = ""
		} else {
			d.Image = nil
			d.ImageURL = value
		}
	default:
		return d, false
	}
	return d, true
}

// Fields enumerates every draft field in a stable order, the image included even when
// it is absent.
func (d Draft) Fields() []DraftField {
	image := DraftField{Name: FieldImage, Value: d.ImageURL}
	if d.Image != nil {
		image.File = d.Image
		image.Value = ""
	}
	return []DraftField{
		{Name: FieldName, Value: d.Name},
		{Name: FieldDescription, Value: d.Description},
		{Name: FieldLocation, Value: d.Location},
		{Name: FieldContactNumber, Value: d.ContactNumber},
		{Name: FieldOpeningHours, Value: d.OpeningHours},
		image,
	}
}
