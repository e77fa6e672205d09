package model

// AttachmentLine is one commit rendered for the notification attachment list.
type AttachmentLine struct {
	Title string
	Value string
}

// Notification is the composed message for one ref update, before wire
// encoding. It is constructed once per event and consumed immediately.
type Notification struct {
	Header string
	Lines  []AttachmentLine
}

// Overrides redirect where and how the notification displays. Empty fields
// are omitted from the payload.
type Overrides struct {
	Channel   string
	Username  string
	IconURL   string
	IconEmoji string
}
