package actionitems

// ChildOffStudyAction es el nombre del action type que agenda el retiro del niño.
const ChildOffStudyAction = "submit-childoff-study"

type Status string

const (
	StatusNew       Status = "New"
	StatusOpen      Status = "Open"
	StatusClosed    Status = "Closed"
	StatusCancelled Status = "Cancelled"
)

type ActionItem struct {
	ID                string
	SubjectIdentifier string
	ActionType        string // nombre del action type
	Status            Status
}
