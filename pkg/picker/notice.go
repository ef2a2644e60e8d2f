package picker

// Kind classifies a notice.
type Kind int

const (
	Info Kind = iota
	Success
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notice is a short message for the user, shown as a toast or status line.
type Notice struct {
	Kind    Kind
	Title   string
	Message string
}

func (n Notice) String() string {
	if n.Message == "" {
		return n.Title
	}
	return n.Title + ": " + n.Message
}

// Notifier receives notices from the flow.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// Discard drops every notice.
var Discard Notifier = NotifierFunc(func(Notice) {})

// Recorder keeps every notice it receives.
type Recorder struct {
	Notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.Notices = append(r.Notices, n)
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	if len(r.Notices) == 0 {
		return Notice{}, false
	}
	return r.Notices[len(r.Notices)-1], true
}
