package contact

const (
	SubmitLabel  = "Send Message"
	SendingLabel = "Sending..."

	msgSending    = "Sending..."
	msgIncomplete = "Please fill out all fields."
	msgThanks     = "Thanks! We will be in touch shortly."
	msgFailed     = "There was a problem sending your message. Please try again."
)

// Form holds the visible state of the support form. It is driven from the
// frame loop; the network call itself happens elsewhere between Begin and
// Finish.
type Form struct {
	Fields Payload

	status   string
	statusOK bool
	sending  bool
}

// Begin starts a submission of the current fields. It returns the payload to
// send, or false when validation failed and nothing should be sent.
func (f *Form) Begin() (Payload, bool) {
	if f.sending {
		return Payload{}, false
	}
	f.setStatus(msgSending, true)
	f.sending = true

	p := f.Fields.Normalize()
	if err := p.Validate(); err != nil {
		f.setStatus(msgIncomplete, false)
		f.sending = false
		return Payload{}, false
	}
	return p, true
}

// Finish records the outcome of a submission and re-enables the submit
// control. A successful submission clears the fields.
func (f *Form) Finish(err error) {
	f.sending = false
	if err != nil {
		f.setStatus(msgFailed, false)
		return
	}
	f.setStatus(msgThanks, true)
	f.Fields = Payload{}
}

func (f *Form) setStatus(msg string, ok bool) {
	f.status = msg
	f.statusOK = ok
}

// Status returns the status line and whether it reports success.
func (f *Form) Status() (string, bool) { return f.status, f.statusOK }

func (f *Form) SubmitDisabled() bool { return f.sending }

// ButtonLabel is the text shown on the submit control.
func (f *Form) ButtonLabel() string {
	if f.sending {
		return SendingLabel
	}
	return SubmitLabel
}
