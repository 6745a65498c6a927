package models

// ActionResult is the plain result record of a failed flow or of a reveal.
// Empty members are omitted from the JSON document.
type ActionResult struct {
	Error    string            `json:"error,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Password string            `json:"password,omitempty"`
}

// StrengthReport is the verdict of the password-strength estimator.
type StrengthReport struct {
	Acceptable bool
	Reason     string
}
