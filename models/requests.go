package models

// RegisterRequest is the submitted registration form.
type RegisterRequest struct {
	Email                string
	Password             string
	PasswordRepeat       string
	MasterPassword       string
	MasterPasswordRepeat string
	Redirect             string
}

// Fields echoes the submitted input back to the presentation layer.
func (r RegisterRequest) Fields() map[string]string {
	return map[string]string{
		"email":                r.Email,
		"password":             r.Password,
		"passwordRepeat":       r.PasswordRepeat,
		"masterPassword":       r.MasterPassword,
		"masterPasswordRepeat": r.MasterPasswordRepeat,
	}
}

// LoginRequest is the submitted login form.
type LoginRequest struct {
	Email    string
	Password string
	Redirect string
}

// Fields echoes the submitted input back to the presentation layer.
func (r LoginRequest) Fields() map[string]string {
	return map[string]string{
		"email":    r.Email,
		"password": r.Password,
	}
}

// AddSiteRequest is the submitted "add site" form.
type AddSiteRequest struct {
	Website        string
	Password       string
	MasterPassword string
}

// Fields echoes the submitted input back to the presentation layer.
func (r AddSiteRequest) Fields() map[string]string {
	return map[string]string{
		"website":        r.Website,
		"password":       r.Password,
		"masterPassword": r.MasterPassword,
	}
}

// RevealSiteRequest asks for the plaintext of one stored secret.
type RevealSiteRequest struct {
	SiteID         string
	MasterPassword string
}

// Fields echoes the submitted input back to the presentation layer.
func (r RevealSiteRequest) Fields() map[string]string {
	return map[string]string{
		"masterPassword": r.MasterPassword,
	}
}
