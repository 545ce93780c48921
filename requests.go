package client

// Optional fields are pointers so that a supplied value is always sent, even
// when empty, and an absent one is never sent.

type boxAccessRequest struct {
	IP          string    `json:"ip"`
	Application string    `json:"application"`
	IPs         *[]string `json:"ips,omitempty"`
	AccessType  *string   `json:"access_type,omitempty"`
	Message     *string   `json:"message,omitempty"`
}

type credentialRequest struct {
	IP       string  `json:"ip"`
	Service  string  `json:"service"`
	Password string  `json:"password"`
	Message  *string `json:"message,omitempty"`
	Username *string `json:"username,omitempty"`
}

type logRequest struct {
	IP      string    `json:"ip"`
	Message string    `json:"message"`
	Service string    `json:"service"`
	Level   *LogLevel `json:"level,omitempty"`
}

// BoxAccessOption sets an optional field of a box access report.
type BoxAccessOption func(*boxAccessRequest)

// CredentialOption sets an optional field of a credential report.
type CredentialOption func(*credentialRequest)

// LogOption sets an optional field of a log event.
type LogOption func(*logRequest)

// WithIPs lists further addresses of the accessed box.
func WithIPs(ips ...string) BoxAccessOption {
	return func(r *boxAccessRequest) {
		list := append([]string{}, ips...)
		r.IPs = &list
	}
}

func WithAccessType(accessType string) BoxAccessOption {
	return func(r *boxAccessRequest) {
		r.AccessType = &accessType
	}
}

func WithAccessMessage(message string) BoxAccessOption {
	return func(r *boxAccessRequest) {
		r.Message = &message
	}
}

func WithCredentialMessage(message string) CredentialOption {
	return func(r *credentialRequest) {
		r.Message = &message
	}
}

func WithUsername(username string) CredentialOption {
	return func(r *credentialRequest) {
		r.Username = &username
	}
}

func WithLevel(level LogLevel) LogOption {
	return func(r *logRequest) {
		r.Level = &level
	}
}
