// Package portal provides the HTTP client for the Symptom-Story backend.
//
// The client is stateless: the bearer token is read fresh from the token
// source on every authenticated call, never cached inside the client. Each
// logical operation maps to one HTTP request/response pair with the outcome
// normalized to a typed result or a typed error.
package portal

// TokenSource supplies the bearer token for authenticated calls.
// An empty string means no token is persisted and the Authorization
// header is omitted entirely.
type TokenSource interface {
	Token() string
}

// SignupRequest is the registration payload sent to /api/auth/signup.
// Username is the email address; the backend treats them as one value.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// TokenResponse is the successful login payload from /api/auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// UserInfo is the identity payload from /api/auth/me and /api/auth/signup.
type UserInfo struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// DisplayName returns the best available name for display: Name when the
// backend supplied one, else the username.
func (u *UserInfo) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// AnalysisResult is the symptom analysis payload from /api/analyze.
type AnalysisResult struct {
	Transcription     string         `json:"transcription"`
	ExtractedSymptoms []string       `json:"extracted_symptoms"`
	FinalSummary      string         `json:"final_summary"`
	MLPredictions     map[string]any `json:"ml_predictions,omitempty"`
	AIPrescription    string         `json:"ai_prescription,omitempty"`
}

// HistoryRecord is one past analysis from /api/history.
type HistoryRecord struct {
	ID                string   `json:"id"`
	CreatedAt         string   `json:"created_at"`
	Transcription     string   `json:"transcription"`
	ExtractedSymptoms []string `json:"extracted_symptoms"`
	FinalSummary      string   `json:"final_summary"`
}

// PatientSummary is one entry from /api/doctor/patients.
type PatientSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Consultation is one record from /api/patient/my-consultations.
type Consultation struct {
	ID           string   `json:"id"`
	DoctorName   string   `json:"doctor_name,omitempty"`
	Diagnosis    string   `json:"diagnosis"`
	Medications  []string `json:"medications"`
	Instructions []string `json:"instructions,omitempty"`
	FollowUpDate string   `json:"follow_up_date,omitempty"`
	FollowUpTime string   `json:"follow_up_time,omitempty"`
}

// apiError is the backend's structured error body.
type apiError struct {
	Detail string `json:"detail"`
}
