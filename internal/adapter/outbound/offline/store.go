// Package offline provides the backend-free variant of the portal: patient
// accounts and booked appointments kept in a local SQLite database instead
// of the remote service. It is not part of the authenticated HTTP contract.
package offline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var (
	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrBadCredentials is returned when authentication fails. The same
	// error covers unknown email and wrong password.
	ErrBadCredentials = errors.New("invalid email or password")
)

// Patient is one locally registered account. The password is stored only
// as an Argon2id hash.
type Patient struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Appointment is one locally booked slot.
type Appointment struct {
	ID             string
	PatientID      string
	DoctorName     string
	Specialization string
	Date           string
	Time           string
	CreatedAt      time.Time
}

// Store is the SQLite-backed offline store.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS patients (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS appointments (
	id             TEXT PRIMARY KEY,
	patient_id     TEXT NOT NULL REFERENCES patients(id),
	doctor_name    TEXT NOT NULL,
	specialization TEXT NOT NULL,
	date           TEXT NOT NULL,
	time           TEXT NOT NULL,
	created_at     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments(patient_id);
`

// Open opens (creating if needed) the offline database at the given path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open offline database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate offline database: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RegisterPatient creates a local account with an Argon2id password hash.
func (s *Store) RegisterPatient(ctx context.Context, name, email, password string) (*Patient, error) {
	var existing string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM patients WHERE email = ?`, email).Scan(&existing)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check existing account: %w", err)
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p := &Patient{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO patients (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Email, hash, p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	s.logger.Info("offline account created", "email", email)
	return p, nil
}

// Authenticate verifies the password against the stored hash and returns
// the account. Unknown email and wrong password are indistinguishable.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*Patient, error) {
	var p Patient
	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM patients WHERE email = ?`,
		email).Scan(&p.ID, &p.Name, &p.Email, &hash, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up account: %w", err)
	}

	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return nil, ErrBadCredentials
	}
	return &p, nil
}

// BookAppointment records a slot for the patient.
func (s *Store) BookAppointment(ctx context.Context, patientID, doctorName, specialization, date, timeOfDay string) (*Appointment, error) {
	a := &Appointment{
		ID:             uuid.NewString(),
		PatientID:      patientID,
		DoctorName:     doctorName,
		Specialization: specialization,
		Date:           date,
		Time:           timeOfDay,
		CreatedAt:      time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO appointments (id, patient_id, doctor_name, specialization, date, time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.PatientID, a.DoctorName, a.Specialization, a.Date, a.Time, a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return a, nil
}

// Appointments lists the patient's booked slots, most recent first.
func (s *Store) Appointments(ctx context.Context, patientID string) ([]Appointment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, patient_id, doctor_name, specialization, date, time, created_at
		 FROM appointments WHERE patient_id = ? ORDER BY created_at DESC`,
		patientID)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	defer rows.Close()

	var out []Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorName, &a.Specialization,
			&a.Date, &a.Time, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
